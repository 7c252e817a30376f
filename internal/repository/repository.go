// Package repository holds the storage backends for categories and
// questions. Services depend on the Store interface only.
package repository

import (
	"context"
	"errors"

	"github.com/daikiakiyoshi/trivia-api/internal/models"
)

// ErrNotFound is returned by single-row lookups and deletes that match nothing.
var ErrNotFound = errors.New("record not found")

// QuestionFilter narrows ListQuestions. Zero values mean "no constraint".
type QuestionFilter struct {
	// Search is matched case-insensitively anywhere in the question text.
	Search     string
	CategoryID int
	ExcludeIDs []uint
}

// Store is ordered by id ascending for every list method.
type Store interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id uint) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error

	ListQuestions(ctx context.Context, filter QuestionFilter) ([]models.Question, error)
	CountQuestions(ctx context.Context) (int64, error)
	GetQuestion(ctx context.Context, id uint) (*models.Question, error)
	CreateQuestion(ctx context.Context, question *models.Question) error
	DeleteQuestion(ctx context.Context, id uint) error
}
