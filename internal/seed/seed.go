// Package seed moves categories and questions in and out of a Store as JSON
// or CSV. The same shape is served by the export endpoint and read by the
// seed command.
package seed

import (
	"context"
	"fmt"

	"github.com/daikiakiyoshi/trivia-api/internal/models"
	"github.com/daikiakiyoshi/trivia-api/internal/repository"
)

type Question struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Difficulty *int    `json:"difficulty"`
	// Category is only set on questions outside Data.Categories.
	Category *int `json:"category,omitempty"`
}

// Category.ID is informational on import; stores assign their own ids.
type Category struct {
	ID        uint       `json:"id,omitempty"`
	Type      string     `json:"type"`
	Questions []Question `json:"questions"`
}

type Data struct {
	Categories []Category `json:"categories"`
	// Questions holds questions without a category or whose category is
	// not in the store.
	Questions []Question `json:"questions,omitempty"`
}

// DefaultCategories is the stock category set of the trivia front-end, in
// id order for an empty store.
var DefaultCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}

// Build groups questions under their categories. Both inputs are expected
// in id order and the output keeps it.
func Build(categories []models.Category, questions []models.Question) Data {
	data := Data{Categories: make([]Category, 0, len(categories))}
	index := make(map[int]int, len(categories))
	for i, c := range categories {
		index[int(c.ID)] = i
		data.Categories = append(data.Categories, Category{ID: c.ID, Type: c.Type, Questions: []Question{}})
	}

	for _, q := range questions {
		item := Question{Question: q.Question, Answer: q.Answer, Difficulty: q.Difficulty}
		if q.Category != nil {
			if i, ok := index[*q.Category]; ok {
				data.Categories[i].Questions = append(data.Categories[i].Questions, item)
				continue
			}
		}
		item.Category = q.Category
		data.Questions = append(data.Questions, item)
	}
	return data
}

// Import writes data into store and returns the number of questions created.
// Categories whose type already exists are reused rather than duplicated.
func Import(ctx context.Context, store repository.Store, data Data) (int, error) {
	existing, err := store.ListCategories(ctx)
	if err != nil {
		return 0, fmt.Errorf("list categories: %w", err)
	}
	byType := make(map[string]uint, len(existing))
	for _, c := range existing {
		byType[c.Type] = c.ID
	}

	count := 0
	for _, c := range data.Categories {
		id, ok := byType[c.Type]
		if !ok {
			category := models.Category{Type: c.Type}
			if err := store.CreateCategory(ctx, &category); err != nil {
				return count, fmt.Errorf("create category %q: %w", c.Type, err)
			}
			id = category.ID
			byType[c.Type] = id
		}

		categoryID := int(id)
		for _, q := range c.Questions {
			q.Category = &categoryID
			if err := createQuestion(ctx, store, q); err != nil {
				return count, err
			}
			count++
		}
	}

	for _, q := range data.Questions {
		if err := createQuestion(ctx, store, q); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// EnsureCategories creates DefaultCategories when the store has none.
func EnsureCategories(ctx context.Context, store repository.Store) (bool, error) {
	existing, err := store.ListCategories(ctx)
	if err != nil {
		return false, fmt.Errorf("list categories: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}
	for _, t := range DefaultCategories {
		category := models.Category{Type: t}
		if err := store.CreateCategory(ctx, &category); err != nil {
			return false, fmt.Errorf("create category %q: %w", t, err)
		}
	}
	return true, nil
}

func createQuestion(ctx context.Context, store repository.Store, q Question) error {
	question := models.Question{
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
	if err := store.CreateQuestion(ctx, &question); err != nil {
		return fmt.Errorf("create question: %w", err)
	}
	return nil
}
