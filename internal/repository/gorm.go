package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/daikiakiyoshi/trivia-api/internal/models"

	"gorm.io/gorm"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *GormStore) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (s *GormStore) CreateCategory(ctx context.Context, category *models.Category) error {
	return s.db.WithContext(ctx).Create(category).Error
}

func (s *GormStore) ListQuestions(ctx context.Context, filter QuestionFilter) ([]models.Question, error) {
	q := s.db.WithContext(ctx).Model(&models.Question{})
	// SQLite's LOWER folds ASCII only, so its search runs in Go below.
	foldInGo := filter.Search != "" && s.db.Dialector.Name() == "sqlite"
	if filter.Search != "" && !foldInGo {
		q = q.Where("LOWER(question) LIKE ? ESCAPE '!'", "%"+escapeLike(strings.ToLower(filter.Search))+"%")
	}
	if filter.CategoryID != 0 {
		q = q.Where("category = ?", filter.CategoryID)
	}
	// NOT IN with an empty list would exclude every row
	if len(filter.ExcludeIDs) > 0 {
		q = q.Where("id NOT IN ?", filter.ExcludeIDs)
	}

	var questions []models.Question
	if err := q.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	if foldInGo {
		questions = containing(questions, filter.Search)
	}
	return questions, nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// escapeLike makes term match literally inside a LIKE pattern using '!' as
// the escape character. A backslash would need doubling on MySQL.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

func containing(questions []models.Question, term string) []models.Question {
	term = strings.ToLower(term)
	out := questions[:0]
	for _, q := range questions {
		if q.Question != nil && strings.Contains(strings.ToLower(*q.Question), term) {
			out = append(out, q)
		}
	}
	return out
}

func (s *GormStore) CountQuestions(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&models.Question{}).Count(&total).Error
	return total, err
}

func (s *GormStore) GetQuestion(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, translate(err)
	}
	return &question, nil
}

func (s *GormStore) CreateQuestion(ctx context.Context, question *models.Question) error {
	return s.db.WithContext(ctx).Create(question).Error
}

func (s *GormStore) DeleteQuestion(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
