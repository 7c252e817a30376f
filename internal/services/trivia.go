package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/daikiakiyoshi/trivia-api/internal/models"
	"github.com/daikiakiyoshi/trivia-api/internal/repository"
)

type TriviaService struct {
	store repository.Store
	intn  func(n int) int
}

func NewTriviaService(store repository.Store) *TriviaService {
	return &TriviaService{store: store, intn: rand.Intn}
}

// WithRand replaces the quiz picker's random source.
func (s *TriviaService) WithRand(intn func(n int) int) *TriviaService {
	s.intn = intn
	return s
}

type QuestionPage struct {
	Questions  []models.FormattedQuestion
	Total      int64
	Categories map[uint]string
}

type SearchResult struct {
	Questions []models.FormattedQuestion
	Total     int
}

type CategoryQuestions struct {
	Questions       []models.FormattedQuestion
	Total           int
	CurrentCategory string
}

type NewQuestion struct {
	Question   *string
	Answer     *string
	Category   *int
	Difficulty *int
}

type QuizRequest struct {
	PreviousQuestions []uint
	// CategoryID 0 draws from every category.
	CategoryID int
}

func (s *TriviaService) ListCategories(ctx context.Context) (map[uint]string, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, storageFault("list categories", err)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("list categories: %w", ErrNotFound)
	}
	return models.CategoryMap(categories), nil
}

func (s *TriviaService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	questions, err := s.store.ListQuestions(ctx, repository.QuestionFilter{})
	if err != nil {
		return nil, storageFault("list questions", err)
	}
	current := Paginate(questions, page)

	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, storageFault("list categories", err)
	}
	if len(current) == 0 || len(categories) == 0 {
		return nil, fmt.Errorf("list questions page %d: %w", page, ErrNotFound)
	}

	total, err := s.store.CountQuestions(ctx)
	if err != nil {
		return nil, storageFault("count questions", err)
	}

	return &QuestionPage{
		Questions:  models.FormatQuestions(current),
		Total:      total,
		Categories: models.CategoryMap(categories),
	}, nil
}

func (s *TriviaService) DeleteQuestion(ctx context.Context, id uint) (uint, error) {
	if _, err := s.store.GetQuestion(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, fmt.Errorf("question %d: %w", id, ErrNotFound)
		}
		return 0, storageFault("get question", err)
	}

	if err := s.store.DeleteQuestion(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, fmt.Errorf("question %d: %w", id, ErrNotFound)
		}
		return 0, storageFault("delete question", err)
	}
	return id, nil
}

func (s *TriviaService) CreateQuestion(ctx context.Context, input NewQuestion) (uint, error) {
	question := models.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Difficulty: input.Difficulty,
	}
	if err := s.store.CreateQuestion(ctx, &question); err != nil {
		return 0, storageFault("create question", err)
	}
	return question.ID, nil
}

// SearchQuestions matches term case-insensitively anywhere in the question
// text. A nil term matches everything; no match is an empty result, not an
// error.
func (s *TriviaService) SearchQuestions(ctx context.Context, term *string) (*SearchResult, error) {
	filter := repository.QuestionFilter{}
	if term != nil {
		filter.Search = *term
	}

	questions, err := s.store.ListQuestions(ctx, filter)
	if err != nil {
		return nil, storageFault("search questions", err)
	}
	return &SearchResult{
		Questions: models.FormatQuestions(questions),
		Total:     len(questions),
	}, nil
}

func (s *TriviaService) QuestionsByCategory(ctx context.Context, categoryID uint) (*CategoryQuestions, error) {
	category, err := s.store.GetCategory(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("category %d: %w", categoryID, ErrNotFound)
		}
		return nil, storageFault("get category", err)
	}

	questions, err := s.store.ListQuestions(ctx, repository.QuestionFilter{CategoryID: int(category.ID)})
	if err != nil {
		return nil, storageFault("list category questions", err)
	}
	return &CategoryQuestions{
		Questions:       models.FormatQuestions(questions),
		Total:           len(questions),
		CurrentCategory: category.Type,
	}, nil
}

// NextQuizQuestion picks uniformly among the questions the player has not
// seen yet. It returns nil, nil when none are left.
func (s *TriviaService) NextQuizQuestion(ctx context.Context, req QuizRequest) (*models.FormattedQuestion, error) {
	if req.CategoryID < 0 {
		return nil, fmt.Errorf("quiz category %d: %w", req.CategoryID, ErrBadRequest)
	}

	candidates, err := s.store.ListQuestions(ctx, repository.QuestionFilter{
		CategoryID: req.CategoryID,
		ExcludeIDs: req.PreviousQuestions,
	})
	if err != nil {
		return nil, storageFault("list quiz candidates", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	picked := candidates[s.intn(len(candidates))].Format()
	return &picked, nil
}
