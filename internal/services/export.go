package services

import (
	"context"

	"github.com/daikiakiyoshi/trivia-api/internal/repository"
	"github.com/daikiakiyoshi/trivia-api/internal/seed"
)

// Export snapshots every category and question in the seed file shape.
func (s *TriviaService) Export(ctx context.Context) (seed.Data, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return seed.Data{}, storageFault("list categories", err)
	}
	questions, err := s.store.ListQuestions(ctx, repository.QuestionFilter{})
	if err != nil {
		return seed.Data{}, storageFault("list questions", err)
	}
	return seed.Build(categories, questions), nil
}
