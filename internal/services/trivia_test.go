package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/daikiakiyoshi/trivia-api/internal/database/dbtest"
	"github.com/daikiakiyoshi/trivia-api/internal/models"
	"github.com/daikiakiyoshi/trivia-api/internal/repository"
	"github.com/daikiakiyoshi/trivia-api/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

type fixture struct {
	store   *repository.GormStore
	service *services.TriviaService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := repository.NewGormStore(dbtest.New(t))
	return fixture{store: store, service: services.NewTriviaService(store)}
}

func (f fixture) category(t *testing.T, name string) uint {
	t.Helper()
	c := models.Category{Type: name}
	require.NoError(t, f.store.CreateCategory(context.Background(), &c))
	return c.ID
}

func (f fixture) question(t *testing.T, text string, category uint) uint {
	t.Helper()
	q := models.Question{
		Question:   strPtr(text),
		Answer:     strPtr("answer to " + text),
		Category:   intPtr(int(category)),
		Difficulty: intPtr(1),
	}
	require.NoError(t, f.store.CreateQuestion(context.Background(), &q))
	return q.ID
}

func TestListCategories(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.ListCategories(ctx)
	require.ErrorIs(t, err, services.ErrNotFound)

	science := f.category(t, "Science")
	art := f.category(t, "Art")

	categories, err := f.service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[uint]string{science: "Science", art: "Art"}, categories)
}

func TestListQuestions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	science := f.category(t, "Science")

	var ids []uint
	for i := 0; i < 15; i++ {
		ids = append(ids, f.question(t, "q", science))
	}

	page, err := f.service.ListQuestions(ctx, 1)
	require.NoError(t, err)
	require.Len(t, page.Questions, 10)
	assert.Equal(t, int64(15), page.Total)
	assert.Equal(t, ids[0], page.Questions[0].ID)
	assert.Equal(t, map[uint]string{science: "Science"}, page.Categories)

	page, err = f.service.ListQuestions(ctx, 2)
	require.NoError(t, err)
	require.Len(t, page.Questions, 5)
	assert.Equal(t, int64(15), page.Total, "total counts every page")
	assert.Equal(t, ids[10], page.Questions[0].ID)

	_, err = f.service.ListQuestions(ctx, 3)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestListQuestionsWithoutCategories(t *testing.T) {
	f := newFixture(t)
	f.question(t, "orphan", 99)

	_, err := f.service.ListQuestions(context.Background(), 1)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestDeleteQuestion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	science := f.category(t, "Science")
	keep := f.question(t, "keep", science)
	drop := f.question(t, "drop", science)

	deleted, err := f.service.DeleteQuestion(ctx, drop)
	require.NoError(t, err)
	assert.Equal(t, drop, deleted)

	page, err := f.service.ListQuestions(ctx, 1)
	require.NoError(t, err)
	require.Len(t, page.Questions, 1)
	assert.Equal(t, keep, page.Questions[0].ID)

	_, err = f.service.DeleteQuestion(ctx, drop)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCreateQuestion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.service.CreateQuestion(ctx, services.NewQuestion{})
	require.NoError(t, err)
	assert.NotZero(t, first)

	_, err = f.service.DeleteQuestion(ctx, first)
	require.NoError(t, err)

	second, err := f.service.CreateQuestion(ctx, services.NewQuestion{
		Question:   strPtr("What is the heaviest organ in the human body?"),
		Answer:     strPtr("The Liver"),
		Category:   intPtr(1),
		Difficulty: intPtr(4),
	})
	require.NoError(t, err)
	assert.Greater(t, second, first, "ids are never reused")

	stored, err := f.store.GetQuestion(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "The Liver", *stored.Answer)
	assert.Equal(t, 4, *stored.Difficulty)
}

func TestSearchQuestions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	art := f.category(t, "Art")
	titled := f.question(t, "What movie earned Tom Hanks his third Title?", art)
	f.question(t, "Who painted the Mona Lisa?", art)

	result, err := f.service.SearchQuestions(ctx, strPtr("title"))
	require.NoError(t, err)
	require.Len(t, result.Questions, 1)
	assert.Equal(t, titled, result.Questions[0].ID)
	assert.Equal(t, 1, result.Total)

	result, err = f.service.SearchQuestions(ctx, strPtr("MONA"))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)

	result, err = f.service.SearchQuestions(ctx, strPtr("zebra"))
	require.NoError(t, err)
	assert.Empty(t, result.Questions)
	assert.Equal(t, 0, result.Total)

	result, err = f.service.SearchQuestions(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
}

func TestQuestionsByCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	science := f.category(t, "Science")
	art := f.category(t, "Art")
	f.question(t, "science 1", science)
	f.question(t, "art 1", art)
	f.question(t, "science 2", science)

	result, err := f.service.QuestionsByCategory(ctx, science)
	require.NoError(t, err)
	assert.Equal(t, "Science", result.CurrentCategory)
	assert.Equal(t, 2, result.Total)
	for _, q := range result.Questions {
		assert.Equal(t, int(science), *q.Category)
	}

	_, err = f.service.QuestionsByCategory(ctx, 404)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestNextQuizQuestion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	science := f.category(t, "Science")
	art := f.category(t, "Art")
	s1 := f.question(t, "science 1", science)
	s2 := f.question(t, "science 2", science)
	a1 := f.question(t, "art 1", art)

	t.Run("excludes previous questions", func(t *testing.T) {
		q, err := f.service.NextQuizQuestion(ctx, services.QuizRequest{
			PreviousQuestions: []uint{s1, a1},
		})
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, s2, q.ID)
	})

	t.Run("filters by category", func(t *testing.T) {
		q, err := f.service.NextQuizQuestion(ctx, services.QuizRequest{CategoryID: int(art)})
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, a1, q.ID)
	})

	t.Run("exhausted category returns nil", func(t *testing.T) {
		q, err := f.service.NextQuizQuestion(ctx, services.QuizRequest{
			PreviousQuestions: []uint{s1, s2},
			CategoryID:        int(science),
		})
		require.NoError(t, err)
		assert.Nil(t, q)
	})

	t.Run("uses the random source", func(t *testing.T) {
		svc := services.NewTriviaService(f.store).WithRand(func(n int) int { return n - 1 })
		q, err := svc.NextQuizQuestion(ctx, services.QuizRequest{})
		require.NoError(t, err)
		assert.Equal(t, a1, q.ID)
	})

	t.Run("negative category", func(t *testing.T) {
		_, err := f.service.NextQuizQuestion(ctx, services.QuizRequest{CategoryID: -1})
		assert.ErrorIs(t, err, services.ErrBadRequest)
	})
}

func TestNextQuizQuestionIsUniform(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	science := f.category(t, "Science")
	ids := []uint{
		f.question(t, "a", science),
		f.question(t, "b", science),
		f.question(t, "c", science),
		f.question(t, "d", science),
	}

	const draws = 4000
	counts := make(map[uint]int)
	for i := 0; i < draws; i++ {
		q, err := f.service.NextQuizQuestion(ctx, services.QuizRequest{CategoryID: int(science)})
		require.NoError(t, err)
		counts[q.ID]++
	}

	// expected 1000 each; sd is about 27
	for _, id := range ids {
		assert.InDelta(t, draws/len(ids), counts[id], 200, "question %d drawn %d times", id, counts[id])
	}
}

type failingStore struct {
	repository.Store
}

var errBroken = errors.New("connection refused")

func (failingStore) ListCategories(context.Context) ([]models.Category, error) {
	return nil, errBroken
}

func (failingStore) ListQuestions(context.Context, repository.QuestionFilter) ([]models.Question, error) {
	return nil, errBroken
}

func (failingStore) GetQuestion(context.Context, uint) (*models.Question, error) {
	return nil, errBroken
}

func (failingStore) CreateQuestion(context.Context, *models.Question) error {
	return errBroken
}

func TestStorageFaultsAreUnprocessable(t *testing.T) {
	svc := services.NewTriviaService(failingStore{})
	ctx := context.Background()

	_, err := svc.CreateQuestion(ctx, services.NewQuestion{})
	assert.ErrorIs(t, err, services.ErrUnprocessable)
	assert.ErrorIs(t, err, errBroken)

	_, err = svc.SearchQuestions(ctx, strPtr("x"))
	assert.ErrorIs(t, err, services.ErrUnprocessable)

	_, err = svc.DeleteQuestion(ctx, 1)
	assert.ErrorIs(t, err, services.ErrUnprocessable)

	_, err = svc.NextQuizQuestion(ctx, services.QuizRequest{})
	assert.ErrorIs(t, err, services.ErrUnprocessable)

	_, err = svc.ListCategories(ctx)
	assert.ErrorIs(t, err, services.ErrUnprocessable)
	assert.NotErrorIs(t, err, services.ErrNotFound)
}

func TestExport(t *testing.T) {
	f := newFixture(t)
	science := f.category(t, "Science")
	f.question(t, "science 1", science)
	f.question(t, "dangling", 42)

	data, err := f.service.Export(context.Background())
	require.NoError(t, err)
	require.Len(t, data.Categories, 1)
	assert.Equal(t, "Science", data.Categories[0].Type)
	assert.Len(t, data.Categories[0].Questions, 1)
	require.Len(t, data.Questions, 1)
	assert.Equal(t, 42, *data.Questions[0].Category)
}
