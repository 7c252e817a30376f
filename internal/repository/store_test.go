package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/daikiakiyoshi/trivia-api/internal/database/dbtest"
	"github.com/daikiakiyoshi/trivia-api/internal/models"
	"github.com/daikiakiyoshi/trivia-api/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// exerciseStore runs the same contract against every backend.
func exerciseStore(t *testing.T, store repository.Store) {
	ctx := context.Background()

	categories, err := store.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)

	science := models.Category{Type: "Science"}
	art := models.Category{Type: "Art"}
	require.NoError(t, store.CreateCategory(ctx, &science))
	require.NoError(t, store.CreateCategory(ctx, &art))
	assert.Less(t, science.ID, art.ID)

	categories, err = store.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Category{science, art}, categories)

	got, err := store.GetCategory(ctx, art.ID)
	require.NoError(t, err)
	assert.Equal(t, "Art", got.Type)

	_, err = store.GetCategory(ctx, art.ID+100)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	add := func(text string, category uint) models.Question {
		q := models.Question{Question: strPtr(text), Answer: strPtr("a"), Category: intPtr(int(category)), Difficulty: intPtr(2)}
		require.NoError(t, store.CreateQuestion(ctx, &q))
		require.NotZero(t, q.ID)
		return q
	}
	q1 := add("What is the Title of the book?", science.ID)
	q2 := add("Which planet is red?", science.ID)
	q3 := add("Who sculpted David?", art.ID)
	blank := models.Question{}
	require.NoError(t, store.CreateQuestion(ctx, &blank))

	all, err := store.ListQuestions(ctx, repository.QuestionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, []uint{q1.ID, q2.ID, q3.ID, blank.ID}, ids(all))
	assert.Nil(t, all[3].Question)

	total, err := store.CountQuestions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	found, err := store.ListQuestions(ctx, repository.QuestionFilter{Search: "tItLe"})
	require.NoError(t, err)
	assert.Equal(t, []uint{q1.ID}, ids(found))

	inScience, err := store.ListQuestions(ctx, repository.QuestionFilter{CategoryID: int(science.ID)})
	require.NoError(t, err)
	assert.Equal(t, []uint{q1.ID, q2.ID}, ids(inScience))

	rest, err := store.ListQuestions(ctx, repository.QuestionFilter{
		CategoryID: int(science.ID),
		ExcludeIDs: []uint{q1.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{q2.ID}, ids(rest))

	empty, err := store.ListQuestions(ctx, repository.QuestionFilter{ExcludeIDs: []uint{}})
	require.NoError(t, err)
	assert.Len(t, empty, 4, "an empty exclusion list excludes nothing")

	q, err := store.GetQuestion(ctx, q3.ID)
	require.NoError(t, err)
	assert.Equal(t, "Who sculpted David?", *q.Question)

	require.NoError(t, store.DeleteQuestion(ctx, q3.ID))
	_, err = store.GetQuestion(ctx, q3.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, store.DeleteQuestion(ctx, q3.ID), repository.ErrNotFound)

	next := add("after delete", art.ID)
	assert.Greater(t, next.ID, blank.ID)

	percent := add("What is 100% pure?", art.ID)
	for term, want := range map[string][]uint{
		"%":    {percent.ID},
		"0% p": {percent.ID},
		"_":    {},
		"!":    {},
		"1_0":  {},
	} {
		found, err := store.ListQuestions(ctx, repository.QuestionFilter{Search: term})
		require.NoError(t, err, term)
		assert.Equal(t, want, ids(found), "search %q", term)
	}
}

func ids(questions []models.Question) []uint {
	out := make([]uint, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.ID)
	}
	return out
}

func TestGormStore(t *testing.T) {
	exerciseStore(t, repository.NewGormStore(dbtest.New(t)))
}

func TestGormStoreSearchFoldsUnicode(t *testing.T) {
	ctx := context.Background()
	store := repository.NewGormStore(dbtest.New(t))

	school := models.Question{Question: strPtr("Which city hosts l'ÉCOLE polytechnique?")}
	other := models.Question{Question: strPtr("Who painted the Mona Lisa?")}
	require.NoError(t, store.CreateQuestion(ctx, &school))
	require.NoError(t, store.CreateQuestion(ctx, &other))

	found, err := store.ListQuestions(ctx, repository.QuestionFilter{Search: "école"})
	require.NoError(t, err)
	assert.Equal(t, []uint{school.ID}, ids(found))
}

func TestMongoStore(t *testing.T) {
	uri := os.Getenv("TRIVIA_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TRIVIA_TEST_MONGO_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, db, err := repository.ConnectMongo(ctx, uri, "trivia_test_"+uuid.NewString()[:8])
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Drop(context.Background())
		client.Disconnect(context.Background())
	})

	exerciseStore(t, repository.NewMongoStore(db))
}
