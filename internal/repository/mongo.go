package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/daikiakiyoshi/trivia-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	categoriesCollection = "categories"
	questionsCollection  = "questions"
	countersCollection   = "counters"
)

// MongoStore keeps integer ids by allocating them from a counters
// collection, one document per entity collection.
type MongoStore struct {
	categories *mongo.Collection
	questions  *mongo.Collection
	counters   *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		categories: db.Collection(categoriesCollection),
		questions:  db.Collection(questionsCollection),
		counters:   db.Collection(countersCollection),
	}
}

// ConnectMongo dials uri and verifies the connection with a ping.
func ConnectMongo(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, client.Database(database), nil
}

func byID() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
}

func (s *MongoStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	cursor, err := s.categories.Find(ctx, bson.M{}, byID())
	if err != nil {
		return nil, err
	}
	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *MongoStore) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := s.categories.FindOne(ctx, bson.M{"_id": id}).Decode(&category); err != nil {
		return nil, translateMongo(err)
	}
	return &category, nil
}

func (s *MongoStore) CreateCategory(ctx context.Context, category *models.Category) error {
	id, err := s.nextID(ctx, categoriesCollection)
	if err != nil {
		return err
	}
	category.ID = id
	_, err = s.categories.InsertOne(ctx, category)
	return err
}

func (s *MongoStore) ListQuestions(ctx context.Context, filter QuestionFilter) ([]models.Question, error) {
	query := bson.M{}
	if filter.Search != "" {
		query["question"] = bson.M{"$regex": regexp.QuoteMeta(filter.Search), "$options": "i"}
	}
	if filter.CategoryID != 0 {
		query["category"] = filter.CategoryID
	}
	if len(filter.ExcludeIDs) > 0 {
		query["_id"] = bson.M{"$nin": filter.ExcludeIDs}
	}

	cursor, err := s.questions.Find(ctx, query, byID())
	if err != nil {
		return nil, err
	}
	questions := []models.Question{}
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *MongoStore) CountQuestions(ctx context.Context) (int64, error) {
	return s.questions.CountDocuments(ctx, bson.M{})
}

func (s *MongoStore) GetQuestion(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	if err := s.questions.FindOne(ctx, bson.M{"_id": id}).Decode(&question); err != nil {
		return nil, translateMongo(err)
	}
	return &question, nil
}

func (s *MongoStore) CreateQuestion(ctx context.Context, question *models.Question) error {
	id, err := s.nextID(ctx, questionsCollection)
	if err != nil {
		return err
	}
	question.ID = id
	_, err = s.questions.InsertOne(ctx, question)
	return err
}

func (s *MongoStore) DeleteQuestion(ctx context.Context, id uint) error {
	result, err := s.questions.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// nextID increments and returns the sequence kept for collection.
func (s *MongoStore) nextID(ctx context.Context, collection string) (uint, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	update := bson.M{"$inc": bson.M{"seq": int64(1)}}
	err := s.counters.FindOneAndUpdate(ctx, bson.M{"_id": collection}, update, opts).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("allocate %s id: %w", collection, err)
	}
	return uint(counter.Seq), nil
}

func translateMongo(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
