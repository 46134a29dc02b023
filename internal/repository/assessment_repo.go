package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nexaterminal/internal/model"
)

// AssessmentRepo handles MongoDB operations for assessments.
// Records are never updated: each submission is a new document.
type AssessmentRepo interface {
	Insert(ctx context.Context, a *model.Assessment) error
	GetLatest(ctx context.Context, userID, topic string) (*model.Assessment, error)
	ListByUser(ctx context.Context, userID, topic string, limit int) ([]*model.Assessment, error)
	EnsureIndexes(ctx context.Context) error
}

type assessmentRepo struct {
	collection *mongo.Collection
}

// NewAssessmentRepo creates a new assessment repository
func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{
		collection: db.Collection("assessments"),
	}
}

func (r *assessmentRepo) Insert(ctx context.Context, a *model.Assessment) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, a)
	return err
}

func (r *assessmentRepo) GetLatest(ctx context.Context, userID, topic string) (*model.Assessment, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var a model.Assessment
	err := r.collection.FindOne(ctx, bson.M{"userId": userID, "topic": topic}, opts).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assessmentRepo) ListByUser(ctx context.Context, userID, topic string, limit int) ([]*model.Assessment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID, "topic": topic}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	assessments := []*model.Assessment{}
	if err := cursor.All(ctx, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *assessmentRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "topic", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("user_topic_created"),
	})
	return err
}
