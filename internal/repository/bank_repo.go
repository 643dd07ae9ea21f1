package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/monosijkayal/open-form/internal/model"
)

// BankRepo handles MongoDB operations for the standalone question bank
type BankRepo interface {
	Insert(ctx context.Context, q *model.BankQuestion) error
	List(ctx context.Context) ([]*model.BankQuestion, error)
}

type bankRepo struct {
	collection *mongo.Collection
}

// NewBankRepo creates a new question bank repository
func NewBankRepo(db *mongo.Database) BankRepo {
	return &bankRepo{
		collection: db.Collection("questions"),
	}
}

func (r *bankRepo) Insert(ctx context.Context, q *model.BankQuestion) error {
	now := time.Now()
	if q.CreatedAt.IsZero() {
		q.CreatedAt = now
	}
	q.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, q)
	return err
}

func (r *bankRepo) List(ctx context.Context) ([]*model.BankQuestion, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	questions := []*model.BankQuestion{}
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}
