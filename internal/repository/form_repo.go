package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/monosijkayal/open-form/internal/model"
)

// FormRepo handles MongoDB operations for forms
type FormRepo interface {
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, form *model.Form) error
	GetByFormID(ctx context.Context, formID string) (*model.Form, error)
	GetByShareID(ctx context.Context, shareID string) (*model.Form, error)
	Update(ctx context.Context, formID string, patch *model.FormPatch) error
}

type formRepo struct {
	collection *mongo.Collection
}

// NewFormRepo creates a new form repository
func NewFormRepo(db *mongo.Database) FormRepo {
	return &formRepo{
		collection: db.Collection("forms"),
	}
}

// EnsureIndexes creates the unique indexes on formId and shareId. These are
// the correctness backstop for generated identifiers: a collision surfaces
// as a duplicate-key error on insert instead of a silent overwrite.
func (r *formRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "formId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "shareId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

func (r *formRepo) Create(ctx context.Context, form *model.Form) error {
	now := time.Now()
	if form.CreatedAt.IsZero() {
		form.CreatedAt = now
	}
	form.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, form)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		form.ID = oid.Hex()
	}
	return nil
}

func (r *formRepo) GetByFormID(ctx context.Context, formID string) (*model.Form, error) {
	return r.findOne(ctx, bson.M{"formId": formID})
}

func (r *formRepo) GetByShareID(ctx context.Context, shareID string) (*model.Form, error) {
	return r.findOne(ctx, bson.M{"shareId": shareID})
}

func (r *formRepo) findOne(ctx context.Context, filter bson.M) (*model.Form, error) {
	var form model.Form
	err := r.collection.FindOne(ctx, filter).Decode(&form)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &form, nil
}

// Update applies the non-nil fields of patch to the form. CreatedAt and the
// generated identifiers other than editKey are never touched.
func (r *formRepo) Update(ctx context.Context, formID string, patch *model.FormPatch) error {
	set := bson.M{"updatedAt": time.Now()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.HeaderImageURL != nil {
		set["headerImageUrl"] = *patch.HeaderImageURL
	}
	if patch.Questions != nil {
		set["questions"] = *patch.Questions
	}
	if patch.EditKey != nil {
		set["editKey"] = *patch.EditKey
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"formId": formID}, bson.M{"$set": set})
	return err
}
