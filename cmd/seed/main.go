package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/monosijkayal/open-form/internal/cache"
	"github.com/monosijkayal/open-form/internal/config"
	"github.com/monosijkayal/open-form/internal/model"
	"github.com/monosijkayal/open-form/internal/repository"
	"github.com/monosijkayal/open-form/internal/service"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)

	formRepo := repository.NewFormRepo(db)
	if err := formRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create form indexes: %v", err)
	}

	formSvc := service.NewFormService(formRepo, cache.NewNoopFormCache(), cfg.BaseURL)

	answerKey := model.NewAnswerValue("blue")
	form := &model.Form{
		Title:       "Customer Feedback",
		Description: "A short demo form covering every question type.",
		Questions: []model.Question{
			{
				ID:      uuid.New().String(),
				Type:    model.QuestionTypeCategorize,
				Title:   "Which plan are you on?",
				Content: "Pick the option that matches your subscription.",
				Options: []string{"Free", "Pro", "Enterprise"},
			},
			{
				ID:            uuid.New().String(),
				Type:          model.QuestionTypeCloze,
				Title:         "Fill in the blank",
				Content:       "The sky is ___",
				CorrectAnswer: &answerKey,
			},
			{
				ID:      uuid.New().String(),
				Type:    model.QuestionTypeComprehension,
				Title:   "Tell us more",
				Content: "Describe the last problem you solved with the product.",
			},
		},
	}

	created, err := formSvc.Create(ctx, form)
	if err != nil {
		log.Fatalf("Failed to seed form: %v", err)
	}

	fmt.Println("Seeded demo form:")
	fmt.Printf("  formId:   %s\n", created.FormID)
	fmt.Printf("  editKey:  %s\n", created.EditKey)
	fmt.Printf("  shareId:  %s\n", created.ShareID)
	fmt.Printf("  shareUrl: %s\n", formSvc.ShareURL(created.ShareID))
}
