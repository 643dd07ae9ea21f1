package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/monosijkayal/open-form/internal/cache"
	"github.com/monosijkayal/open-form/internal/config"
	"github.com/monosijkayal/open-form/internal/repository"
	"github.com/monosijkayal/open-form/internal/service"
	"github.com/monosijkayal/open-form/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories
	formRepo := repository.NewFormRepo(db)
	responseRepo := repository.NewResponseRepo(db)
	bankRepo := repository.NewBankRepo(db)

	// Unique indexes on formId/shareId back the identifier generator
	if err := formRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to create form indexes:", err)
	}

	// Initialize cache
	formCache := cache.NewFormCache(rdb)

	// Initialize services
	formSvc := service.NewFormService(formRepo, formCache, cfg.BaseURL)
	responseSvc := service.NewResponseService(responseRepo, formRepo)
	bankSvc := service.NewBankService(bankRepo)

	// Create router with container
	container := &rest.Container{
		FormService:     formSvc,
		ResponseService: responseSvc,
		BankService:     bankSvc,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /api/forms")
		log.Println("  GET  /api/forms/{formId}")
		log.Println("  GET  /api/forms/respond/{shareId}")
		log.Println("  PUT  /api/forms/{formId}?key=editKey")
		log.Println("  POST/GET /api/responses/{formId}")
		log.Println("  POST /api/responses/share/{shareId}")
		log.Println("  POST/GET /api/questions")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
