package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homelandmeals/backend/internal/ai"
	"homelandmeals/backend/internal/api"
	"homelandmeals/backend/internal/config"
	"homelandmeals/backend/internal/repository/mongo"
	"homelandmeals/backend/internal/service"
	"homelandmeals/backend/internal/storage"
	"homelandmeals/backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.NewDevelopment().Fatalf("could not load config: %v", err)
	}

	log := logger.New(cfg.Log.Level)
	defer log.Sync()
	log.Infow("starting server", "address", cfg.Server.Address)

	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("could not connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Errorw("failed to disconnect MongoDB", "error", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Infow("database connection established", "database", cfg.Database.Name)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureProfileIndexes(ctx, appDB.Collection("user_profiles"))
		mongo.EnsureFoodIndexes(ctx, appDB.Collection("food_entries"))
		mongo.EnsureWorkoutIndexes(ctx, appDB.Collection("workout_entries"))
		mongo.EnsureRecipeIndexes(ctx, appDB.Collection("recipes"))
		mongo.EnsureSubscriberIndexes(ctx, appDB.Collection("email_subscribers"))
		log.Infow("index creation completed")
	}()

	store := mongo.NewStore(appDB)
	profileRepo := mongo.NewMongoProfileRepository(store)
	foodRepo := mongo.NewMongoFoodRepository(store)
	workoutRepo := mongo.NewMongoWorkoutRepository(store)
	recipeRepo := mongo.NewMongoRecipeRepository(store)
	subscriberRepo := mongo.NewMongoSubscriberRepository(store)

	var archive storage.ImageArchive
	if cfg.S3.BucketName != "" {
		archive, err = storage.NewS3Archive(cfg.S3, log)
		if err != nil {
			log.Fatalf("failed to initialize S3 archive: %v", err)
		}
		log.Infow("image archive enabled", "bucket", cfg.S3.BucketName)
	}

	aiService := ai.NewService(ai.NewGateway(cfg.LLM), log)

	trackingService := service.NewTrackingService(profileRepo, foodRepo, workoutRepo, aiService, archive, log)
	recipeService := service.NewRecipeService(recipeRepo, aiService, log)
	subscriberService := service.NewSubscriberService(subscriberRepo, log)

	router := gin.Default()
	api.SetupRoutes(router, cfg.CORS, trackingService, recipeService, subscriberService, aiService)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Infow("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Infow("server exited")
}
