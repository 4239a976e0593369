package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/snapspot-api/internal/boundary"
	"github.com/snapspot-api/internal/config"
	"github.com/snapspot-api/internal/infrastructure/dynamo"
	googleinfra "github.com/snapspot-api/internal/infrastructure/google"
	jwtinfra "github.com/snapspot-api/internal/infrastructure/jwt"
	s3infra "github.com/snapspot-api/internal/infrastructure/s3"
	"github.com/snapspot-api/internal/infrastructure/smtp"
	"github.com/snapspot-api/internal/infrastructure/sns"
	transporthttp "github.com/snapspot-api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Refuse to start if any error class is missing an HTTP status mapping.
	if err := boundary.Verify(); err != nil {
		log.Fatalf("error mapping incomplete: %v", err)
	}

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// JWT provider (optional — graceful fallback if keys are missing).
	var jwtProvider *jwtinfra.Provider
	if p, err := jwtinfra.NewProvider(cfg); err == nil {
		jwtProvider = p
	} else {
		log.Printf("WARN: JWT provider not available: %v", err)
	}

	// S3 store for uploaded pictures.
	s3Client := s3infra.NewClient(cfg)
	s3Store := s3infra.NewStore(s3Client, cfg)
	s3Store.EnsureBucket(context.Background())

	// SMTP mailer for verification emails.
	mailer := smtp.NewMailer(cfg)

	// SNS publisher for request-created events (optional).
	var publisher sns.Publisher
	if cfg.SNSRequestsTopicARN != "" {
		if p, err := sns.NewPublisher(cfg); err == nil {
			publisher = p
		} else {
			log.Printf("WARN: SNS publisher not available: %v", err)
		}
	}

	// Google ID token verifier (optional — Google sign-in disabled when unset).
	var googleVerifier *googleinfra.Verifier
	if cfg.GoogleClientID != "" {
		googleVerifier = googleinfra.NewVerifier(cfg.GoogleClientID)
	}

	deps := &transporthttp.Deps{
		UserRepo:         dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users),
		VerificationRepo: dynamo.NewVerificationRepo(dynamoClient, cfg.DynamoTables.Verifications),
		RequestRepo:      dynamo.NewRequestRepo(dynamoClient, cfg.DynamoTables.Requests),
		PictureRepo:      dynamo.NewPictureRepo(dynamoClient, cfg.DynamoTables.Pictures),
		S3Store:          s3Store,
		Mailer:           mailer,
		Publisher:        publisher,
		JWTProvider:      jwtProvider,
		GoogleVerifier:   googleVerifier,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
