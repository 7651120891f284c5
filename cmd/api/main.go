package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"roadwatch/internal/adapter/api"
	"roadwatch/internal/adapter/api/handler"
	apimiddleware "roadwatch/internal/adapter/api/middleware"
	"roadwatch/internal/adapter/api/router"
	"roadwatch/internal/adapter/repository"
	"roadwatch/internal/domain/service"
	"roadwatch/internal/infrastructure/analyzer"
	"roadwatch/internal/infrastructure/auth"
	"roadwatch/internal/infrastructure/mail"
	"roadwatch/internal/infrastructure/storage"
	"roadwatch/internal/usecase"
	"roadwatch/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirestoreProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	var mediaStore service.MediaStore
	switch cfg.StorageBackend {
	case "gcs":
		gcsStore, err := storage.NewGCSStore(ctx, cfg.StorageBucket, cfg.CredentialsPath)
		if err != nil {
			log.Fatalf("Failed to initialize Cloud Storage: %v", err)
		}
		defer gcsStore.Close()
		mediaStore = gcsStore
	default:
		localStore, err := storage.NewLocalStore(cfg.UploadDir)
		if err != nil {
			log.Fatalf("Failed to initialize local storage: %v", err)
		}
		mediaStore = localStore
	}

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	reportRepo := repository.NewFirestoreReportRepository(firestoreClient)

	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)
	imageAnalyzer := analyzer.NewProcessAnalyzer(cfg.AnalyzerCommand, cfg.AnalyzerScript, cfg.AnalyzerTimeout)
	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)

	authUseCase := usecase.NewAuthUseCase(userRepo, tokenManager, cfg.OfficerSecret)
	reportUseCase := usecase.NewReportUseCase(reportRepo, mediaStore, imageAnalyzer, filepath.Join(os.TempDir(), "roadwatch"))
	officerUseCase := usecase.NewOfficerUseCase(reportRepo, userRepo, mailer)

	handler.Setup(authUseCase, reportUseCase, officerUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("12M"))

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenManager, userRepo)
	officerMiddleware := apimiddleware.NewOfficerMiddleware()

	router.Setup(e, authMiddleware, officerMiddleware)

	if cfg.StorageBackend != "gcs" {
		e.Static("/uploads", cfg.UploadDir)
	}

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
