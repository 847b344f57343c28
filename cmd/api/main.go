package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"smartagri/internal/adapter/api"
	"smartagri/internal/adapter/api/handler"
	apimiddleware "smartagri/internal/adapter/api/middleware"
	"smartagri/internal/adapter/api/router"
	"smartagri/internal/adapter/repository"
	"smartagri/internal/infrastructure/firebase"
	"smartagri/internal/infrastructure/storage"
	"smartagri/internal/infrastructure/telemetry"
	"smartagri/internal/infrastructure/weather"
	"smartagri/internal/infrastructure/websocket"
	"smartagri/internal/usecase"
	"smartagri/pkg/config"
	"smartagri/pkg/i18n"
	"smartagri/pkg/logger"
)

const serviceName = "smartagri-api"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration: %v", err)
	}

	logger.Configure(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		logger.Fatal("Failed to set up tracing: %v", err)
	}
	defer shutdownTracing(context.Background())

	var opt option.ClientOption
	if cfg.ServiceAccountJSON != "" {
		logger.Info("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON))
	} else {
		if _, err := os.Stat(cfg.ServiceAccountPath); os.IsNotExist(err) {
			logger.Fatal("Service account file does not exist: %s", cfg.ServiceAccountPath)
		}
		logger.Info("Using Firebase service account from file: %s", cfg.ServiceAccountPath)
		opt = option.WithCredentialsFile(cfg.ServiceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		logger.Fatal("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		logger.Fatal("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	bucket := cfg.StorageBucket
	if bucket == "" {
		bucket = cfg.FirebaseProject + ".appspot.com"
	}
	storageClient, err := storage.NewCloudStorageClient(ctx, bucket, opt)
	if err != nil {
		logger.Fatal("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	cropRepo := repository.NewFirestoreCropRepository(firestoreClient)
	equipmentRepo := repository.NewFirestoreEquipmentRepository(firestoreClient)
	expertRepo := repository.NewFirestoreExpertRepository(firestoreClient)
	bookingRepo := repository.NewFirestoreBookingRepository(firestoreClient)
	ticketRepo := repository.NewFirestoreSupportTicketRepository(firestoreClient)
	documents := repository.NewFirestoreDocumentStore(firestoreClient)
	liveSource := repository.NewFirestoreSource(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)
	weatherClient := weather.NewClient(cfg.WeatherBaseURL, cfg.WeatherApiKey)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	listingUseCase := usecase.NewListingUseCase(cropRepo, equipmentRepo)
	expertUseCase := usecase.NewExpertUseCase(expertRepo)
	gateway := usecase.NewMutationGateway(documents, expertRepo, bookingRepo)
	supportUseCase := usecase.NewSupportUseCase(ticketRepo)
	contentUseCase := usecase.NewContentUseCase()
	weatherUseCase := usecase.NewWeatherUseCase(weatherClient, cfg.WeatherFallbackCity)
	dashboardUseCase := usecase.NewDashboardUseCase(cropRepo, equipmentRepo, expertRepo, bookingRepo)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	handler.Setup(
		authUseCase,
		listingUseCase,
		expertUseCase,
		gateway,
		supportUseCase,
		contentUseCase,
		weatherUseCase,
		dashboardUseCase,
	)
	handler.SetupUploadHandler(storageClient)
	handler.SetupHealthHandler(
		handler.BackendCheck{Name: "auth", Tester: firebaseAuthClient},
		handler.BackendCheck{Name: "firestore", Tester: liveSource},
	)
	handler.SetupDashboardSocketHandler(wsManager, liveSource, authUseCase, gateway, cfg.WebSocketOrigins)

	defaultLanguage, _ := i18n.Parse(cfg.DefaultLanguage)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(apimiddleware.Language(defaultLanguage))

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authUseCase)

	router.Setup(e, authMiddleware)

	go func() {
		logger.Info("Starting server on port %s...", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down, %d dashboard connections open", wsManager.Count())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed: %v", err)
	}
}
