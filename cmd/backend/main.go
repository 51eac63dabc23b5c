package main

import (
	"context"
	"log"
	"mado-service/internal/app/config"
	"mado-service/internal/app/delivery/http/controllers"
	"mado-service/internal/app/delivery/http/middlewares"
	"mado-service/internal/app/delivery/http/routers"
	"mado-service/internal/app/drivers/database"
	"mado-service/internal/app/drivers/logger"
	"mado-service/internal/app/drivers/messaging"
	"mado-service/internal/app/drivers/storage"
	"mado-service/internal/app/services/core/mado"
	"mado-service/internal/app/services/shared/eventqueue"
	"mado-service/internal/app/services/shared/fax"
	"mado-service/internal/app/services/shared/locker"
	"mado-service/internal/app/services/shared/pdfrender"
	"mado-service/internal/app/services/shared/recipients"
	"mado-service/internal/app/services/shared/redis"
	minioStorage "mado-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	zapLogger.Info("Starting MADO backend",
		zap.String("version", Version),
		zap.String("tag", Tag),
	)

	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig, internalConfig.Minio.BucketName)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQConnection,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.Mado.BackendPort,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()
	zapLogger.Info("MADO backend listening", zap.String("addr", internalConfig.Mado.BackendPort))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	internalConfig := bootstrap.InternalConfig

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Storage
	draftStorage := minioStorage.NewMinioStorage(bootstrap.Minio)

	// Events
	eventPublisher, err := eventqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger, internalConfig.RabbitMQ.MadoEventsQueue)
	if err != nil {
		bootstrap.Logger.Fatal("Failed to initialize MADO event queue", zap.Error(err))
	}

	// Fax
	faxService := fax.NewInterfaxService(fax.Config{
		BaseUrl:           internalConfig.Interfax.BaseUrl,
		Username:          internalConfig.Interfax.Username,
		Password:          internalConfig.Interfax.Password,
		Timeout:           time.Duration(internalConfig.Interfax.HTTPTimeoutInSeconds) * time.Second,
		RequestsPerMinute: internalConfig.Interfax.RequestsPerMinute,
	}, bootstrap.Logger)

	// MADO
	madoUsecase := mado.NewMadoUsecase(
		draftStorage,
		pdfrender.NewMadoPDFRenderer(),
		recipients.NewRecipientDirectory(internalConfig.Mado.RecipientsFile, bootstrap.Logger),
		faxService,
		lockerService,
		eventPublisher,
		internalConfig,
		bootstrap.Logger,
	)
	madoController := controllers.NewMadoController(bootstrap.Logger, madoUsecase)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, internalConfig)

	routers.SetupMadoRoutes(bootstrap.Router, internalConfig, middlewares, madoController)
}
