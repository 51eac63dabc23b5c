package main

import (
	"context"
	"log"
	"mado-service/internal/app/config"
	"mado-service/internal/app/delivery/http/controllers"
	"mado-service/internal/app/delivery/http/middlewares"
	"mado-service/internal/app/delivery/http/routers"
	"mado-service/internal/app/drivers/logger"
	"mado-service/internal/app/services/core/drafts"
	"mado-service/internal/app/services/shared/madoclient"
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
	zapLogger.Info("Starting MADO drafts front-end",
		zap.String("version", Version),
		zap.String("tag", Tag),
		zap.String("backend_base_url", internalConfig.Mado.BackendBaseUrl),
	)

	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()
	zapLogger.Info("Drafts front-end listening", zap.String("addr", internalConfig.App.Port))

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

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, internalConfig)

	// MADO backend client
	madoClient := madoclient.NewMadoClient(
		internalConfig.Mado.BackendBaseUrl,
		time.Duration(internalConfig.Mado.ClientTimeoutInSeconds)*time.Second,
		bootstrap.Logger,
	)

	// Drafts
	sessionIdleTimeout := time.Duration(internalConfig.App.SessionIdleTimeoutInMinutes) * time.Minute
	sessionRegistry := drafts.NewSessionRegistry(madoClient, internalConfig.Mado.ApproverID, sessionIdleTimeout, bootstrap.Logger)
	bootstrap.WorkerStop = sessionRegistry.StartJanitor(internalConfig.App.SessionJanitorCronSpec)
	draftsController := controllers.NewDraftsController(bootstrap.Logger, sessionRegistry, internalConfig.Mado.PreviewBaseUrl)

	routers.SetupDraftsRoutes(bootstrap.Router, internalConfig, middlewares, draftsController)
}
