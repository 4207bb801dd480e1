// Package main is the entry point for the cipher-stream-rest-api
// application. It wires the engine, backends, app services and the audit
// store, then serves the v1 REST API with graceful shutdown.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "cipher_stream_service/internal/api/rest/v1"
	"cipher_stream_service/internal/app"
	"cipher_stream_service/internal/infrastructure/cryptography"
	"cipher_stream_service/internal/infrastructure/engine"
	"cipher_stream_service/internal/infrastructure/persistence"
	"cipher_stream_service/internal/infrastructure/persistence/models"
	"cipher_stream_service/internal/pkg/config"
	"cipher_stream_service/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	restConfig, err := config.InitializeRestConfig()
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	cipherService *app.CipherService
	digestService *app.DigestService
}

func initializeDependencies(restConfig *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	db, err := persistence.NewDBConnection(restConfig.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.OperationModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	operationRepo, err := persistence.NewGormOperationRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation repository: %w", err)
	}

	eng := engine.New()
	cipherBackend, err := cryptography.NewCipherBackend(eng, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher backend: %w", err)
	}
	digestBackend, err := cryptography.NewDigestBackend(eng, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create digest backend: %w", err)
	}

	cipherService, err := app.NewCipherService(cipherBackend, operationRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher service: %w", err)
	}
	digestService, err := app.NewDigestService(digestBackend, operationRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create digest service: %w", err)
	}

	return &appDependencies{
		cipherService: cipherService,
		digestService: digestService,
	}, nil
}

func startServerWithGracefulShutdown(restConfig *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	r := gin.Default()
	r.Use(cors.Default())
	v1.SetupRoutes(r, deps.cipherService, deps.digestService)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", restConfig.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("serving REST API", "port", restConfig.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
