//	@title			s3bb API
//	@version		1.0
//	@description	imgbb-compatible image upload backed by S3.
//
//	@host		localhost:3000
//	@BasePath	/

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"github.com/s3bb/service/internal/config"
	"github.com/s3bb/service/internal/logger"
	appMiddleware "github.com/s3bb/service/internal/middleware"
	"github.com/s3bb/service/internal/storage"
	"github.com/s3bb/service/internal/upload"

	_ "github.com/s3bb/service/docs/swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logg := logger.New(logger.Options{
		Level:       cfg.LogLevel,
		Path:        cfg.LogPath,
		Development: !cfg.IsProduction(),
	})
	defer func() { _ = logg.Sync() }()

	initCtx, initCancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := storage.NewMinioStorage(initCtx, storage.Options{
		Endpoint:     cfg.StorageEndpoint,
		Region:       cfg.StorageRegion,
		Bucket:       cfg.StorageBucket,
		AccessKey:    cfg.StorageAccessKey,
		SecretKey:    cfg.StorageSecretKey,
		UseSSL:       cfg.StorageUseSSL,
		PublicBase:   cfg.StoragePublicBase,
		PublicPolicy: cfg.StoragePublicPolicy,
	}, logg)
	initCancel()
	if err != nil {
		logg.Fatal("object storage init failed", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      newRouter(cfg, store, logg),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logg.Info("server listening", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv), zap.String("bucket", cfg.StorageBucket))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	logg.Info("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logg.Fatal("forced shutdown", zap.Error(err))
	}

	logg.Info("server stopped")
}

// newRouter wires storage → service → handler and the shared middleware stack.
func newRouter(cfg *config.Config, store storage.Storage, logg *zap.Logger) http.Handler {
	uploadSvc := upload.NewService(store, logg)
	uploadHandler := upload.NewHandler(uploadSvc, logg)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger(logg))
	r.Use(appMiddleware.Recover(logg))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger UI at /swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	uploadHandler.Mount(r, appMiddleware.NewKeySet(cfg.APIKeys), cfg.MaxUploadBytes)

	return r
}
