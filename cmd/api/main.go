package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/institute-cms/internal/application/asset"
	"github.com/institute-cms/internal/config"
	"github.com/institute-cms/internal/infrastructure/dynamo"
	jwtinfra "github.com/institute-cms/internal/infrastructure/jwt"
	"github.com/institute-cms/internal/infrastructure/localfs"
	s3infra "github.com/institute-cms/internal/infrastructure/s3"
	"github.com/institute-cms/internal/infrastructure/smtp"
	snsinfra "github.com/institute-cms/internal/infrastructure/sns"
	transporthttp "github.com/institute-cms/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		slog.Error("startup failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, reading from environment")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)})))

	ctx := context.Background()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient, err := dynamo.NewClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("dynamo client: %w", err)
	}
	dynamo.Bootstrap(ctx, dynamoClient, cfg.DynamoTables)

	jwtProvider, err := jwtinfra.NewProvider(cfg)
	if err != nil {
		return fmt.Errorf("jwt provider: %w", err)
	}

	var (
		objects  asset.ObjectStore
		staticFS http.FileSystem
	)
	switch cfg.StorageBackend {
	case config.StorageS3:
		s3Client, err := s3infra.NewClient(ctx, cfg)
		if err != nil {
			return fmt.Errorf("s3 client: %w", err)
		}
		objects = s3infra.NewStore(s3Client, cfg.S3BucketName, cfg.S3PublicBaseURL)
	default:
		if err := os.MkdirAll(cfg.LocalStorageRoot, 0o755); err != nil {
			return fmt.Errorf("local storage root: %w", err)
		}
		local := localfs.NewStore(cfg.LocalStorageRoot)
		objects = local
		staticFS = local.FileSystem()
	}

	notifier, err := snsinfra.NewNotifier(ctx, cfg)
	if err != nil {
		return fmt.Errorf("sns notifier: %w", err)
	}

	t := cfg.DynamoTables
	deps := &transporthttp.Deps{
		UserRepo:        dynamo.NewUserRepo(dynamoClient, t.Users, t.UserEmails),
		OTPRepo:         dynamo.NewOTPRepo(dynamoClient, t.OTPs),
		CourseRepo:      dynamo.NewCourseRepo(dynamoClient, t.Courses),
		CertificateRepo: dynamo.NewCertificateRepo(dynamoClient, t.Certificates),
		PlacementRepo:   dynamo.NewPlacementRepo(dynamoClient, t.Placements),
		BannerRepo:      dynamo.NewBannerRepo(dynamoClient, t.Banners),
		ReviewRepo:      dynamo.NewReviewRepo(dynamoClient, t.Reviews),
		Assets:          asset.NewManager(objects, notifier),
		Mailer:          smtp.NewMailer(cfg),
		JWTProvider:     jwtProvider,
		StaticFS:        staticFS,
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      transporthttp.NewRouter(cfg, deps),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.AppPort, "env", cfg.AppEnv, "storage", cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
