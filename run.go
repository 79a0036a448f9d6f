package main

import (
	"context"
	"os"
	"youtube_etl/infrastructure/auth"
	"youtube_etl/infrastructure/config"
	"youtube_etl/infrastructure/exporter"
	"youtube_etl/infrastructure/logger"
	"youtube_etl/infrastructure/provider"
	"youtube_etl/infrastructure/storage"
	"youtube_etl/infrastructure/token_manager"
	"youtube_etl/internal/core/usecases"
	"youtube_etl/internal/handler/console"

	"github.com/google/uuid"
	"github.com/urfave/cli"
)

func run(c *cli.Context) error {
	cfg := config.NewConfigFromCLI(c)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Initialize Logger
	appLogger, err := logger.NewFileLogger(logger.Options{
		LogDir:    cfg.LogDir,
		LogPrefix: "youtube_etl",
		Level:     cfg.LogLevel,
		RunID:     uuid.New().String(),
	})
	if err != nil {
		return err
	}
	defer appLogger.Close()
	appLogger.Info("ETL run starting...")

	ctx := context.Background()

	// Initialize Services
	var tokenService token_manager.TokenService
	if cfg.YoutubeTokenFile != "" {
		tokenService = token_manager.NewTokenService(cfg.YoutubeTokenFile)
	}

	authService := auth.NewAuthenticationService(cfg.YoutubeAPIKey, cfg.YoutubeClientSecretFile, tokenService)
	clientOptions, err := authService.ClientOptions(ctx)
	if err != nil {
		appLogger.Error("Failed to resolve youtube credentials", err)
		return err
	}

	youtubeProvider, err := provider.NewYoutubeProvider(ctx, appLogger, clientOptions...)
	if err != nil {
		return err
	}

	s3Storage, err := storage.NewS3Storage(storage.S3Config{
		AccessKey: cfg.AWSAccessKey,
		SecretKey: cfg.AWSSecretKey,
		Bucket:    cfg.BucketName,
		Region:    cfg.AWSRegion,
		Endpoint:  cfg.AWSEndpoint,
	}, appLogger)
	if err != nil {
		return err
	}

	csvExporter := exporter.NewCSVExporter(cfg.OutputDir, appLogger)
	etlUseCase := usecases.NewETLUseCase(youtubeProvider, csvExporter, s3Storage, appLogger)

	filename, err := etlUseCase.RunETL(ctx, cfg.ChannelID, cfg.SearchOptions(), cfg.OutputFile)
	if err != nil {
		appLogger.Error("ETL run failed", err)
		return err
	}

	console.PrintResult(os.Stdout, filename)
	appLogger.Info("ETL run finished.")

	return nil
}
