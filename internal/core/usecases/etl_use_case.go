package usecases

import (
	"context"
	"youtube_etl/internal/core/domain"
	"youtube_etl/internal/core/ports"
)

type etlUseCase struct {
	service  ports.YoutubePort
	exporter ports.ExporterPort
	storage  ports.StoragePort
	log      ports.LoggerPort
}

type ETLUseCase interface {
	FetchVideos(ctx context.Context, channelID string, opts domain.SearchOptions) ([]domain.VideoRecord, error)
	TransformVideos(videos []domain.VideoRecord) []domain.VideoRecord
	ExportVideos(videos []domain.VideoRecord, baseFilename string) (string, error)
	UploadFile(ctx context.Context, filename string)
	RunETL(ctx context.Context, channelID string, opts domain.SearchOptions, baseFilename string) (string, error)
}

func NewETLUseCase(service ports.YoutubePort, exporter ports.ExporterPort, storage ports.StoragePort, logger ports.LoggerPort) ETLUseCase {
	return &etlUseCase{
		service:  service,
		exporter: exporter,
		storage:  storage,
		log:      logger,
	}
}
