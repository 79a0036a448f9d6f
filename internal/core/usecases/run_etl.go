package usecases

import (
	"context"
	"youtube_etl/internal/core/domain"
)

// RunETL returns the exported file path, or "" when the channel had no videos.
func (uc *etlUseCase) RunETL(ctx context.Context, channelID string, opts domain.SearchOptions, baseFilename string) (string, error) {
	videos, err := uc.FetchVideos(ctx, channelID, opts)
	if err != nil {
		return "", err
	}

	if len(videos) == 0 {
		uc.log.Warning("No video data to process.")
		return "", nil
	}

	videos = uc.TransformVideos(videos)

	filename, err := uc.ExportVideos(videos, baseFilename)
	if err != nil {
		return "", err
	}

	uc.UploadFile(ctx, filename)

	uc.log.Info("ETL process completed")

	return filename, nil
}
