package usecases

import (
	"fmt"
	"youtube_etl/internal/core/domain"
)

func (uc *etlUseCase) ExportVideos(videos []domain.VideoRecord, baseFilename string) (string, error) {
	filename, err := uc.exporter.Export(videos, baseFilename)
	if err != nil {
		uc.log.Error("Failed to export videos", err)
		return "", fmt.Errorf("error while exporting videos: %w", err)
	}

	return filename, nil
}
