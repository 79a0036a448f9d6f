package ports

import "youtube_etl/internal/core/domain"

type ExporterPort interface {
	// Export writes the videos to a new timestamped file and returns its path.
	Export(videos []domain.VideoRecord, baseFilename string) (string, error)
}
