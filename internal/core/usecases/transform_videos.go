package usecases

import "youtube_etl/internal/core/domain"

func (uc *etlUseCase) TransformVideos(videos []domain.VideoRecord) []domain.VideoRecord {
	return domain.UnescapeDescriptions(videos)
}
