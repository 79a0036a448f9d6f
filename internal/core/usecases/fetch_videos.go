package usecases

import (
	"context"
	"fmt"
	"youtube_etl/internal/core/domain"
)

func (uc *etlUseCase) FetchVideos(ctx context.Context, channelID string, opts domain.SearchOptions) ([]domain.VideoRecord, error) {
	uc.log.Info("Init Fetch videos from channel " + channelID)

	if channelID == "" {
		return nil, fmt.Errorf("channel ID cannot be empty")
	}

	videos, err := uc.service.SearchChannelVideos(ctx, channelID, opts)
	if err != nil {
		uc.log.Error("Failed to fetch videos from channel", err)
		return nil, fmt.Errorf("error while fetching videos from channel %s: %w", channelID, err)
	}

	uc.log.Info(fmt.Sprintf("Fetch videos done, %d videos found", len(videos)))

	return videos, nil
}
