package ports

import (
	"context"
	"youtube_etl/internal/core/domain"
)

type YoutubePort interface {
	SearchChannelVideos(ctx context.Context, channelID string, opts domain.SearchOptions) ([]domain.VideoRecord, error)
}
