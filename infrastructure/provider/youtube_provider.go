package provider

import (
	"context"
	"fmt"
	"github.com/sosodev/duration"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
	"time"
	"youtube_etl/internal/core/domain"
	"youtube_etl/internal/core/ports"
)

type youtubeProvider struct {
	log     ports.LoggerPort
	service *youtube.Service
	now     func() time.Time
}

func NewYoutubeProvider(ctx context.Context, logger ports.LoggerPort, opts ...option.ClientOption) (ports.YoutubePort, error) {
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		logger.Error("error while create youtube service", err)
		return nil, fmt.Errorf("error while create youtube service: %w", err)
	}

	logger.Info("Create youtube service completed")

	return &youtubeProvider{
		log:     logger,
		service: service,
		now:     time.Now,
	}, nil
}

// SearchChannelVideos reads a single page of search results; no pagination.
func (s *youtubeProvider) SearchChannelVideos(ctx context.Context, channelID string, opts domain.SearchOptions) ([]domain.VideoRecord, error) {
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	call := s.service.Search.List([]string{"snippet"}).
		ChannelId(channelID).
		MaxResults(int64(opts.MaxResults)).
		Context(ctx)

	if opts.PublishedWithin != "" {
		window, err := duration.Parse(opts.PublishedWithin)
		if err != nil {
			return nil, fmt.Errorf("error while parsing published window %q: %w", opts.PublishedWithin, err)
		}

		publishedAfter := s.now().Add(-window.ToTimeDuration()).UTC().Format(time.RFC3339)
		call = call.PublishedAfter(publishedAfter)
	}

	response, err := call.Do()
	if err != nil {
		s.log.Error("error while call youtube service", err)
		return nil, fmt.Errorf("error in call youtube api: %w", err)
	}

	videos := make([]domain.VideoRecord, 0, len(response.Items))
	for _, item := range response.Items {
		kind := ""
		if item.Id != nil {
			kind = item.Id.Kind
		}

		if kind != domain.VideoKind {
			s.log.Info(fmt.Sprintf("Skipping non-video item: %s", kind))
			continue
		}

		if len(videos) == opts.MaxResults {
			break
		}

		videos = append(videos, toVideoRecord(item))
	}

	return videos, nil
}

func toVideoRecord(item *youtube.SearchResult) domain.VideoRecord {
	video := domain.VideoRecord{
		VideoURL: domain.VideoURL(item.Id.VideoId),
	}

	if item.Snippet != nil {
		video.Title = item.Snippet.Title
		video.Description = item.Snippet.Description
	}

	return video
}
