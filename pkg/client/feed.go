package client

import (
	"context"
	"net/http"
)

// FeedService controls the random user feed
type FeedService struct {
	client *Client
}

// Status returns the feed state
func (s *FeedService) Status(ctx context.Context) (*FeedStatus, error) {
	var st FeedStatus
	if _, err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/feed", nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// Start starts the feed and returns the server's message with the new state
func (s *FeedService) Start(ctx context.Context) (string, *FeedStatus, error) {
	return s.toggle(ctx, "/api/v1/feed/start")
}

// Stop stops the feed and returns the server's message with the new state
func (s *FeedService) Stop(ctx context.Context) (string, *FeedStatus, error) {
	return s.toggle(ctx, "/api/v1/feed/stop")
}

func (s *FeedService) toggle(ctx context.Context, path string) (string, *FeedStatus, error) {
	var st FeedStatus
	msg, err := s.client.doRequest(ctx, http.MethodPost, path, nil, &st)
	if err != nil {
		return "", nil, err
	}
	return msg, &st, nil
}
