package providers

import (
	"context"

	"github.com/pratik-mahalle/userboard/internal/domain/user"
)

// PlaceholderSource loads the initial user list from a JSONPlaceholder
// style endpoint, which already serves the internal user shape
type PlaceholderSource struct {
	fetcher *Fetcher
	url     string
}

// NewPlaceholderSource creates a source reading users from url
func NewPlaceholderSource(fetcher *Fetcher, url string) *PlaceholderSource {
	return &PlaceholderSource{fetcher: fetcher, url: url}
}

// FetchUsers retrieves the initial user list
func (s *PlaceholderSource) FetchUsers(ctx context.Context) ([]user.User, error) {
	var users []user.User
	if err := s.fetcher.getJSON(ctx, "users", s.url, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []user.User{}
	}
	return users, nil
}
