package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// UserService handles user-related API calls
type UserService struct {
	client *Client
}

// ListOptions selects a view of the user collection
type ListOptions struct {
	Search    string
	Sort      string // name, email, city or zipcode
	Direction string // asc or desc
	Page      int
	PageSize  int // 5, 10 or 15
}

// List retrieves one page of users
func (s *UserService) List(ctx context.Context, opts *ListOptions) (*UserList, error) {
	query := url.Values{}

	if opts != nil {
		if opts.Search != "" {
			query.Set("search", opts.Search)
		}
		if opts.Sort != "" {
			query.Set("sort", opts.Sort)
		}
		if opts.Direction != "" {
			query.Set("direction", opts.Direction)
		}
		if opts.Page > 0 {
			query.Set("page", strconv.Itoa(opts.Page))
		}
		if opts.PageSize > 0 {
			query.Set("page_size", strconv.Itoa(opts.PageSize))
		}
	}

	path := "/api/v1/users"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var list UserList
	if _, err := s.client.doRequest(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Get retrieves a single user
func (s *UserService) Get(ctx context.Context, id int64) (*User, error) {
	var u User
	if _, err := s.client.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create adds a user
func (s *UserService) Create(ctx context.Context, input UserInput) (*User, error) {
	var u User
	if _, err := s.client.doRequest(ctx, http.MethodPost, "/api/v1/users", input, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Update replaces a user
func (s *UserService) Update(ctx context.Context, id int64, input UserInput) (*User, error) {
	var u User
	if _, err := s.client.doRequest(ctx, http.MethodPut, fmt.Sprintf("/api/v1/users/%d", id), input, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Delete removes a user
func (s *UserService) Delete(ctx context.Context, id int64) error {
	_, err := s.client.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/users/%d", id), nil, nil)
	return err
}
