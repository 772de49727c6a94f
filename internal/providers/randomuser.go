package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pratik-mahalle/userboard/internal/domain/user"
)

// RandomUserSource fetches one generated user from a randomuser.me style API
type RandomUserSource struct {
	fetcher *Fetcher
	url     string
}

// NewRandomUserSource creates a random user source for url
func NewRandomUserSource(fetcher *Fetcher, url string) *RandomUserSource {
	return &RandomUserSource{fetcher: fetcher, url: url}
}

type randomUserResponse struct {
	Results []randomUserResult `json:"results"`
}

type randomUserResult struct {
	Name struct {
		First string `json:"first"`
		Last  string `json:"last"`
	} `json:"name"`
	Email    string `json:"email"`
	Location struct {
		Street struct {
			Name string `json:"name"`
		} `json:"street"`
		City     string   `json:"city"`
		Postcode postcode `json:"postcode"`
	} `json:"location"`
}

// postcode accepts both the string and the numeric form the API returns
type postcode string

func (p *postcode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = postcode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("postcode: %w", err)
	}
	*p = postcode(n.String())
	return nil
}

// FetchRandom retrieves a single random user mapped to the internal shape
func (s *RandomUserSource) FetchRandom(ctx context.Context) (user.Input, error) {
	var resp randomUserResponse
	if err := s.fetcher.getJSON(ctx, "random_user", s.url, &resp); err != nil {
		return user.Input{}, err
	}
	if len(resp.Results) == 0 {
		return user.Input{}, fmt.Errorf("random user response has no results")
	}
	return resp.Results[0].toInput(), nil
}

func (r randomUserResult) toInput() user.Input {
	return user.Input{
		Name:    strings.TrimSpace(r.Name.First + " " + r.Name.Last),
		Email:   r.Email,
		Street:  r.Location.Street.Name,
		City:    r.Location.City,
		Zipcode: string(r.Location.Postcode),
	}
}
