package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/pratik-mahalle/userboard/internal/pkg/metrics"
)

// maxBodyBytes caps how much of a source response is read
const maxBodyBytes = 4 << 20

// Fetcher performs read-only JSON GETs against remote sources. One Fetcher
// is shared by all sources so they draw from the same outbound budget.
type Fetcher struct {
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewFetcher creates a fetcher with the given timeout and request rate
func NewFetcher(timeout time.Duration, requestsPerSecond float64) *Fetcher {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Fetcher{
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// StatusError is returned for non-2xx source responses
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}

// getJSON fetches url and decodes the body into out
func (f *Fetcher) getJSON(ctx context.Context, source, url string, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		metrics.RecordSourceFetch(source, err, time.Since(start))
	}()

	if err := f.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}
