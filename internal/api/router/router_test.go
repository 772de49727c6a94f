package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratik-mahalle/userboard/internal/api/handlers"
	"github.com/pratik-mahalle/userboard/internal/config"
	"github.com/pratik-mahalle/userboard/internal/pkg/logger"
	"github.com/pratik-mahalle/userboard/internal/pkg/validator"
	"github.com/pratik-mahalle/userboard/internal/services"
	"github.com/pratik-mahalle/userboard/internal/testutil"
	"github.com/pratik-mahalle/userboard/internal/worker"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err)

	log := logger.Nop()
	val := validator.New()
	users := services.NewUserService(testutil.NewMockSource(testutil.SampleUsers()...), log, val)
	require.NoError(t, users.Load(context.Background()))
	feed := worker.NewRandomUserFeed(testutil.NewMockRandomSource(), users, time.Second, log)
	t.Cleanup(func() { feed.Stop() })

	done := make(chan struct{})
	t.Cleanup(func() { close(done) })

	srv := httptest.NewServer(New(cfg, log, &Handlers{
		Health: handlers.NewHealthHandler(users, log),
		User:   handlers.NewUserHandler(users, log, val),
		Feed:   handlers.NewFeedHandler(feed, log),
	}, done))
	t.Cleanup(srv.Close)
	return srv
}

func TestRouter_Routes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/readyz", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/api/v1/users?sort=email&page_size=10", "", http.StatusOK},
		{http.MethodGet, "/api/v1/users/1", "", http.StatusOK},
		{http.MethodPost, "/api/v1/users", `{"name":"Jane","email":"jane@example.com","street":"s","city":"c","zipcode":"1"}`, http.StatusCreated},
		{http.MethodDelete, "/api/v1/users/99", "", http.StatusNotFound},
		{http.MethodGet, "/api/v1/feed", "", http.StatusOK},
		{http.MethodPost, "/api/v1/feed/start", "", http.StatusOK},
		{http.MethodPost, "/api/v1/feed/stop", "", http.StatusOK},
		{http.MethodGet, "/api/v1/nowhere", "", http.StatusNotFound},
		{http.MethodGet, "/swagger/index.html", "", http.StatusOK},
		{http.MethodGet, "/swagger/doc.json", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, strings.NewReader(tt.body))
			require.NoError(t, err)
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}

			resp, err := srv.Client().Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
		})
	}
}

func TestRouter_ListEnvelope(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/api/v1/users?search=clem")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Users []struct {
				ID int64 `json:"id"`
			} `json:"users"`
			TotalPages int `json:"totalPages"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.True(t, body.Success)
	require.Len(t, body.Data.Users, 1)
	assert.Equal(t, int64(3), body.Data.Users[0].ID)
	assert.Equal(t, 1, body.Data.TotalPages)
}

func TestRouter_SwaggerDoc(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/swagger/doc.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc struct {
		Swagger string `json:"swagger"`
		Info    struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "Userboard API", doc.Info.Title)
	assert.Contains(t, doc.Paths["/api/v1/users"], "get")
	assert.Contains(t, doc.Paths["/api/v1/users"], "post")
	assert.Contains(t, doc.Paths["/api/v1/users/{id}"], "delete")
	assert.Contains(t, doc.Paths["/api/v1/feed/start"], "post")
}

func TestRouter_SecurityHeadersSkipSwagger(t *testing.T) {
	srv := newTestServer(t)

	api, err := srv.Client().Get(srv.URL + "/api/v1/users")
	require.NoError(t, err)
	api.Body.Close()
	assert.NotEmpty(t, api.Header.Get("Content-Security-Policy"))

	ui, err := srv.Client().Get(srv.URL + "/swagger/index.html")
	require.NoError(t, err)
	ui.Body.Close()
	assert.Empty(t, ui.Header.Get("Content-Security-Policy"))
}
