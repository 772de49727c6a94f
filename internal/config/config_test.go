package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://jsonplaceholder.typicode.com/users", cfg.Source.UsersURL)
	assert.Equal(t, "https://randomuser.me/api/", cfg.Source.RandomUserURL)
	assert.Equal(t, 10*time.Second, cfg.Feed.Interval)
	assert.False(t, cfg.Feed.AutoStart)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("FEED_INTERVAL", "3s")
	t.Setenv("FEED_AUTOSTART", "true")
	t.Setenv("SOURCE_USERS_URL", "http://localhost:1234/users")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Feed.Interval)
	assert.True(t, cfg.Feed.AutoStart)
	assert.Equal(t, "http://localhost:1234/users", cfg.Source.UsersURL)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")
	t.Setenv("FEED_INTERVAL", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Feed.Interval)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{name: "port out of range", env: map[string]string{"SERVER_PORT": "70000"}, wantErr: true},
		{name: "sub-second feed interval", env: map[string]string{"FEED_INTERVAL": "500ms"}, wantErr: true},
		{name: "unknown log level", env: map[string]string{"LOG_LEVEL": "verbose"}, wantErr: true},
		{name: "unknown log format", env: map[string]string{"LOG_FORMAT": "xml"}, wantErr: true},
		{name: "zero source rate", env: map[string]string{"SOURCE_REQUESTS_PER_SECOND": "0"}, wantErr: true},
		{name: "console logging", env: map[string]string{"LOG_FORMAT": "console"}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
