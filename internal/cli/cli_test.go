package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratik-mahalle/userboard/internal/api/handlers"
	"github.com/pratik-mahalle/userboard/internal/api/router"
	"github.com/pratik-mahalle/userboard/internal/config"
	"github.com/pratik-mahalle/userboard/internal/domain/user"
	"github.com/pratik-mahalle/userboard/internal/pkg/logger"
	"github.com/pratik-mahalle/userboard/internal/pkg/validator"
	"github.com/pratik-mahalle/userboard/internal/services"
	"github.com/pratik-mahalle/userboard/internal/testutil"
	"github.com/pratik-mahalle/userboard/internal/worker"
	"github.com/pratik-mahalle/userboard/pkg/client"
)

type harness struct {
	t       *testing.T
	cfgPath string
	url     string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err)

	log := logger.Nop()
	val := validator.New()
	users := services.NewUserService(testutil.NewMockSource(testutil.SampleUsers()...), log, val)
	require.NoError(t, users.Load(context.Background()))
	feed := worker.NewRandomUserFeed(testutil.NewMockRandomSource(), users, time.Minute, log)
	t.Cleanup(func() { feed.Stop() })

	done := make(chan struct{})
	srv := httptest.NewServer(router.New(cfg, log, &router.Handlers{
		Health: handlers.NewHealthHandler(users, log),
		User:   handlers.NewUserHandler(users, log, val),
		Feed:   handlers.NewFeedHandler(feed, log),
	}, done))
	t.Cleanup(func() {
		srv.Close()
		close(done)
	})

	origTerminal, origStdin := isTerminal, stdin
	isTerminal = func() bool { return false }
	t.Cleanup(func() {
		isTerminal, stdin, out = origTerminal, origStdin, os.Stdout
		viper.Reset()
	})

	return &harness{
		t:       t,
		cfgPath: filepath.Join(t.TempDir(), "config.yaml"),
		url:     srv.URL,
	}
}

// run executes the CLI in a fresh process-like state; only the config file
// carries over between runs
func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	viper.Reset()

	var buf bytes.Buffer
	out = &buf

	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--config", h.cfgPath, "--server", h.url}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func (h *harness) list(args ...string) client.UserList {
	h.t.Helper()
	output, err := h.run(append([]string{"users", "list", "-o", "json"}, args...)...)
	require.NoError(h.t, err)

	var list client.UserList
	require.NoError(h.t, json.Unmarshal([]byte(output), &list))
	return list
}

func listIDs(list client.UserList) []int64 {
	ids := make([]int64, len(list.Users))
	for i, u := range list.Users {
		ids[i] = u.ID
	}
	return ids
}

func TestUsersList_PersistsView(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, []int64{1, 2, 3}, listIDs(h.list()))

	asc := h.list("--sort", "name")
	assert.Equal(t, []int64{3, 2, 1}, listIDs(asc))
	assert.Equal(t, "asc", asc.Sort.Direction)

	desc := h.list("--sort", "name")
	assert.Equal(t, []int64{1, 2, 3}, listIDs(desc))
	assert.Equal(t, "desc", desc.Sort.Direction)

	again := h.list()
	assert.Equal(t, "desc", again.Sort.Direction, "sort survives between invocations")

	searched := h.list("--search", "clem")
	assert.Equal(t, []int64{3}, listIDs(searched))
	assert.Equal(t, "clem", searched.Search)

	reset := h.list("--reset")
	assert.Equal(t, []int64{1, 2, 3}, listIDs(reset))
	assert.Empty(t, reset.Search)
	assert.Empty(t, reset.Sort.Key)
}

func TestUsersList_SavesClampedPage(t *testing.T) {
	h := newHarness(t)

	list := h.list("--page", "4")
	assert.Equal(t, 1, list.Page)

	raw, err := os.ReadFile(h.cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "page: 1")
}

func TestUsersList_RejectsBadFlags(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("users", "list", "--page-size", "7")
	assert.Error(t, err)

	_, err = h.run("users", "list", "--sort", "id")
	assert.Error(t, err)
}

func TestUsersList_Table(t *testing.T) {
	h := newHarness(t)

	output, err := h.run("users", "list", "--sort", "city")
	require.NoError(t, err)

	assert.Contains(t, output, "ID")
	assert.Contains(t, output, "Leanne Graham")
	assert.Contains(t, output, "Page 1 of 1 (3 users), sorted by city asc")
}

func TestUsers_AddEditDelete(t *testing.T) {
	h := newHarness(t)

	output, err := h.run("users", "add", "--name", "Jane Doe", "--email", "jane@example.com",
		"--street", "1 Main St", "--city", "Springfield", "--zipcode", "12345")
	require.NoError(t, err)
	assert.Contains(t, output, "User 4 added")

	_, err = h.run("users", "edit", "4", "--city", "Shelbyville")
	require.NoError(t, err)

	output, err = h.run("users", "get", "4", "-o", "json")
	require.NoError(t, err)
	var u client.User
	require.NoError(t, json.Unmarshal([]byte(output), &u))
	assert.Equal(t, "Jane Doe", u.Name)
	assert.Equal(t, "Shelbyville", u.Address.City)

	_, err = h.run("users", "delete", "4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")

	output, err = h.run("users", "delete", "4", "--yes")
	require.NoError(t, err)
	assert.Contains(t, output, "User 4 deleted")

	_, err = h.run("users", "get", "4")
	require.Error(t, err)
	apiErr, ok := client.AsAPIError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsNotFound())
}

func TestUsers_AddValidationError(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("users", "add", "--name", "Jane")
	require.Error(t, err)
	apiErr, ok := client.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
}

func TestUsers_DeleteConfirmation(t *testing.T) {
	h := newHarness(t)
	isTerminal = func() bool { return true }

	stdin = bufio.NewReader(strings.NewReader("n\n"))
	output, err := h.run("users", "delete", "2")
	require.NoError(t, err)
	assert.Contains(t, output, "Delete user 2 (Ervin Howell)?")
	assert.Contains(t, output, "Aborted")

	stdin = bufio.NewReader(strings.NewReader("y\n"))
	output, err = h.run("users", "delete", "2")
	require.NoError(t, err)
	assert.Contains(t, output, "User 2 deleted")

	assert.Equal(t, []int64{1, 3}, listIDs(h.list()))
}

func TestFeedCommands(t *testing.T) {
	h := newHarness(t)

	output, err := h.run("feed", "start")
	require.NoError(t, err)
	assert.Contains(t, output, "Feed started")
	assert.Contains(t, output, "running")

	output, err = h.run("feed", "start")
	require.NoError(t, err)
	assert.Contains(t, output, "Feed already running")

	output, err = h.run("feed", "stop")
	require.NoError(t, err)
	assert.Contains(t, output, "Feed stopped")

	output, err = h.run("feed", "status", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, output, "running: false")
}

func TestStatusCommand(t *testing.T) {
	h := newHarness(t)

	output, err := h.run("status")
	require.NoError(t, err)
	assert.Contains(t, output, "[+] ready (3 loaded)")
	assert.Contains(t, output, "page 1, 5 per page")
}

func TestConfigSetGet(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("config", "set", "output", "xml")
	assert.Error(t, err)

	_, err = h.run("config", "set", "output", "yaml")
	require.NoError(t, err)

	output, err := h.run("config", "get", "server_url")
	require.NoError(t, err)
	assert.Contains(t, output, "server_url: http://localhost:8080")
}

func TestListFlags_Apply(t *testing.T) {
	str := func(s string) *string { return &s }
	num := func(n int) *int { return &n }

	start := user.NewViewState().WithPage(3)

	tests := []struct {
		name  string
		flags listFlags
		want  user.ViewState
	}{
		{
			name:  "no flags keeps state",
			flags: listFlags{},
			want:  start,
		},
		{
			name:  "new search resets page",
			flags: listFlags{search: str("sam")},
			want:  user.ViewState{SearchTerm: "sam", Sort: start.Sort, Page: 1, PageSize: 5},
		},
		{
			name:  "page size resets page",
			flags: listFlags{pageSize: num(10)},
			want:  user.ViewState{Sort: start.Sort, Page: 1, PageSize: 10},
		},
		{
			name:  "explicit page wins over search reset",
			flags: listFlags{search: str("sam"), page: num(2)},
			want:  user.ViewState{SearchTerm: "sam", Sort: start.Sort, Page: 2, PageSize: 5},
		},
		{
			name:  "reset clears everything",
			flags: listFlags{reset: true},
			want:  user.NewViewState(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.flags.apply(start)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
