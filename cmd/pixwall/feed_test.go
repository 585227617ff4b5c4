package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/pixwall/internal/photo"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestPrintFeed(t *testing.T) {
	records := []photo.Record{
		{ID: 3, URL: "a.jpg", Likes: 12, Comments: 4, CreatedAt: time.Date(2016, 2, 20, 0, 0, 0, 0, time.UTC)},
		{ID: 7, URL: "b.mp4", PreviewURL: "b.jpg", IsVideo: true},
		{ID: 9},
	}
	var buf bytes.Buffer
	printFeed(&buf, records, photo.FilterDiscussed, 0)

	out := buf.String()
	assert.Contains(t, out, "=== Discussed (3) ===")
	assert.Contains(t, out, "#3")
	assert.Contains(t, out, "2016-02-20 a.jpg")
	assert.Contains(t, out, "▶ #7")
	assert.Contains(t, out, "b.jpg")
	assert.Contains(t, out, "(unavailable)")
}

func TestPrintFeed_LimitAndEmpty(t *testing.T) {
	var buf bytes.Buffer
	printFeed(&buf, []photo.Record{{ID: 1, URL: "a"}, {ID: 2, URL: "b"}}, photo.FilterPopular, 1)
	assert.Contains(t, buf.String(), "#1")
	assert.NotContains(t, buf.String(), "#2")

	buf.Reset()
	printFeed(&buf, nil, photo.FilterNew, 0)
	assert.Contains(t, buf.String(), "No photos found.")
}

func TestFeedCommand_FetchesAndFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"url": "quiet.jpg", "likes": 1, "comments": 0},
			{"url": "busy.jpg", "likes": 2, "comments": 9}
		]`))
	}))
	t.Cleanup(server.Close)

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`feed_url = "`+server.URL+`"`), 0o600))
	t.Setenv("PIXWALL_FEED_URL", "")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--config", cfgPath, "feed", "--filter", "discussed"})
	require.NoError(t, root.Execute())

	text := out.String()
	busy := strings.Index(text, "busy.jpg")
	quiet := strings.Index(text, "quiet.jpg")
	require.NotEqual(t, -1, busy)
	require.NotEqual(t, -1, quiet)
	assert.Less(t, busy, quiet, "discussed puts the most commented photo first")
}

func TestFeedCommand_ReportsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`feed_url = "`+server.URL+`"`), 0o600))
	t.Setenv("PIXWALL_FEED_URL", "")

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--config", cfgPath, "feed"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "returned status 502")
}

func TestVersionCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "pixwall dev")
}
