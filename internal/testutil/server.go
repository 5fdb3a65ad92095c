// Shared test server setup utilities, which simplify the API tests.

package testutil

import (
	"math/rand"
	"testing"

	"github.com/arkodas/mediatrack/internal/api"
	"github.com/arkodas/mediatrack/internal/catalog"
	"github.com/arkodas/mediatrack/internal/catalog/anilist"
	"github.com/arkodas/mediatrack/internal/catalog/tmdb"
	"github.com/arkodas/mediatrack/internal/config"
	"github.com/arkodas/mediatrack/internal/core"
	"github.com/arkodas/mediatrack/internal/store"
	"github.com/arkodas/mediatrack/internal/websocket"
)

// SetupTestApp builds an app on the in-memory store with a running
// websocket hub. The catalog points at the given upstream base URLs,
// usually httptest servers; a seeded shuffle keeps poster selection
// deterministic.
func SetupTestApp(t *testing.T, tmdbURL, anilistURL string) *core.App {
	t.Helper()

	hub := websocket.NewHub()
	go hub.Run()

	cat := catalog.New(
		tmdb.New("test-api-key", tmdbURL),
		anilist.New(anilistURL),
		catalog.WithRand(rand.New(rand.NewSource(1))),
	)
	cfg := &config.Config{Port: 8080}
	return core.NewApp(cfg, store.NewMemory(), cat, hub, "test")
}

// SetupTestServer initializes a full core.App and api.Server for
// integration tests.
func SetupTestServer(t *testing.T, tmdbURL, anilistURL string) (*api.Server, *core.App) {
	t.Helper()
	app := SetupTestApp(t, tmdbURL, anilistURL)
	return api.NewServer(app), app
}
