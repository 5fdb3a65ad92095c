package jobs_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arkodas/mediatrack/internal/catalog"
	"github.com/arkodas/mediatrack/internal/catalog/anilist"
	"github.com/arkodas/mediatrack/internal/catalog/tmdb"
	"github.com/arkodas/mediatrack/internal/jobs"
	"github.com/arkodas/mediatrack/internal/models"
	"github.com/arkodas/mediatrack/internal/websocket"
)

func TestRunAiringCheck(t *testing.T) {
	var lookups int32
	anilistServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&lookups, 1)
		w.Write([]byte(`{"data":{"Media":{"id":154587,"title":{"romaji":"Sousou no Frieren"},"nextAiringEpisode":{"episode":29,"timeUntilAiring":86400,"airingAt":1700000000}}}}`))
	}))
	defer anilistServer.Close()

	ctx := newFakeContext()
	ctx.ws = websocket.NewHub()
	go ctx.ws.Run()
	ctx.cat = catalog.New(tmdb.New("k", "http://127.0.0.1:0"), anilist.New(anilistServer.URL))

	// One anime entry to check, one movie entry to skip, one anime entry
	// with a broken media id to skip.
	ctx.st.Create(context.Background(), &models.WatchlistItem{Title: "Frieren", MediaType: models.MediaTypeAnime, MediaID: "154587"})
	ctx.st.Create(context.Background(), &models.WatchlistItem{Title: "The Matrix", MediaType: models.MediaTypeMovie, MediaID: "603"})
	ctx.st.Create(context.Background(), &models.WatchlistItem{Title: "Broken", MediaType: models.MediaTypeAnime, MediaID: "not-a-number"})

	jobs.RunAiringCheck(ctx)

	assert.Equal(t, int32(1), atomic.LoadInt32(&lookups), "only valid anime entries should be looked up")
}
