// Covers the persistent store implementation against an in-memory SQLite
// database with the embedded migrations applied.

package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/arkodas/mediatrack/internal/models"
	"github.com/arkodas/mediatrack/internal/store"
	"github.com/arkodas/mediatrack/internal/testutil"
)

func newSQLiteStore(t *testing.T) *store.SQLite {
	t.Helper()
	return store.NewSQLite(testutil.SetupTestDB(t))
}

func TestSQLiteCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	rating := 4.5
	total := 62
	created, err := s.Create(ctx, &models.WatchlistItem{
		Title:         "Breaking Bad",
		MediaType:     models.MediaTypeTV,
		MediaID:       "1396",
		Rating:        &rating,
		TotalEpisodes: &total,
		Genres:        []string{"18", "80"},
		Creator:       "Vince Gilligan",
		Year:          "2008",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("Created item has empty id")
	}

	got, err := s.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != "Breaking Bad" || got.MediaType != models.MediaTypeTV || got.MediaID != "1396" {
		t.Errorf("Roundtrip mismatch: %+v", got)
	}
	if got.Rating == nil || *got.Rating != 4.5 {
		t.Errorf("Expected rating 4.5, got %v", got.Rating)
	}
	if len(got.Genres) != 2 || got.Genres[0] != "18" {
		t.Errorf("Expected genres persisted, got %v", got.Genres)
	}
	if got.Progress != nil || got.CurrentEpisode != nil {
		t.Errorf("Unset optionals must stay nil: %+v", got)
	}
}

func TestSQLiteList(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	items, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("Expected empty non-nil slice, got %v", items)
	}

	s.Create(ctx, &models.WatchlistItem{Title: "A", MediaType: models.MediaTypeMovie, MediaID: "1"})
	s.Create(ctx, &models.WatchlistItem{Title: "B", MediaType: models.MediaTypeMovie, MediaID: "2"})

	items, err = s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
}

func TestSQLiteUpdate(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	total := 12
	created, _ := s.Create(ctx, &models.WatchlistItem{
		Title:         "Frieren",
		MediaType:     models.MediaTypeAnime,
		MediaID:       "154587",
		TotalEpisodes: &total,
	})

	ep := 9
	updated, err := s.Update(ctx, created.ID, models.WatchlistPatch{CurrentEpisode: &ep})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Progress == nil || *updated.Progress != 75 {
		t.Errorf("Expected derived progress 75, got %v", updated.Progress)
	}
	if updated.Title != "Frieren" {
		t.Errorf("Unpatched field changed: %q", updated.Title)
	}

	// The merge must be persisted, not just returned.
	got, _ := s.Get(ctx, created.ID)
	if got.CurrentEpisode == nil || *got.CurrentEpisode != 9 {
		t.Errorf("Expected current episode persisted, got %v", got.CurrentEpisode)
	}

	if _, err := s.Update(ctx, "nope", models.WatchlistPatch{}); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteDelete(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	created, _ := s.Create(ctx, &models.WatchlistItem{Title: "X", MediaType: models.MediaTypeMovie, MediaID: "1"})

	deleted, err := s.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted.ID != created.ID {
		t.Errorf("Delete should return the removed item, got %+v", deleted)
	}
	if _, err := s.Get(ctx, created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}
	if _, err := s.Delete(ctx, created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for a second delete, got %v", err)
	}
}
