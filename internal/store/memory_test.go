package store

import (
	"context"
	"errors"
	"testing"

	"github.com/arkodas/mediatrack/internal/models"
)

func newTestItem(title string) *models.WatchlistItem {
	return &models.WatchlistItem{
		Title:     title,
		MediaType: models.MediaTypeMovie,
		MediaID:   "603",
	}
}

func TestMemoryCreateAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		created, err := m.Create(ctx, newTestItem("x"))
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if created.ID == "" {
			t.Fatal("Created item has empty id")
		}
		if seen[created.ID] {
			t.Fatalf("Duplicate id %q", created.ID)
		}
		seen[created.ID] = true
		if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
			t.Error("Timestamps not set on create")
		}
	}
}

func TestMemoryCreateIgnoresIncomingID(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	item := newTestItem("x")
	item.ID = "client-chosen"
	created, err := m.Create(ctx, item)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "client-chosen" {
		t.Error("Store must assign its own id")
	}
}

func TestMemoryGetAndList(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	a, _ := m.Create(ctx, newTestItem("A"))
	b, _ := m.Create(ctx, newTestItem("B"))

	got, err := m.Get(ctx, b.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != "B" {
		t.Errorf("Expected item B, got %q", got.Title)
	}

	items, err := m.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if items[0].ID != a.ID || items[1].ID != b.ID {
		t.Error("List should preserve insertion order")
	}
}

func TestMemoryGetNotFound(t *testing.T) {
	m := NewMemory()
	_, err := m.Get(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestMemoryUpdateMergesPatch(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	item := newTestItem("Old")
	total := 12
	item.TotalEpisodes = &total
	created, _ := m.Create(ctx, item)

	ep := 6
	updated, err := m.Update(ctx, created.ID, models.WatchlistPatch{CurrentEpisode: &ep})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "Old" {
		t.Errorf("Unpatched field changed: %q", updated.Title)
	}
	if updated.Progress == nil || *updated.Progress != 50 {
		t.Errorf("Expected derived progress 50, got %v", updated.Progress)
	}

	_, err = m.Update(ctx, "nope", models.WatchlistPatch{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	created, _ := m.Create(ctx, newTestItem("X"))
	deleted, err := m.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted.ID != created.ID {
		t.Errorf("Delete should return the removed item, got %+v", deleted)
	}

	if _, err := m.Get(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}
	if _, err := m.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for a second delete, got %v", err)
	}
}

func TestMemoryReturnsSnapshots(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	created, _ := m.Create(ctx, newTestItem("Stable"))
	created.Title = "Mutated"

	got, _ := m.Get(ctx, created.ID)
	if got.Title != "Stable" {
		t.Errorf("Caller mutation leaked into the store: %q", got.Title)
	}

	items, _ := m.List(ctx)
	items[0].Title = "Mutated again"
	got, _ = m.Get(ctx, created.ID)
	if got.Title != "Stable" {
		t.Errorf("List snapshot mutation leaked into the store: %q", got.Title)
	}
}
