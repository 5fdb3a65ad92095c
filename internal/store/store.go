// The store package is the data access layer for the watchlist. Callers
// depend only on the Store interface; the in-memory implementation matches
// the process-lifetime behavior of a development stand-in, while the SQLite
// implementation persists across restarts.

package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/arkodas/mediatrack/internal/models"
)

// ErrNotFound is returned when no watchlist item has the requested id.
var ErrNotFound = errors.New("watchlist item not found")

// Store is the authoritative registry of watchlist items.
type Store interface {
	// List returns a snapshot of every item.
	List(ctx context.Context) ([]*models.WatchlistItem, error)
	// Get returns the item with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (*models.WatchlistItem, error)
	// Create assigns a fresh unique id to item and stores it. Any id on the
	// incoming item is ignored.
	Create(ctx context.Context, item *models.WatchlistItem) (*models.WatchlistItem, error)
	// Update merges the non-nil patch fields into the stored item and
	// returns the result, or ErrNotFound.
	Update(ctx context.Context, id string, patch models.WatchlistPatch) (*models.WatchlistItem, error)
	// Delete removes and returns the item, or ErrNotFound.
	Delete(ctx context.Context, id string) (*models.WatchlistItem, error)
}

// newID generates a store id.
func newID() string {
	return uuid.NewString()
}
