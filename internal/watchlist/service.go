package watchlist

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/arkodas/mediatrack/internal/models"
	"github.com/arkodas/mediatrack/internal/store"
	"github.com/arkodas/mediatrack/internal/websocket"
)

// ErrInvalidItem marks a create request that fails validation.
var ErrInvalidItem = errors.New("invalid watchlist item")

// Service wraps the store with read-time enrichment and change
// notifications. The hub is optional; a nil hub disables notifications.
type Service struct {
	store    store.Store
	enricher *Enricher
	hub      *websocket.Hub
}

// NewService assembles the watchlist service.
func NewService(s store.Store, e *Enricher, hub *websocket.Hub) *Service {
	return &Service{store: s, enricher: e, hub: hub}
}

// List returns every item with fresh catalog metadata overlaid. Items are
// enriched concurrently; an item whose lookup fails comes back with the
// neutral metadata rather than failing the listing.
func (s *Service) List(ctx context.Context) ([]*models.WatchlistItem, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing watchlist: %w", err)
	}

	enriched := make([]*models.WatchlistItem, len(items))
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item *models.WatchlistItem) {
			defer wg.Done()
			enriched[i] = s.enricher.Info(ctx, item).apply(item)
		}(i, item)
	}
	wg.Wait()
	return enriched, nil
}

// Get returns the stored item as-is, without enrichment. Detail reads
// reflect exactly what the store holds.
func (s *Service) Get(ctx context.Context, id string) (*models.WatchlistItem, error) {
	return s.store.Get(ctx, id)
}

// Create validates and stores a new item, then returns it enriched.
func (s *Service) Create(ctx context.Context, item *models.WatchlistItem) (*models.WatchlistItem, error) {
	if err := validateNew(item); err != nil {
		return nil, err
	}
	created, err := s.store.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("creating watchlist item: %w", err)
	}
	result := s.enricher.Info(ctx, created).apply(created)
	s.notify("watchlist.created", result)
	return result, nil
}

// Update merges the patch into the stored item.
func (s *Service) Update(ctx context.Context, id string, patch models.WatchlistPatch) (*models.WatchlistItem, error) {
	updated, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.notify("watchlist.updated", updated)
	return updated, nil
}

// Delete removes and returns the item.
func (s *Service) Delete(ctx context.Context, id string) (*models.WatchlistItem, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.notify("watchlist.deleted", deleted)
	return deleted, nil
}

func (s *Service) notify(eventType string, item *models.WatchlistItem) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastEvent(eventType, item)
}

// validateNew rejects items missing the fields needed to reference a
// catalog entity.
func validateNew(item *models.WatchlistItem) error {
	switch {
	case item == nil:
		return fmt.Errorf("%w: missing body", ErrInvalidItem)
	case item.Title == "":
		return fmt.Errorf("%w: title is required", ErrInvalidItem)
	case item.MediaID == "":
		return fmt.Errorf("%w: mediaId is required", ErrInvalidItem)
	case !item.MediaType.Valid():
		return fmt.Errorf("%w: unknown media type %q", ErrInvalidItem, item.MediaType)
	}
	return nil
}
