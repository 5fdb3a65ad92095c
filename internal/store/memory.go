package store

import (
	"context"
	"sync"
	"time"

	"github.com/arkodas/mediatrack/internal/models"
)

// Memory is an in-process Store whose lifetime is the process's lifetime.
// It backs tests and development runs; nothing survives a restart.
type Memory struct {
	mu    sync.Mutex
	items []*models.WatchlistItem
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) List(ctx context.Context) ([]*models.WatchlistItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*models.WatchlistItem, 0, len(m.items))
	for _, item := range m.items {
		out = append(out, item.Clone())
	}
	return out, nil
}

func (m *Memory) Get(ctx context.Context, id string) (*models.WatchlistItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, item := range m.items {
		if item.ID == id {
			return item.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) Create(ctx context.Context, item *models.WatchlistItem) (*models.WatchlistItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := item.Clone()
	stored.ID = newID()
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	m.items = append(m.items, stored)
	return stored.Clone(), nil
}

func (m *Memory) Update(ctx context.Context, id string, patch models.WatchlistPatch) (*models.WatchlistItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, item := range m.items {
		if item.ID == id {
			patch.Apply(item)
			item.UpdatedAt = time.Now()
			return item.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) Delete(ctx context.Context, id string) (*models.WatchlistItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, item := range m.items {
		if item.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return item, nil
		}
	}
	return nil, ErrNotFound
}
