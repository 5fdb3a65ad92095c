package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/arkodas/mediatrack/internal/models"
)

// SQLite is the persistent Store backed by the application database.
// Watchlist state survives restarts, unlike the in-memory stand-in.
type SQLite struct {
	db *sql.DB
}

// NewSQLite creates a Store on top of an initialized database connection.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

const watchlistColumns = `id, title, media_type, media_id, progress, rating, image_url,
	total_episodes, current_episode, total_pages, genres, creator, year, created_at, updated_at`

func (s *SQLite) List(ctx context.Context) ([]*models.WatchlistItem, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+watchlistColumns+" FROM watchlist_items ORDER BY created_at ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.WatchlistItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if items == nil {
		items = []*models.WatchlistItem{}
	}
	return items, rows.Err()
}

func (s *SQLite) Get(ctx context.Context, id string) (*models.WatchlistItem, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+watchlistColumns+" FROM watchlist_items WHERE id = ?", id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return item, err
}

func (s *SQLite) Create(ctx context.Context, item *models.WatchlistItem) (*models.WatchlistItem, error) {
	stored := item.Clone()
	stored.ID = newID()
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	genres, err := json.Marshal(stored.Genres)
	if err != nil {
		return nil, fmt.Errorf("marshal genres: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO watchlist_items (`+watchlistColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		stored.ID, stored.Title, string(stored.MediaType), stored.MediaID,
		stored.Progress, stored.Rating, stored.ImageURL,
		stored.TotalEpisodes, stored.CurrentEpisode, stored.TotalPages,
		string(genres), stored.Creator, stored.Year, stored.CreatedAt, stored.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// Update reads, merges and rewrites the row inside one transaction so
// concurrent patches never interleave partial writes.
func (s *SQLite) Update(ctx context.Context, id string, patch models.WatchlistPatch) (*models.WatchlistItem, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		"SELECT "+watchlistColumns+" FROM watchlist_items WHERE id = ?", id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	patch.Apply(item)
	item.UpdatedAt = time.Now()

	genres, err := json.Marshal(item.Genres)
	if err != nil {
		return nil, fmt.Errorf("marshal genres: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE watchlist_items
		SET title = ?, progress = ?, rating = ?, image_url = ?,
			total_episodes = ?, current_episode = ?, total_pages = ?,
			genres = ?, creator = ?, year = ?, updated_at = ?
		WHERE id = ?`,
		item.Title, item.Progress, item.Rating, item.ImageURL,
		item.TotalEpisodes, item.CurrentEpisode, item.TotalPages,
		string(genres), item.Creator, item.Year, item.UpdatedAt, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *SQLite) Delete(ctx context.Context, id string) (*models.WatchlistItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM watchlist_items WHERE id = ?", id); err != nil {
		return nil, err
	}
	return item, nil
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (*models.WatchlistItem, error) {
	var (
		item      models.WatchlistItem
		mediaType string
		genres    string
	)
	err := row.Scan(
		&item.ID, &item.Title, &mediaType, &item.MediaID,
		&item.Progress, &item.Rating, &item.ImageURL,
		&item.TotalEpisodes, &item.CurrentEpisode, &item.TotalPages,
		&genres, &item.Creator, &item.Year, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	item.MediaType = models.MediaType(mediaType)
	if genres != "" && genres != "null" {
		if err := json.Unmarshal([]byte(genres), &item.Genres); err != nil {
			return nil, fmt.Errorf("unmarshal genres: %w", err)
		}
	}
	return &item, nil
}
