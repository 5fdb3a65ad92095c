package models

import (
	"math"
	"time"
)

// WatchlistItem is a media entry the user is tracking, together with their
// personal progress and rating state. The store assigns ID exactly once at
// creation; MediaID plus MediaType reference the originating catalog entity.
type WatchlistItem struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	MediaType      MediaType `json:"mediaType"`
	MediaID        string    `json:"mediaId"`
	Progress       *float64  `json:"progress,omitempty"` // 0-100
	Rating         *float64  `json:"rating,omitempty"`   // 1-5
	ImageURL       string    `json:"imageUrl,omitempty"`
	TotalEpisodes  *int      `json:"totalEpisodes,omitempty"`
	CurrentEpisode *int      `json:"currentEpisode,omitempty"`
	TotalPages     *int      `json:"totalPages,omitempty"`
	Genres         []string  `json:"genres,omitempty"`
	Creator        string    `json:"creator,omitempty"`
	Year           string    `json:"year,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Clone returns a deep copy of the item, so callers only ever hold snapshots
// of what the store owns.
func (w *WatchlistItem) Clone() *WatchlistItem {
	c := *w
	c.Progress = clonePtr(w.Progress)
	c.Rating = clonePtr(w.Rating)
	c.TotalEpisodes = clonePtr(w.TotalEpisodes)
	c.CurrentEpisode = clonePtr(w.CurrentEpisode)
	c.TotalPages = clonePtr(w.TotalPages)
	if w.Genres != nil {
		c.Genres = append([]string(nil), w.Genres...)
	}
	return &c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// WatchlistPatch is a partial update: only non-nil fields are merged into the
// existing record.
type WatchlistPatch struct {
	Title          *string   `json:"title,omitempty"`
	Progress       *float64  `json:"progress,omitempty"`
	Rating         *float64  `json:"rating,omitempty"`
	ImageURL       *string   `json:"imageUrl,omitempty"`
	TotalEpisodes  *int      `json:"totalEpisodes,omitempty"`
	CurrentEpisode *int      `json:"currentEpisode,omitempty"`
	TotalPages     *int      `json:"totalPages,omitempty"`
	Genres         *[]string `json:"genres,omitempty"`
	Creator        *string   `json:"creator,omitempty"`
	Year           *string   `json:"year,omitempty"`
}

// Apply merges the patch into item. An episode update recomputes progress
// from the episode totals (currentEpisode/totalEpisodes, rounded, capped at
// 100); a direct progress write is honored only when the patch carries no
// episode update, so page-based and episode-less media can set it freely.
func (p WatchlistPatch) Apply(item *WatchlistItem) {
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.ImageURL != nil {
		item.ImageURL = *p.ImageURL
	}
	if p.TotalEpisodes != nil {
		item.TotalEpisodes = clonePtr(p.TotalEpisodes)
	}
	if p.TotalPages != nil {
		item.TotalPages = clonePtr(p.TotalPages)
	}
	if p.Genres != nil {
		item.Genres = append([]string(nil), *p.Genres...)
	}
	if p.Creator != nil {
		item.Creator = *p.Creator
	}
	if p.Year != nil {
		item.Year = *p.Year
	}
	if p.Rating != nil {
		r := clampFloat(*p.Rating, 0, 5)
		item.Rating = &r
	}

	switch {
	case p.CurrentEpisode != nil:
		ep := *p.CurrentEpisode
		if item.TotalEpisodes != nil && *item.TotalEpisodes > 0 {
			ep = clampInt(ep, 0, *item.TotalEpisodes)
			progress := clampFloat(math.Round(float64(ep)/float64(*item.TotalEpisodes)*100), 0, 100)
			item.Progress = &progress
		} else if ep < 0 {
			ep = 0
		}
		item.CurrentEpisode = &ep
	case p.Progress != nil:
		progress := clampFloat(*p.Progress, 0, 100)
		item.Progress = &progress
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
