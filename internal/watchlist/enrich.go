// Read-time enrichment: stored watchlist items are augmented with fresh
// descriptive metadata from the catalog instead of persisting it
// redundantly.

package watchlist

import (
	"context"
	"strconv"

	"github.com/arkodas/mediatrack/internal/catalog"
	"github.com/arkodas/mediatrack/internal/models"
)

// ItemInfo is the descriptive metadata attached to an item at read time.
type ItemInfo struct {
	Genres        []string `json:"genres"`
	Creator       string   `json:"creator"`
	Year          string   `json:"year"`
	Rating        float64  `json:"rating"`
	TotalEpisodes *int     `json:"totalEpisodes,omitempty"`
}

// neutralInfo is the fallback when an enrichment fetch fails or the media
// type has no enrichment source. It must never fail the surrounding call.
func neutralInfo() ItemInfo {
	return ItemInfo{Genres: []string{}, Creator: "Unknown"}
}

// Enricher resolves ItemInfo for stored items through the catalog client.
type Enricher struct {
	catalog *catalog.Client
}

// NewEnricher creates an Enricher on top of the unified catalog client.
func NewEnricher(c *catalog.Client) *Enricher {
	return &Enricher{catalog: c}
}

// Info fetches descriptive metadata for one item, keyed by its media type
// and catalog id. Anime and book items currently receive the neutral info;
// there is no enrichment source wired for them yet.
func (e *Enricher) Info(ctx context.Context, item *models.WatchlistItem) ItemInfo {
	switch item.MediaType {
	case models.MediaTypeMovie, models.MediaTypeTV:
		return e.showInfo(ctx, item)
	default:
		return neutralInfo()
	}
}

// showInfo issues a detail-shaped lookup for a movie/TV item. The catalog
// degrades failures to an empty envelope, which maps onto the neutral info.
func (e *Enricher) showInfo(ctx context.Context, item *models.WatchlistItem) ItemInfo {
	resp := e.catalog.FetchShows(ctx, catalog.ShowsParams{
		MediaType: item.MediaType,
		Category:  "popular",
		Page:      1,
		ID:        item.MediaID,
	})
	if len(resp.Results) == 0 {
		return neutralInfo()
	}
	show := resp.Results[0]

	info := ItemInfo{
		Genres:  make([]string, 0, len(show.GenreIDs)),
		Creator: "Unknown",
		Year:    yearOf(show.ReleaseDate, show.FirstAirDate),
		Rating:  show.VoteAverage,
	}
	for _, id := range show.GenreIDs {
		info.Genres = append(info.Genres, strconv.Itoa(id))
	}
	if show.NumberOfEpisodes > 0 {
		episodes := show.NumberOfEpisodes
		info.TotalEpisodes = &episodes
	}
	return info
}

// yearOf extracts the year from the first non-empty YYYY-MM-DD date.
func yearOf(dates ...string) string {
	for _, d := range dates {
		if len(d) >= 4 {
			return d[:4]
		}
	}
	return ""
}

// apply overlays info onto a copy of item, mirroring how the read surface
// presents enriched records: descriptive fields come from the catalog,
// personal state (progress, current episode) stays untouched.
func (info ItemInfo) apply(item *models.WatchlistItem) *models.WatchlistItem {
	enriched := item.Clone()
	enriched.Genres = info.Genres
	enriched.Creator = info.Creator
	enriched.Year = info.Year
	rating := info.Rating
	enriched.Rating = &rating
	if info.TotalEpisodes != nil {
		episodes := *info.TotalEpisodes
		enriched.TotalEpisodes = &episodes
	}
	return enriched
}
