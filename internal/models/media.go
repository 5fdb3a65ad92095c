// This file defines the core data structures (models) for the application.
// These structs represent catalog media entries and the user's watchlist.

package models

// MediaType identifies which upstream catalog a media entry belongs to.
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
	MediaTypeAnime MediaType = "anime"
	MediaTypeBook  MediaType = "book"
)

// Valid reports whether m is one of the known media types.
func (m MediaType) Valid() bool {
	switch m {
	case MediaTypeMovie, MediaTypeTV, MediaTypeAnime, MediaTypeBook:
		return true
	}
	return false
}

// MediaItem is the unified shape every catalog result is normalized into,
// regardless of which upstream service produced it.
type MediaItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	MediaType MediaType `json:"mediaType"`
}

// NextAiring describes an upcoming, not-yet-broadcast episode.
type NextAiring struct {
	Episode         int `json:"episode"`
	TimeUntilAiring int `json:"timeUntilAiring"` // seconds until broadcast
}

// AnimeItem is the richer result shape used by the anime browsing flow.
// NextAiring is only set when the upstream reports an unaired next episode.
type AnimeItem struct {
	ID           int         `json:"id"`
	Title        string      `json:"title"`
	EnglishTitle string      `json:"englishTitle,omitempty"`
	CoverImage   string      `json:"coverImage"`
	Episodes     *int        `json:"episodes,omitempty"`
	Status       string      `json:"status"`
	Format       string      `json:"format"`
	Genres       []string    `json:"genres"`
	AverageScore *int        `json:"averageScore,omitempty"`
	Popularity   *int        `json:"popularity,omitempty"`
	Season       string      `json:"season,omitempty"`
	Year         *int        `json:"year,omitempty"`
	Studios      []string    `json:"studios,omitempty"`
	NextAiring   *NextAiring `json:"nextAiring,omitempty"`
}
