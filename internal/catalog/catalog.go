// The catalog package shields the rest of the application from the two
// upstream catalog schemas. It normalizes their responses into the unified
// media shapes and owns the degradation policy: list/browse operations fail
// soft to an empty envelope (a broken feed degrades to "no results"), while
// single-entity detail fetches propagate their error because there is no
// meaningful partial result for a detail page.

package catalog

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/arkodas/mediatrack/internal/catalog/anilist"
	"github.com/arkodas/mediatrack/internal/catalog/tmdb"
	"github.com/arkodas/mediatrack/internal/models"
)

const (
	posterLimit    = 15
	posterImageURL = "https://image.tmdb.org/t/p/w500"
)

// Client aggregates the two upstream catalog clients behind one surface.
type Client struct {
	tmdb    *tmdb.Client
	anilist *anilist.Client

	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

// Option configures a Client.
type Option func(*Client)

// WithRand replaces the shuffle source, letting tests seed it.
func WithRand(r *rand.Rand) Option {
	return func(c *Client) { c.rng = r }
}

// New creates a unified catalog client on top of the two raw clients.
func New(tmdbClient *tmdb.Client, anilistClient *anilist.Client, opts ...Option) *Client {
	c := &Client{
		tmdb:    tmdbClient,
		anilist: anilistClient,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ShowsParams selects which movie/TV listing to fetch. Exactly one of ID,
// Query, Genre or Category drives the upstream endpoint, in that precedence
// order.
type ShowsParams struct {
	MediaType models.MediaType // movie or tv
	Category  string           // e.g. "popular", "top_rated"
	Genre     string           // upstream genre id
	Query     string           // free-text search
	ID        string           // single-entity lookup
	Page      int
}

// AnimeParams filters one page of the anime catalog. Empty filters are
// omitted from the upstream query.
type AnimeParams struct {
	Sort   string
	Format string
	Status string
	Search string
	Genre  string
	Page   int
}

// AnimeResponse is the normalized anime pagination envelope.
type AnimeResponse struct {
	Page        int                `json:"page"`
	TotalPages  int                `json:"total_pages"`
	HasNextPage bool               `json:"hasNextPage"`
	Results     []models.AnimeItem `json:"results"`
}

// TrendingPosters fetches currently trending entries from both catalogs,
// tags them by media type, drops entries without a displayable image and
// returns a shuffled, size-capped selection. The feed is decorative, so any
// upstream failure degrades to an empty list instead of an error.
func (c *Client) TrendingPosters(ctx context.Context) []models.MediaItem {
	movies, err := c.tmdb.Trending(ctx, "movie")
	if err != nil {
		log.Printf("Trending posters: movie fetch failed: %v", err)
		return []models.MediaItem{}
	}
	shows, err := c.tmdb.Trending(ctx, "tv")
	if err != nil {
		log.Printf("Trending posters: tv fetch failed: %v", err)
		return []models.MediaItem{}
	}
	anime, err := c.anilist.Page(ctx, anilist.PageParams{Sort: "TRENDING_DESC", Page: 1, PerPage: 20})
	if err != nil {
		log.Printf("Trending posters: anime fetch failed: %v", err)
		return []models.MediaItem{}
	}

	items := make([]models.MediaItem, 0, len(movies.Results)+len(shows.Results)+len(anime.Media))
	for _, r := range movies.Results {
		items = appendPoster(items, models.MediaItem{
			ID:        strconv.Itoa(r.ID),
			Title:     r.Title,
			ImageURL:  posterURL(r.PosterPath),
			MediaType: models.MediaTypeMovie,
		})
	}
	for _, r := range shows.Results {
		items = appendPoster(items, models.MediaItem{
			ID:        strconv.Itoa(r.ID),
			Title:     r.Name,
			ImageURL:  posterURL(r.PosterPath),
			MediaType: models.MediaTypeTV,
		})
	}
	for _, m := range anime.Media {
		items = appendPoster(items, models.MediaItem{
			ID:        strconv.Itoa(m.ID),
			Title:     m.Title.Preferred(),
			ImageURL:  m.CoverImage.URL(),
			MediaType: models.MediaTypeAnime,
		})
	}

	c.mu.Lock()
	c.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	c.mu.Unlock()

	if len(items) > posterLimit {
		items = items[:posterLimit]
	}
	return items
}

// appendPoster adds an item only when it has a displayable image.
func appendPoster(items []models.MediaItem, item models.MediaItem) []models.MediaItem {
	if item.ImageURL == "" {
		return items
	}
	return append(items, item)
}

func posterURL(path string) string {
	if path == "" {
		return ""
	}
	return posterImageURL + path
}

// FetchShows routes a movie/TV request to the right upstream endpoint and
// passes the pagination envelope through. TV names are normalized onto the
// movie Title field. Upstream failures degrade to a zeroed envelope
// (Page=0); callers distinguish "error" from "no results" by TotalPages.
func (c *Client) FetchShows(ctx context.Context, params ShowsParams) tmdb.PageResponse {
	mediaType := string(params.MediaType)
	page := params.Page
	if page <= 0 {
		page = 1
	}

	var (
		resp *tmdb.PageResponse
		err  error
	)
	switch {
	case params.ID != "":
		resp, err = c.detailEnvelope(ctx, mediaType, params.ID)
	case params.Query != "":
		resp, err = c.tmdb.Search(ctx, mediaType, params.Query, page)
	case params.Genre != "":
		resp, err = c.tmdb.Discover(ctx, mediaType, params.Genre, page)
	default:
		category := params.Category
		if category == "" {
			category = "popular"
		}
		resp, err = c.tmdb.List(ctx, mediaType, category, page)
	}
	if err != nil {
		log.Printf("Fetch shows (%s) failed: %v", mediaType, err)
		return tmdb.PageResponse{Results: []tmdb.ShowResult{}}
	}

	for i := range resp.Results {
		r := &resp.Results[i]
		if params.MediaType == models.MediaTypeTV {
			if r.Name != "" {
				r.Title = r.Name
			}
			if r.FirstAirDate != "" {
				r.ReleaseDate = r.FirstAirDate
			}
		}
		r.MediaType = mediaType
	}
	return *resp
}

// detailEnvelope wraps a single-entity lookup in a one-result page envelope
// so detail-shaped reads share the list response format.
func (c *Client) detailEnvelope(ctx context.Context, mediaType, id string) (*tmdb.PageResponse, error) {
	detail, err := c.tmdb.Details(ctx, mediaType, id)
	if err != nil {
		return nil, err
	}
	genreIDs := make([]int, 0, len(detail.Genres))
	for _, g := range detail.Genres {
		genreIDs = append(genreIDs, g.ID)
	}
	return &tmdb.PageResponse{
		Page:         1,
		TotalPages:   1,
		TotalResults: 1,
		Results: []tmdb.ShowResult{{
			ID:               detail.ID,
			Title:            detail.Title,
			Name:             detail.Name,
			PosterPath:       detail.PosterPath,
			BackdropPath:     detail.BackdropPath,
			Overview:         detail.Overview,
			GenreIDs:         genreIDs,
			VoteAverage:      detail.VoteAverage,
			VoteCount:        detail.VoteCount,
			Popularity:       detail.Popularity,
			ReleaseDate:      detail.ReleaseDate,
			FirstAirDate:     detail.FirstAirDate,
			NumberOfEpisodes: detail.NumberOfEpisodes,
		}},
	}, nil
}

// FetchAnime runs one filtered page query against the anime catalog and
// normalizes the result. Transport failures, non-2xx responses and
// query-level error payloads all degrade to an empty envelope with
// HasNextPage=false.
func (c *Client) FetchAnime(ctx context.Context, params AnimeParams) AnimeResponse {
	result, err := c.anilist.Page(ctx, anilist.PageParams{
		Sort:   params.Sort,
		Format: params.Format,
		Status: params.Status,
		Search: params.Search,
		Genre:  params.Genre,
		Page:   params.Page,
	})
	if err != nil {
		log.Printf("Fetch anime failed: %v", err)
		return AnimeResponse{Results: []models.AnimeItem{}}
	}

	items := make([]models.AnimeItem, 0, len(result.Media))
	for _, m := range result.Media {
		items = append(items, normalizeAnime(m))
	}
	return AnimeResponse{
		Page:        result.PageInfo.CurrentPage,
		TotalPages:  result.PageInfo.LastPage,
		HasNextPage: result.PageInfo.HasNextPage,
		Results:     items,
	}
}

func normalizeAnime(m anilist.Media) models.AnimeItem {
	item := models.AnimeItem{
		ID:           m.ID,
		Title:        m.Title.Preferred(),
		EnglishTitle: m.Title.English,
		CoverImage:   m.CoverImage.URL(),
		Episodes:     m.Episodes,
		Status:       m.Status,
		Format:       m.Format,
		Genres:       m.Genres,
		AverageScore: m.AverageScore,
		Popularity:   m.Popularity,
		Season:       m.Season,
		Year:         m.SeasonYear,
	}
	if item.Genres == nil {
		item.Genres = []string{}
	}
	for _, studio := range m.Studios.Nodes {
		item.Studios = append(item.Studios, studio.Name)
	}
	if m.NextAiringEpisode != nil {
		item.NextAiring = &models.NextAiring{
			Episode:         m.NextAiringEpisode.Episode,
			TimeUntilAiring: m.NextAiringEpisode.TimeUntilAiring,
		}
	}
	return item
}

// FetchAnimeDetails fetches the deep detail record for one anime. Errors
// propagate; the caller has no fallback for a missing detail page.
func (c *Client) FetchAnimeDetails(ctx context.Context, id int) (*anilist.MediaDetail, error) {
	return c.anilist.MediaDetail(ctx, id)
}

// FetchShowDetails looks an id up as a movie first and falls back to a TV
// lookup on not-found, so callers don't need to know which kind of id they
// hold. Errors propagate.
func (c *Client) FetchShowDetails(ctx context.Context, id string) (*tmdb.ShowDetail, error) {
	detail, err := c.tmdb.Details(ctx, "movie", id)
	if err == nil {
		return detail, nil
	}
	if !errors.Is(err, tmdb.ErrNotFound) {
		return nil, err
	}
	return c.tmdb.Details(ctx, "tv", id)
}

// IsNotFound reports whether err represents a missing entity in either
// upstream catalog.
func IsNotFound(err error) bool {
	return errors.Is(err, tmdb.ErrNotFound) || errors.Is(err, anilist.ErrNotFound)
}

// AnimeFilters returns the static filter options for the anime browsing
// flow. The values mirror what the anime catalog accepts.
func AnimeFilters() models.AnimeFilterOptions {
	return models.AnimeFilterOptions{
		Sorts: []models.FilterOption{
			{Value: "TRENDING_DESC", Label: "Trending"},
			{Value: "POPULARITY_DESC", Label: "Popularity"},
			{Value: "SCORE_DESC", Label: "Score"},
			{Value: "START_DATE_DESC", Label: "Newest"},
			{Value: "EPISODES_DESC", Label: "Episodes"},
			{Value: "FAVOURITES_DESC", Label: "Favourites"},
		},
		Formats: []models.FilterOption{
			{Value: "TV", Label: "TV"},
			{Value: "MOVIE", Label: "Movie"},
			{Value: "OVA", Label: "OVA"},
			{Value: "ONA", Label: "ONA"},
			{Value: "SPECIAL", Label: "Special"},
			{Value: "MUSIC", Label: "Music"},
		},
		Statuses: []models.FilterOption{
			{Value: "RELEASING", Label: "Airing"},
			{Value: "FINISHED", Label: "Finished"},
			{Value: "NOT_YET_RELEASED", Label: "Upcoming"},
			{Value: "CANCELLED", Label: "Cancelled"},
			{Value: "HIATUS", Label: "On Hiatus"},
		},
		Genres: []string{
			"Action", "Adventure", "Comedy", "Drama", "Ecchi", "Fantasy",
			"Horror", "Mahou Shoujo", "Mecha", "Music", "Mystery", "Psychological",
			"Romance", "Sci-Fi", "Slice of Life", "Sports", "Supernatural", "Thriller",
		},
	}
}
