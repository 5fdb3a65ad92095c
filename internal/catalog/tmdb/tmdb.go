// Client for the movie/TV catalog REST API. It only speaks the upstream
// schema; normalization into the application's media shapes happens in the
// catalog package.

package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const DefaultBaseURL = "https://api.themoviedb.org/3"

// ErrNotFound is returned when the upstream reports 404 for an entity.
var ErrNotFound = errors.New("tmdb: not found")

// Client handles movie/TV catalog API interactions.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// New creates a new catalog client. An empty baseURL falls back to the
// public API endpoint.
func New(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		client:  &http.Client{Timeout: 20 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// get issues an authenticated GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("tmdb request %s failed: %s - %s", path, resp.Status, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func baseQuery(page int) url.Values {
	q := url.Values{}
	q.Set("language", "en-US")
	q.Set("include_adult", "false")
	q.Set("page", strconv.Itoa(page))
	return q
}

// Trending fetches this week's trending entries for a media type
// ("movie" or "tv").
func (c *Client) Trending(ctx context.Context, mediaType string) (*PageResponse, error) {
	var resp PageResponse
	if err := c.get(ctx, fmt.Sprintf("/trending/%s/week", mediaType), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// List fetches a category listing such as "popular" or "top_rated".
func (c *Client) List(ctx context.Context, mediaType, category string, page int) (*PageResponse, error) {
	var resp PageResponse
	if err := c.get(ctx, fmt.Sprintf("/%s/%s", mediaType, category), baseQuery(page), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Search runs a text search within a media type.
func (c *Client) Search(ctx context.Context, mediaType, query string, page int) (*PageResponse, error) {
	q := baseQuery(page)
	q.Set("query", query)
	var resp PageResponse
	if err := c.get(ctx, "/search/"+mediaType, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Discover lists entries of a media type filtered by genre id.
func (c *Client) Discover(ctx context.Context, mediaType, genre string, page int) (*PageResponse, error) {
	q := baseQuery(page)
	q.Set("with_genres", genre)
	var resp PageResponse
	if err := c.get(ctx, "/discover/"+mediaType, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Details fetches a single entity with its credits, videos and similar
// titles appended in the same request. TV responses use name/first_air_date,
// which are normalized onto Title/ReleaseDate here.
func (c *Client) Details(ctx context.Context, mediaType, id string) (*ShowDetail, error) {
	q := url.Values{}
	q.Set("append_to_response", "credits,videos,similar")
	var detail ShowDetail
	if err := c.get(ctx, fmt.Sprintf("/%s/%s", mediaType, id), q, &detail); err != nil {
		return nil, err
	}
	if detail.Title == "" && detail.Name != "" {
		detail.Title = detail.Name
	}
	if detail.ReleaseDate == "" && detail.FirstAirDate != "" {
		detail.ReleaseDate = detail.FirstAirDate
	}
	detail.MediaType = mediaType
	return &detail, nil
}
