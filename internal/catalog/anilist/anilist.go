// Client for the anime catalog's GraphQL endpoint. Every operation is a
// single POST with a query document and a variables map.

package anilist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultBaseURL = "https://graphql.anilist.co"

// ErrNotFound is returned when a detail query targets an unknown id.
var ErrNotFound = errors.New("anilist: not found")

// Client handles anime catalog API interactions.
type Client struct {
	client  *http.Client
	baseURL string
}

// New creates a new anime catalog client. An empty baseURL falls back to the
// public endpoint.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		client:  &http.Client{Timeout: 20 * time.Second},
		baseURL: baseURL,
	}
}

type apiError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// query posts a GraphQL document and decodes data into out. A query-level
// errors payload is surfaced as a Go error even when the transport succeeds.
func (c *Client) query(ctx context.Context, document string, variables map[string]any, out any) error {
	body, err := json.Marshal(map[string]any{
		"query":     document,
		"variables": variables,
	})
	if err != nil {
		return fmt.Errorf("marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("anilist api request: %w", err)
	}
	defer resp.Body.Close()

	// The upstream reports query errors with a non-2xx status and an errors
	// payload; read the body either way so both shapes are handled.
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []apiError      `json:"errors"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("anilist request failed: %s", resp.Status)
		}
		return fmt.Errorf("decode response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		first := envelope.Errors[0]
		if first.Status == http.StatusNotFound {
			return fmt.Errorf("%w: %s", ErrNotFound, first.Message)
		}
		return fmt.Errorf("anilist query error: %s", first.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("anilist request failed: %s", resp.Status)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

// PageParams selects and filters one page of a media query. Zero-valued
// filters are omitted from the request entirely.
type PageParams struct {
	Sort    string
	Format  string
	Status  string
	Search  string
	Genre   string
	Page    int
	PerPage int
}

// Page runs a paginated media query.
func (c *Client) Page(ctx context.Context, params PageParams) (*PageResult, error) {
	perPage := params.PerPage
	if perPage <= 0 {
		perPage = 20
	}
	page := params.Page
	if page <= 0 {
		page = 1
	}
	sort := params.Sort
	if sort == "" {
		sort = "TRENDING_DESC"
	}

	variables := map[string]any{
		"page":    page,
		"perPage": perPage,
		"sort":    []string{sort},
	}
	if params.Format != "" {
		variables["format"] = params.Format
	}
	if params.Status != "" {
		variables["status"] = params.Status
	}
	if params.Search != "" {
		variables["search"] = params.Search
	}
	if params.Genre != "" {
		variables["genre"] = params.Genre
	}

	var data struct {
		Page PageResult `json:"Page"`
	}
	if err := c.query(ctx, pageQuery, variables, &data); err != nil {
		return nil, err
	}
	return &data.Page, nil
}

// MediaDetail runs the deep single-entity query backing a detail page.
func (c *Client) MediaDetail(ctx context.Context, id int) (*MediaDetail, error) {
	var data struct {
		Media *MediaDetail `json:"Media"`
	}
	if err := c.query(ctx, detailQuery, map[string]any{"id": id}, &data); err != nil {
		return nil, err
	}
	if data.Media == nil {
		return nil, fmt.Errorf("%w: media %d", ErrNotFound, id)
	}
	return data.Media, nil
}
