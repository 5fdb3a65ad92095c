package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/arkodas/mediatrack/internal/catalog"
	"github.com/arkodas/mediatrack/internal/models"
)

func (s *Server) handleGetPosters(w http.ResponseWriter, r *http.Request) {
	posters := s.app.Catalog().TrendingPosters(r.Context())
	RespondWithJSON(w, http.StatusOK, posters)
}

func (s *Server) handleGetShows(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	mediaType := models.MediaType(q.Get("media_type"))
	if mediaType == "" {
		mediaType = models.MediaTypeMovie
	}
	if mediaType != models.MediaTypeMovie && mediaType != models.MediaTypeTV {
		RespondWithError(w, http.StatusBadRequest, "media_type must be 'movie' or 'tv'")
		return
	}

	page, _ := strconv.Atoi(q.Get("page"))
	resp := s.app.Catalog().FetchShows(r.Context(), catalog.ShowsParams{
		MediaType: mediaType,
		Category:  q.Get("category"),
		Genre:     q.Get("genre"),
		Query:     q.Get("query"),
		ID:        q.Get("id"),
		Page:      page,
	})
	RespondWithJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetShowDetails(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	detail, err := s.app.Catalog().FetchShowDetails(r.Context(), id)
	if err != nil {
		if catalog.IsNotFound(err) {
			RespondWithError(w, http.StatusNotFound, "Show not found")
			return
		}
		RespondWithError(w, http.StatusBadGateway, "Catalog lookup failed")
		return
	}
	RespondWithJSON(w, http.StatusOK, detail)
}

func (s *Server) handleGetAnime(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	resp := s.app.Catalog().FetchAnime(r.Context(), catalog.AnimeParams{
		Sort:   q.Get("sort"),
		Format: q.Get("format"),
		Status: q.Get("status"),
		Search: q.Get("search"),
		Genre:  q.Get("genre"),
		Page:   page,
	})
	RespondWithJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetAnimeDetails(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Anime id must be numeric")
		return
	}
	detail, err := s.app.Catalog().FetchAnimeDetails(r.Context(), id)
	if err != nil {
		if catalog.IsNotFound(err) {
			RespondWithError(w, http.StatusNotFound, "Anime not found")
			return
		}
		RespondWithError(w, http.StatusBadGateway, "Catalog lookup failed")
		return
	}
	RespondWithJSON(w, http.StatusOK, detail)
}

func (s *Server) handleGetAnimeFilters(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, catalog.AnimeFilters())
}
