package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arkodas/mediatrack/internal/models"
	"github.com/arkodas/mediatrack/internal/store"
	"github.com/arkodas/mediatrack/internal/watchlist"
)

func (s *Server) handleListWatchlist(w http.ResponseWriter, r *http.Request) {
	items, err := s.watchlist.List(r.Context())
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to list watchlist")
		return
	}
	RespondWithJSON(w, http.StatusOK, items)
}

func (s *Server) handleGetWatchlistItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	item, err := s.watchlist.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, item)
}

func (s *Server) handleCreateWatchlistItem(w http.ResponseWriter, r *http.Request) {
	var item models.WatchlistItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	created, err := s.watchlist.Create(r.Context(), &item)
	if err != nil {
		if errors.Is(err, watchlist.ErrInvalidItem) {
			RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		RespondWithError(w, http.StatusInternalServerError, "Failed to create watchlist item")
		return
	}
	RespondWithJSON(w, http.StatusOK, created)
}

func (s *Server) handlePatchWatchlistItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var patch models.WatchlistPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	updated, err := s.watchlist.Update(r.Context(), id, patch)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, updated)
}

// handlePutWatchlistItem replaces the item's descriptive fields (title,
// image, genres, creator, year) with the request body, even when they are
// empty. The optional numeric fields (progress, rating, episode and page
// counts) keep PATCH semantics: omitting one leaves the stored value alone.
func (s *Server) handlePutWatchlistItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var item models.WatchlistItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	genres := item.Genres
	if genres == nil {
		genres = []string{}
	}
	patch := models.WatchlistPatch{
		Title:          &item.Title,
		ImageURL:       &item.ImageURL,
		TotalEpisodes:  item.TotalEpisodes,
		CurrentEpisode: item.CurrentEpisode,
		TotalPages:     item.TotalPages,
		Genres:         &genres,
		Creator:        &item.Creator,
		Year:           &item.Year,
		Progress:       item.Progress,
		Rating:         item.Rating,
	}

	updated, err := s.watchlist.Update(r.Context(), id, patch)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteWatchlistItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	deleted, err := s.watchlist.Delete(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"item":    deleted,
	})
}

func respondStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		RespondWithError(w, http.StatusNotFound, "Watchlist item not found")
		return
	}
	RespondWithError(w, http.StatusInternalServerError, "Watchlist operation failed")
}
