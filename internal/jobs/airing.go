package jobs

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/arkodas/mediatrack/internal/models"
)

const airingCheckJobID = "airing-check"

// AiringUpdate is the per-item payload broadcast after an airing check.
type AiringUpdate struct {
	ItemID          string `json:"itemId"`
	Title           string `json:"title"`
	Episode         int    `json:"episode"`
	AiringAt        int64  `json:"airingAt"`
	TimeUntilAiring int    `json:"timeUntilAiring"`
}

// RunAiringCheck walks the anime entries of the watchlist and looks up
// their next scheduled episode. Items whose catalog lookup fails are
// skipped; the job reports what it could resolve.
func RunAiringCheck(app JobContext) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	items, err := app.Store().List(ctx)
	if err != nil {
		log.Printf("Airing check: listing watchlist failed: %v", err)
		return
	}

	var updates []AiringUpdate
	for _, item := range items {
		if item.MediaType != models.MediaTypeAnime {
			continue
		}
		animeID, err := strconv.Atoi(item.MediaID)
		if err != nil {
			log.Printf("Airing check: item %s has non-numeric media id %q", item.ID, item.MediaID)
			continue
		}
		detail, err := app.Catalog().FetchAnimeDetails(ctx, animeID)
		if err != nil {
			log.Printf("Airing check: lookup for %q failed: %v", item.Title, err)
			continue
		}
		if detail.NextAiringEpisode == nil {
			continue
		}
		updates = append(updates, AiringUpdate{
			ItemID:          item.ID,
			Title:           item.Title,
			Episode:         detail.NextAiringEpisode.Episode,
			AiringAt:        detail.NextAiringEpisode.AiringAt,
			TimeUntilAiring: detail.NextAiringEpisode.TimeUntilAiring,
		})
	}

	if len(updates) > 0 && app.WsHub() != nil {
		app.WsHub().BroadcastEvent("airing.upcoming", updates)
	}
	log.Printf("Airing check: %d upcoming episode(s) across %d item(s).", len(updates), len(items))
}
