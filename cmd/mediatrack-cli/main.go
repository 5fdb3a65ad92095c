// A one-shot command line entry point: it loads the configured store and
// runs a single airing check against the catalog, printing the upcoming
// episodes instead of broadcasting them.

package main

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/arkodas/mediatrack/internal/assets"
	"github.com/arkodas/mediatrack/internal/catalog"
	"github.com/arkodas/mediatrack/internal/catalog/anilist"
	"github.com/arkodas/mediatrack/internal/catalog/tmdb"
	"github.com/arkodas/mediatrack/internal/config"
	"github.com/arkodas/mediatrack/internal/db"
	"github.com/arkodas/mediatrack/internal/models"
	"github.com/arkodas/mediatrack/internal/store"
)

func main() {
	// Load configuration from config.yml
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize the database connection
	database, err := db.InitDB(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Run database migrations
	if err := db.RunMigrations(database, assets.MigrationsFS); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	st := store.NewSQLite(database)
	cat := catalog.New(tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL), anilist.New(cfg.Anilist.BaseURL))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	items, err := st.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list watchlist: %v", err)
	}

	var upcoming int
	for _, item := range items {
		if item.MediaType != models.MediaTypeAnime {
			continue
		}
		animeID, err := strconv.Atoi(item.MediaID)
		if err != nil {
			log.Printf("Skipping %q: non-numeric media id %q", item.Title, item.MediaID)
			continue
		}
		detail, err := cat.FetchAnimeDetails(ctx, animeID)
		if err != nil {
			log.Printf("Lookup for %q failed: %v", item.Title, err)
			continue
		}
		if detail.NextAiringEpisode == nil {
			continue
		}
		upcoming++
		airingAt := time.Unix(detail.NextAiringEpisode.AiringAt, 0)
		fmt.Printf("%s: episode %d airs %s\n", item.Title, detail.NextAiringEpisode.Episode, airingAt.Format(time.RFC1123))
	}

	fmt.Printf("Airing check finished: %d upcoming episode(s).\n", upcoming)
}
