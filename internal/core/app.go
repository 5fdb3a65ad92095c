package core

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/arkodas/mediatrack/internal/assets"
	"github.com/arkodas/mediatrack/internal/catalog"
	"github.com/arkodas/mediatrack/internal/catalog/anilist"
	"github.com/arkodas/mediatrack/internal/catalog/tmdb"
	"github.com/arkodas/mediatrack/internal/config"
	"github.com/arkodas/mediatrack/internal/db"
	"github.com/arkodas/mediatrack/internal/jobs"
	"github.com/arkodas/mediatrack/internal/store"
	"github.com/arkodas/mediatrack/internal/websocket"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// App holds the core components shared between the server and the
// background jobs.
type App struct {
	config     *config.Config
	database   *sql.DB // nil when the memory store driver is active
	store      store.Store
	catalog    *catalog.Client
	wsHub      *websocket.Hub
	jobManager *jobs.JobManager
	version    string
}

// New sets up and returns a new App instance. It loads configuration,
// opens the configured store (running migrations for the SQLite driver)
// and wires the catalog client, websocket hub and job manager.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	app := &App{
		config:  cfg,
		catalog: catalog.New(tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL), anilist.New(cfg.Anilist.BaseURL)),
		wsHub:   websocket.NewHub(),
		version: Version,
	}

	switch cfg.Database.Driver {
	case "memory":
		app.store = store.NewMemory()
	case "sqlite", "":
		database, err := db.InitDB(cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := db.RunMigrations(database, assets.MigrationsFS); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		app.database = database
		app.store = store.NewSQLite(database)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}

	app.jobManager = jobs.NewManager()

	log.Println("Core application setup complete.")
	return app, nil
}

// Close gracefully releases the application's resources.
func (a *App) Close() {
	if a.database != nil {
		a.database.Close()
	}
}

func (a *App) Config() *config.Config { return a.config }

func (a *App) Store() store.Store { return a.store }

func (a *App) Catalog() *catalog.Client { return a.catalog }

func (a *App) WsHub() *websocket.Hub { return a.wsHub }

func (a *App) JobManager() *jobs.JobManager { return a.jobManager }

func (a *App) Version() string { return a.version }

// SetCatalog swaps the catalog client. Used by test helpers to point the
// app at mock upstream servers.
func (a *App) SetCatalog(c *catalog.Client) { a.catalog = c }

// NewApp assembles an App from pre-built components. The regular entry
// point is New; test helpers use this to inject fakes.
func NewApp(cfg *config.Config, s store.Store, c *catalog.Client, hub *websocket.Hub, version string) *App {
	return &App{
		config:     cfg,
		store:      s,
		catalog:    c,
		wsHub:      hub,
		jobManager: jobs.NewManager(),
		version:    version,
	}
}
