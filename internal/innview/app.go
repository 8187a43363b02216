// Package innview wires the catalog, registered image store, saved gallery
// positions and map rendering into the services used by commands and the TUI.
package innview

import (
	"github.com/colonyops/innview/internal/core/config"
	"github.com/colonyops/innview/internal/core/geo"
	"github.com/colonyops/innview/internal/data/db"
)

// App is the central entry point for all innview operations.
// Commands and TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Gallery   *GalleryService
	Positions *PositionService
	Maps      *MapService

	Config *config.Config
	DB     *db.DB // nil when the database is disabled or unavailable
}

// NewApp constructs an App from explicit dependencies.
func NewApp(
	gallery *GalleryService,
	positions *PositionService,
	maps geo.MapRenderer,
	cfg *config.Config,
	database *db.DB,
) *App {
	return &App{
		Gallery:   gallery,
		Positions: positions,
		Maps:      NewMapService(maps, cfg.Maps.DefaultZoom),
		Config:    cfg,
		DB:        database,
	}
}

// Stats is a point-in-time summary of the loaded catalog.
type Stats struct {
	CatalogPath  string `json:"catalog_path"`
	Hotels       int    `json:"hotels"`
	Rooms        int    `json:"rooms"`
	Images       int    `json:"catalog_images"`
	StoreEnabled bool   `json:"store_enabled"`
	DBPath       string `json:"db_path,omitempty"`
}

// Stats summarizes the current catalog and store.
func (a *App) Stats() Stats {
	cat := a.Gallery.Catalog()
	s := Stats{
		CatalogPath:  cat.Path(),
		Hotels:       len(cat.Hotels),
		StoreEnabled: a.Gallery.HasStore(),
	}
	for _, h := range cat.Hotels {
		s.Rooms += len(h.Rooms)
		s.Images += len(h.AllImages())
		for _, r := range h.Rooms {
			s.Images += len(r.AllImages())
		}
	}
	if a.DB != nil {
		s.DBPath = a.DB.Path()
	}
	return s
}
