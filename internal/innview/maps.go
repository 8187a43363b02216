package innview

import (
	"errors"

	"github.com/colonyops/innview/internal/core/catalog"
	"github.com/colonyops/innview/internal/core/config"
	"github.com/colonyops/innview/internal/core/geo"
)

// NewMapRenderer selects the renderer for the configured provider.
func NewMapRenderer(cfg *config.Config) geo.MapRenderer {
	switch cfg.Maps.Provider {
	case config.MapProviderNone:
		return geo.NoopRenderer{}
	default:
		return geo.OSMLinkRenderer{}
	}
}

// MapService renders hotel locations.
type MapService struct {
	renderer    geo.MapRenderer
	defaultZoom int
}

// NewMapService creates a MapService.
func NewMapService(renderer geo.MapRenderer, defaultZoom int) *MapService {
	return &MapService{renderer: renderer, defaultZoom: defaultZoom}
}

// HotelLink returns a map link for h, or "" when the hotel has no location
// or maps are disabled. The location's own zoom wins over the default.
func (s *MapService) HotelLink(h *catalog.Hotel) (string, error) {
	if h == nil || h.Location == nil {
		return "", nil
	}

	zoom := s.defaultZoom
	if h.Location.Zoom > 0 {
		zoom = h.Location.Zoom
	}

	link, err := s.renderer.RenderMap(geo.Location{
		Label: h.Location.Label,
		Lat:   h.Location.Lat,
		Lon:   h.Location.Lon,
	}, zoom)
	if errors.Is(err, geo.ErrNoLocation) {
		return "", nil
	}
	return link, err
}
