// Package geo turns a hotel location into something the terminal can show.
// Rendered output is printed to the screen, so it never carries credentials.
package geo

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// ErrNoLocation is returned when there is nothing to render.
var ErrNoLocation = errors.New("no location")

// Location is a point on the map.
type Location struct {
	Label string
	Lat   float64
	Lon   float64
}

// MapRenderer renders a location at a zoom level.
type MapRenderer interface {
	RenderMap(loc Location, zoom int) (string, error)
}

// OSMLinkRenderer renders an OpenStreetMap link centered on the location.
type OSMLinkRenderer struct {
	// BaseURL defaults to https://www.openstreetmap.org/.
	BaseURL string
}

const osmBaseURL = "https://www.openstreetmap.org/"

func (r OSMLinkRenderer) RenderMap(loc Location, zoom int) (string, error) {
	if loc.Lat < -90 || loc.Lat > 90 || loc.Lon < -180 || loc.Lon > 180 {
		return "", fmt.Errorf("coordinates out of range: %f,%f", loc.Lat, loc.Lon)
	}

	base := r.BaseURL
	if base == "" {
		base = osmBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse map base url: %w", err)
	}

	q := u.Query()
	q.Set("mlat", formatCoord(loc.Lat))
	q.Set("mlon", formatCoord(loc.Lon))
	u.RawQuery = q.Encode()
	u.Fragment = fmt.Sprintf("map=%d/%s/%s", clampZoom(zoom), formatCoord(loc.Lat), formatCoord(loc.Lon))

	return u.String(), nil
}

// NoopRenderer renders nothing. It backs the "none" map provider.
type NoopRenderer struct{}

func (NoopRenderer) RenderMap(Location, int) (string, error) {
	return "", ErrNoLocation
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 5, 64)
}

func clampZoom(z int) int {
	return min(max(z, 0), 20)
}
