package catalog

import (
	"fmt"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
)

const (
	MaxStars = 5
	MaxZoom  = 20
)

var idPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Validate checks ids, names, ranges and glob syntax. Every problem is
// reported as a field error keyed by its path in the file.
func (c *Catalog) Validate() error {
	var errs criterio.FieldErrorsBuilder

	hotelSeen := make(map[string]int, len(c.Hotels))
	for i, h := range c.Hotels {
		prefix := fmt.Sprintf("hotels[%d]", i)

		errs = validateID(errs, prefix+".id", h.ID)
		if first, dup := hotelSeen[h.ID]; dup && h.ID != "" {
			errs = errs.Append(prefix+".id", fmt.Errorf("duplicate of hotels[%d]", first))
		} else {
			hotelSeen[h.ID] = i
		}

		if h.Name == "" {
			errs = errs.Append(prefix+".name", fmt.Errorf("name is required"))
		}
		if h.Stars < 0 || h.Stars > MaxStars {
			errs = errs.Append(prefix+".stars", fmt.Errorf("must be between 0 and %d", MaxStars))
		}
		errs = validateGlob(errs, prefix+".image_glob", h.ImageGlob)

		if loc := h.Location; loc != nil {
			if loc.Lat < -90 || loc.Lat > 90 {
				errs = errs.Append(prefix+".location.lat", fmt.Errorf("must be between -90 and 90"))
			}
			if loc.Lon < -180 || loc.Lon > 180 {
				errs = errs.Append(prefix+".location.lon", fmt.Errorf("must be between -180 and 180"))
			}
			if loc.Zoom < 0 || loc.Zoom > MaxZoom {
				errs = errs.Append(prefix+".location.zoom", fmt.Errorf("must be between 0 and %d", MaxZoom))
			}
		}

		roomSeen := make(map[string]int, len(h.Rooms))
		for j, r := range h.Rooms {
			rp := fmt.Sprintf("%s.rooms[%d]", prefix, j)

			errs = validateID(errs, rp+".id", r.ID)
			if first, dup := roomSeen[r.ID]; dup && r.ID != "" {
				errs = errs.Append(rp+".id", fmt.Errorf("duplicate of %s.rooms[%d]", prefix, first))
			} else {
				roomSeen[r.ID] = j
			}

			if r.Name == "" {
				errs = errs.Append(rp+".name", fmt.Errorf("name is required"))
			}
			if r.Capacity < 0 {
				errs = errs.Append(rp+".capacity", fmt.Errorf("must not be negative"))
			}
			if r.PricePerNight < 0 {
				errs = errs.Append(rp+".price_per_night", fmt.Errorf("must not be negative"))
			}
			errs = validateGlob(errs, rp+".image_glob", r.ImageGlob)
		}
	}

	return errs.ToError()
}

func validateID(errs criterio.FieldErrorsBuilder, field, id string) criterio.FieldErrorsBuilder {
	switch {
	case id == "":
		return errs.Append(field, fmt.Errorf("id is required"))
	case !idPattern.MatchString(id):
		return errs.Append(field, fmt.Errorf("%q must be lowercase letters, digits and dashes", id))
	}
	return errs
}

func validateGlob(errs criterio.FieldErrorsBuilder, field, pattern string) criterio.FieldErrorsBuilder {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return errs.Append(field, fmt.Errorf("invalid glob %q", pattern))
	}
	return errs
}
