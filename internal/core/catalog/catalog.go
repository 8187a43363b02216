// Package catalog holds the static hotel and room content that feeds the
// gallery: names, descriptions, locations and ordered image references.
package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Catalog is the root of a catalog file.
type Catalog struct {
	Hotels []Hotel `yaml:"hotels" toml:"hotels"`

	path string
}

// Hotel is a property with its own gallery and a list of rooms.
type Hotel struct {
	ID          string    `yaml:"id" toml:"id"`
	Name        string    `yaml:"name" toml:"name"`
	Summary     string    `yaml:"summary" toml:"summary"`
	Description string    `yaml:"description" toml:"description"` // markdown
	Stars       int       `yaml:"stars" toml:"stars"`
	Location    *Location `yaml:"location" toml:"location"`
	Images      []string  `yaml:"images" toml:"images"`
	ImageGlob   string    `yaml:"image_glob" toml:"image_glob"`
	Rooms       []Room    `yaml:"rooms" toml:"rooms"`

	globbed []string
}

// Room is a bookable room type of a hotel.
type Room struct {
	ID            string   `yaml:"id" toml:"id"`
	Name          string   `yaml:"name" toml:"name"`
	Description   string   `yaml:"description" toml:"description"` // markdown
	Capacity      int      `yaml:"capacity" toml:"capacity"`
	PricePerNight float64  `yaml:"price_per_night" toml:"price_per_night"`
	Images        []string `yaml:"images" toml:"images"`
	ImageGlob     string   `yaml:"image_glob" toml:"image_glob"`

	globbed []string
}

// Location places a hotel on a map.
type Location struct {
	Label string  `yaml:"label" toml:"label"`
	Lat   float64 `yaml:"lat" toml:"lat"`
	Lon   float64 `yaml:"lon" toml:"lon"`
	Zoom  int     `yaml:"zoom" toml:"zoom"`
}

// Path returns the file the catalog was loaded from, if any.
func (c *Catalog) Path() string { return c.path }

// AllImages returns the explicit images followed by glob matches.
func (h Hotel) AllImages() []string {
	return concat(h.Images, h.globbed)
}

// AllImages returns the explicit images followed by glob matches.
func (r Room) AllImages() []string {
	return concat(r.Images, r.globbed)
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// OwnerKind distinguishes hotel and room galleries.
type OwnerKind string

const (
	OwnerHotel OwnerKind = "hotel"
	OwnerRoom  OwnerKind = "room"
)

// Owner identifies the hotel or room an image set belongs to.
type Owner struct {
	Kind    OwnerKind
	HotelID string
	RoomID  string
}

// HotelOwner returns the owner for a hotel gallery.
func HotelOwner(hotelID string) Owner {
	return Owner{Kind: OwnerHotel, HotelID: hotelID}
}

// RoomOwner returns the owner for a room gallery.
func RoomOwner(hotelID, roomID string) Owner {
	return Owner{Kind: OwnerRoom, HotelID: hotelID, RoomID: roomID}
}

// Key renders the owner as "hotel:<id>" or "room:<hotel>/<room>".
func (o Owner) Key() string {
	if o.Kind == OwnerRoom {
		return fmt.Sprintf("%s:%s/%s", OwnerRoom, o.HotelID, o.RoomID)
	}
	return fmt.Sprintf("%s:%s", OwnerHotel, o.HotelID)
}

func (o Owner) String() string { return o.Key() }

// MarshalText encodes the owner as its key.
func (o Owner) MarshalText() ([]byte, error) { return []byte(o.Key()), nil }

// UnmarshalText parses an owner key.
func (o *Owner) UnmarshalText(text []byte) error {
	parsed, err := ParseOwner(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// ParseOwner parses an owner key. A bare "<hotel>" or "<hotel>/<room>" is
// accepted as shorthand.
func ParseOwner(s string) (Owner, error) {
	kind, rest, found := strings.Cut(s, ":")
	if !found {
		rest = s
		kind = string(OwnerHotel)
		if strings.Contains(s, "/") {
			kind = string(OwnerRoom)
		}
	}

	switch OwnerKind(kind) {
	case OwnerHotel:
		if rest == "" || strings.Contains(rest, "/") {
			return Owner{}, fmt.Errorf("invalid hotel owner %q", s)
		}
		return HotelOwner(rest), nil
	case OwnerRoom:
		hotelID, roomID, ok := strings.Cut(rest, "/")
		if !ok || hotelID == "" || roomID == "" {
			return Owner{}, fmt.Errorf("invalid room owner %q: want room:<hotel>/<room>", s)
		}
		return RoomOwner(hotelID, roomID), nil
	default:
		return Owner{}, fmt.Errorf("invalid owner kind %q in %q", kind, s)
	}
}

// FindHotel returns the hotel with id.
func (c *Catalog) FindHotel(id string) (*Hotel, error) {
	for i := range c.Hotels {
		if c.Hotels[i].ID == id {
			return &c.Hotels[i], nil
		}
	}
	return nil, &NotFoundError{Kind: OwnerHotel, ID: id, Suggestion: Suggest(id, c.hotelIDs())}
}

// FindRoom returns the room roomID of hotel hotelID.
func (c *Catalog) FindRoom(hotelID, roomID string) (*Hotel, *Room, error) {
	h, err := c.FindHotel(hotelID)
	if err != nil {
		return nil, nil, err
	}
	for i := range h.Rooms {
		if h.Rooms[i].ID == roomID {
			return h, &h.Rooms[i], nil
		}
	}
	ids := make([]string, 0, len(h.Rooms))
	for _, r := range h.Rooms {
		ids = append(ids, r.ID)
	}
	return h, nil, &NotFoundError{Kind: OwnerRoom, ID: hotelID + "/" + roomID, Suggestion: Suggest(roomID, ids)}
}

// ImageSet returns the catalog images for owner.
func (c *Catalog) ImageSet(owner Owner) ([]string, error) {
	switch owner.Kind {
	case OwnerRoom:
		_, room, err := c.FindRoom(owner.HotelID, owner.RoomID)
		if err != nil {
			return nil, err
		}
		return room.AllImages(), nil
	default:
		h, err := c.FindHotel(owner.HotelID)
		if err != nil {
			return nil, err
		}
		return h.AllImages(), nil
	}
}

// Owners lists every hotel and room owner in catalog order.
func (c *Catalog) Owners() []Owner {
	var owners []Owner
	for _, h := range c.Hotels {
		owners = append(owners, HotelOwner(h.ID))
		for _, r := range h.Rooms {
			owners = append(owners, RoomOwner(h.ID, r.ID))
		}
	}
	return owners
}

func (c *Catalog) hotelIDs() []string {
	ids := make([]string, 0, len(c.Hotels))
	for _, h := range c.Hotels {
		ids = append(ids, h.ID)
	}
	return slices.Clip(ids)
}
