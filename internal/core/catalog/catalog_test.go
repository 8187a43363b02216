package catalog

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
hotels:
  - id: harbor-view
    name: Harbor View
    summary: Waterfront rooms near the ferry
    description: |
      # Harbor View
      Rooms overlook the **marina**.
    stars: 4
    location:
      label: Pier 7
      lat: 47.6062
      lon: -122.3321
      zoom: 16
    images:
      - https://cdn.example.com/harbor/lobby.jpg
      - https://cdn.example.com/harbor/pool.jpg
    image_glob: photos/harbor/*.jpg
    rooms:
      - id: king-suite
        name: King Suite
        capacity: 2
        price_per_night: 240
        images:
          - https://cdn.example.com/harbor/king-1.jpg
  - id: pine-lodge
    name: Pine Lodge
`

const sampleTOML = `
[[hotels]]
id = "harbor-view"
name = "Harbor View"
stars = 4
images = ["https://cdn.example.com/harbor/lobby.jpg"]

  [[hotels.rooms]]
  id = "king-suite"
  name = "King Suite"
  capacity = 2
  price_per_night = 240.0
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_YAMLWithGlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "photos/harbor/b-terrace.jpg"), "x")
	writeFile(t, filepath.Join(dir, "photos/harbor/a-bar.jpg"), "x")
	writeFile(t, filepath.Join(dir, "photos/harbor/notes.txt"), "x")
	path := filepath.Join(dir, "catalog.yaml")
	writeFile(t, path, sampleYAML)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, c.Path())
	require.Len(t, c.Hotels, 2)

	h, err := c.FindHotel("harbor-view")
	require.NoError(t, err)
	assert.Equal(t, 4, h.Stars)
	require.NotNil(t, h.Location)
	assert.Equal(t, 16, h.Location.Zoom)

	assert.Equal(t, []string{
		"https://cdn.example.com/harbor/lobby.jpg",
		"https://cdn.example.com/harbor/pool.jpg",
		filepath.Join(dir, "photos/harbor/a-bar.jpg"),
		filepath.Join(dir, "photos/harbor/b-terrace.jpg"),
	}, h.AllImages())

	imgs, err := c.ImageSet(RoomOwner("harbor-view", "king-suite"))
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/harbor/king-1.jpg"}, imgs)

	imgs, err = c.ImageSet(HotelOwner("pine-lodge"))
	require.NoError(t, err)
	assert.Empty(t, imgs)
}

func TestLoad_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	writeFile(t, path, sampleTOML)

	c, err := Load(path)
	require.NoError(t, err)

	h, room, err := c.FindRoom("harbor-view", "king-suite")
	require.NoError(t, err)
	assert.Equal(t, "Harbor View", h.Name)
	assert.Equal(t, 2, room.Capacity)
	assert.InDelta(t, 240.0, room.PricePerNight, 0.001)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "catalog.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported catalog extension")

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	unknown := filepath.Join(dir, "unknown.yaml")
	writeFile(t, unknown, "hotels: []\nmotels: []\n")
	_, err = Load(unknown)
	require.Error(t, err)

	unknownTOML := filepath.Join(dir, "unknown.toml")
	writeFile(t, unknownTOML, "motels = 1\n")
	_, err = Load(unknownTOML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "motels")
}

func TestParse_EmptyYAML(t *testing.T) {
	c, err := Parse(nil, FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, c.Hotels)
	assert.NoError(t, c.Validate())
}

func TestFind_NotFoundSuggests(t *testing.T) {
	c, err := Parse([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)

	_, err = c.FindHotel("harbour-view")
	require.ErrorIs(t, err, ErrNotFound)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "harbor-view", nf.Suggestion)
	assert.Contains(t, err.Error(), `did you mean "harbor-view"`)

	_, _, err = c.FindRoom("harbor-view", "queen-suite")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `room "harbor-view/queen-suite" not found`)

	_, err = c.FindHotel("zzz")
	require.ErrorIs(t, err, ErrNotFound)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestSuggest(t *testing.T) {
	candidates := []string{"harbor-view", "pine-lodge", "desert-inn"}

	assert.Equal(t, "pine-lodge", Suggest("pine-ldge", candidates))
	assert.Equal(t, "desert-inn", Suggest("dessert-inn", candidates))
	assert.Empty(t, Suggest("castle", candidates))
	assert.Empty(t, Suggest("anything", nil))
}

func TestOwners(t *testing.T) {
	c, err := Parse([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, []Owner{
		HotelOwner("harbor-view"),
		RoomOwner("harbor-view", "king-suite"),
		HotelOwner("pine-lodge"),
	}, c.Owners())
}

func TestOwnerKeyRoundTrip(t *testing.T) {
	tests := []struct {
		in      string
		want    Owner
		wantKey string
		wantErr bool
	}{
		{in: "hotel:harbor-view", want: HotelOwner("harbor-view"), wantKey: "hotel:harbor-view"},
		{in: "room:harbor-view/king-suite", want: RoomOwner("harbor-view", "king-suite"), wantKey: "room:harbor-view/king-suite"},
		{in: "harbor-view", want: HotelOwner("harbor-view"), wantKey: "hotel:harbor-view"},
		{in: "harbor-view/king-suite", want: RoomOwner("harbor-view", "king-suite"), wantKey: "room:harbor-view/king-suite"},
		{in: "room:harbor-view", wantErr: true},
		{in: "hotel:", wantErr: true},
		{in: "motel:x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOwner(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantKey, got.Key())
		})
	}
}

func TestValidate(t *testing.T) {
	c := &Catalog{Hotels: []Hotel{
		{ID: "Harbor View", Name: "", Stars: 6, ImageGlob: "photos/[", Location: &Location{Lat: 91, Lon: -181, Zoom: 21}},
		{ID: "pine", Name: "Pine", Rooms: []Room{
			{ID: "a", Name: "A", Capacity: -1, PricePerNight: -5},
			{ID: "a", Name: ""},
		}},
		{ID: "pine", Name: "Pine again"},
	}}

	err := c.Validate()
	require.Error(t, err)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field)
	}

	for _, want := range []string{
		"hotels[0].id",
		"hotels[0].name",
		"hotels[0].stars",
		"hotels[0].image_glob",
		"hotels[0].location.lat",
		"hotels[0].location.lon",
		"hotels[0].location.zoom",
		"hotels[1].rooms[0].capacity",
		"hotels[1].rooms[0].price_per_night",
		"hotels[1].rooms[1].id",
		"hotels[1].rooms[1].name",
		"hotels[2].id",
	} {
		assert.Contains(t, fields, want)
	}
}

func TestExpand_RefreshesMatches(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "img/one.png"), "x")

	c := &Catalog{Hotels: []Hotel{{ID: "h", Name: "H", ImageGlob: "img/**/*.png"}}}
	require.NoError(t, c.Expand(dir))
	assert.Len(t, c.Hotels[0].AllImages(), 1)

	writeFile(t, filepath.Join(dir, "img/nested/two.png"), "x")
	require.NoError(t, c.Expand(dir))
	assert.Equal(t, []string{
		filepath.Join(dir, "img/nested/two.png"),
		filepath.Join(dir, "img/one.png"),
	}, c.Hotels[0].AllImages())
}

func TestImage_JSONOwnerKey(t *testing.T) {
	img := Image{ID: 7, Owner: RoomOwner("harbor-view", "king-suite"), URL: "https://cdn.example.com/k.jpg", Active: true}

	bits, err := json.Marshal(img)
	require.NoError(t, err)
	assert.Contains(t, string(bits), `"owner":"room:harbor-view/king-suite"`)

	var decoded Image
	require.NoError(t, json.Unmarshal(bits, &decoded))
	assert.Equal(t, img.Owner, decoded.Owner)

	err = json.Unmarshal([]byte(`{"owner":"suite:x"}`), &decoded)
	assert.Error(t, err)
}
