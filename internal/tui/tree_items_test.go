package tui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/innview/internal/core/catalog"
	"github.com/colonyops/innview/pkg/tuitest"
)

func testItemsCatalog() *catalog.Catalog {
	return &catalog.Catalog{Hotels: []catalog.Hotel{
		{
			ID:       "harbor-view",
			Name:     "Harbor View",
			Summary:  "Waterfront rooms",
			Stars:    3,
			Location: &catalog.Location{Label: "Pier 7"},
			Images:   []string{"a.jpg", "b.jpg"},
			Rooms: []catalog.Room{
				{ID: "king-suite", Name: "King Suite", Capacity: 2, PricePerNight: 240, Images: []string{"k.jpg"}},
				{ID: "twin", Name: "Twin Room"},
			},
		},
		{ID: "pine-lodge", Name: "Pine Lodge"},
	}}
}

func TestBuildItems(t *testing.T) {
	items := BuildItems(testItemsCatalog())
	require.Len(t, items, 4)

	want := []catalog.Owner{
		catalog.HotelOwner("harbor-view"),
		catalog.RoomOwner("harbor-view", "king-suite"),
		catalog.RoomOwner("harbor-view", "twin"),
		catalog.HotelOwner("pine-lodge"),
	}
	for i, item := range items {
		ci, ok := item.(CatalogItem)
		require.True(t, ok)
		assert.Equal(t, want[i], ci.Owner)
	}

	hotel := items[0].(CatalogItem)
	assert.False(t, hotel.IsRoom())
	assert.Equal(t, 2, hotel.Images)
	assert.Equal(t, "★★★ • Pier 7 • Waterfront rooms", hotel.Summary)

	suite := items[1].(CatalogItem)
	assert.True(t, suite.IsRoom())
	assert.Equal(t, "sleeps 2 • $240/night", suite.Summary)
	assert.Contains(t, suite.FilterValue(), "King Suite")
	assert.Contains(t, suite.FilterValue(), "harbor-view")

	assert.Empty(t, items[2].(CatalogItem).Summary)
}

func TestBuildItems_EmptyCatalog(t *testing.T) {
	assert.Empty(t, BuildItems(&catalog.Catalog{}))
}

func TestCatalogDelegate_Render(t *testing.T) {
	items := BuildItems(testItemsCatalog())
	l := list.New(items, CatalogDelegate{}, 80, 20)

	var buf bytes.Buffer
	CatalogDelegate{}.Render(&buf, l, 0, items[0])
	out := tuitest.StripANSI(buf.String())
	assert.Contains(t, out, "▸ Harbor View 2 photos")
	assert.Contains(t, out, "Pier 7")

	buf.Reset()
	CatalogDelegate{}.Render(&buf, l, 1, items[1])
	out = tuitest.StripANSI(buf.String())
	assert.Contains(t, out, "    King Suite 1 photo")
	assert.NotContains(t, out, "▸")
}

func TestPhotoCount(t *testing.T) {
	assert.Equal(t, "0 photos", photoCount(0))
	assert.Equal(t, "1 photo", photoCount(1))
	assert.Equal(t, "12 photos", photoCount(12))
}
