package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayout_SecondaryCounts(t *testing.T) {
	tests := []struct {
		n             int
		wantSecondary int
		wantOverflow  int
	}{
		{n: 1, wantSecondary: 0},
		{n: 2, wantSecondary: 1},
		{n: 3, wantSecondary: 2},
		{n: 5, wantSecondary: 4},
		{n: 6, wantSecondary: 4, wantOverflow: 1},
		{n: 12, wantSecondary: 4, wantOverflow: 7},
	}

	for _, tt := range tests {
		layout := NewLayout(images(tt.n))
		require.NotNil(t, layout.Primary)
		assert.Equal(t, "img-0.jpg", layout.Primary.Image)
		assert.Zero(t, layout.Primary.Overflow)
		require.Len(t, layout.Secondary, tt.wantSecondary, "n=%d", tt.n)

		for k, tile := range layout.Secondary {
			assert.Equal(t, k+1, tile.Index)
			assert.Equal(t, images(tt.n)[k+1], tile.Image)
			if k == SecondarySlots-1 {
				assert.Equal(t, tt.wantOverflow, tile.Overflow)
			} else {
				assert.Zero(t, tile.Overflow)
			}
		}
	}
}

func TestNewLayout_DuplicateImages(t *testing.T) {
	layout := NewLayout([]string{"a.jpg", "a.jpg", "a.jpg"})
	tiles := layout.Tiles()
	require.Len(t, tiles, 3)
	for i, tile := range tiles {
		assert.Equal(t, i, tile.Index)
		assert.Equal(t, i+1, tile.Slot())
	}
}

func TestNewLayout_Empty(t *testing.T) {
	layout := NewLayout(nil)
	assert.True(t, layout.Empty())
	assert.Nil(t, layout.Primary)
	assert.Nil(t, layout.Tiles())
}
