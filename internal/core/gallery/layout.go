package gallery

// Tile is one slot of the preview grid.
type Tile struct {
	// Index is the position in the image set opened when the tile is
	// activated.
	Index int
	Image string
	// Overflow is the "+N" count drawn over the last secondary tile. Zero
	// everywhere else.
	Overflow int
}

// Slot returns the 1-based grid position of the tile.
func (t Tile) Slot() int { return t.Index + 1 }

// PreviewLayout partitions an image set into the primary tile and up to
// SecondarySlots secondary tiles.
type PreviewLayout struct {
	Primary   *Tile
	Secondary []Tile
}

// NewLayout derives the preview grid for images.
func NewLayout(images []string) PreviewLayout {
	if len(images) == 0 {
		return PreviewLayout{}
	}

	layout := PreviewLayout{
		Primary: &Tile{Index: 0, Image: images[0]},
	}

	end := min(len(images), PreviewSlots)
	if end > PrimarySlots {
		layout.Secondary = make([]Tile, 0, end-PrimarySlots)
	}
	for i := PrimarySlots; i < end; i++ {
		layout.Secondary = append(layout.Secondary, Tile{Index: i, Image: images[i]})
	}

	if overflow := OverflowCount(len(images)); overflow > 0 {
		layout.Secondary[SecondarySlots-1].Overflow = overflow
	}

	return layout
}

// Tiles returns every tile in grid order, primary first.
func (l PreviewLayout) Tiles() []Tile {
	if l.Primary == nil {
		return nil
	}
	tiles := make([]Tile, 0, 1+len(l.Secondary))
	tiles = append(tiles, *l.Primary)
	return append(tiles, l.Secondary...)
}

// Empty reports whether the grid has no tiles.
func (l PreviewLayout) Empty() bool { return l.Primary == nil }
