// Package gallery implements the media gallery state machine shared by every
// hotel and room detail view: a fixed preview grid over an ordered image set
// and a lightbox that pages through the whole set.
package gallery

import (
	"errors"
	"fmt"
	"slices"
)

const (
	// PrimarySlots is the number of large tiles at the front of the grid.
	PrimarySlots = 1
	// SecondarySlots is the maximum number of small tiles after the primary.
	SecondarySlots = 4
	// PreviewSlots is the number of images the grid can show at once.
	PreviewSlots = PrimarySlots + SecondarySlots
)

// ErrInvalidIndex is returned when a lightbox is opened at a position that
// is not in the image set.
var ErrInvalidIndex = errors.New("invalid image index")

// InvalidIndexError carries the rejected index and the set length.
type InvalidIndexError struct {
	Index int
	Len   int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("%s: %d not in [0, %d)", ErrInvalidIndex, e.Index, e.Len)
}

func (e *InvalidIndexError) Is(target error) bool {
	return target == ErrInvalidIndex
}

// State is the lightbox state.
type State int

const (
	StateClosed State = iota
	StateOpen
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	default:
		return "closed"
	}
}

// Viewer owns the view state for one image set. The zero value is an empty,
// closed viewer.
type Viewer struct {
	images       []string
	currentIndex int
	lightboxOpen bool
}

// New creates a closed viewer positioned at the first image. The slice is
// copied; later changes by the caller are not observed.
func New(images []string) *Viewer {
	return &Viewer{images: slices.Clone(images)}
}

// Len returns the number of images in the set.
func (v *Viewer) Len() int { return len(v.images) }

// Images returns a copy of the image set.
func (v *Viewer) Images() []string { return slices.Clone(v.images) }

// Index returns the current lightbox position. It is meaningless when the
// set is empty.
func (v *Viewer) Index() int { return v.currentIndex }

// IsOpen reports whether the lightbox is active.
func (v *Viewer) IsOpen() bool { return v.lightboxOpen }

// State returns the lightbox state.
func (v *Viewer) State() State {
	if v.lightboxOpen {
		return StateOpen
	}
	return StateClosed
}

// OpenAt opens the lightbox at index. On an empty set it does nothing. An
// index outside the set is rejected and the state is left untouched.
func (v *Viewer) OpenAt(index int) error {
	if len(v.images) == 0 {
		return nil
	}
	if index < 0 || index >= len(v.images) {
		return &InvalidIndexError{Index: index, Len: len(v.images)}
	}
	v.currentIndex = index
	v.lightboxOpen = true
	return nil
}

// Seek moves the current index without changing the lightbox state. It
// validates index the same way OpenAt does.
func (v *Viewer) Seek(index int) error {
	if len(v.images) == 0 {
		return nil
	}
	if index < 0 || index >= len(v.images) {
		return &InvalidIndexError{Index: index, Len: len(v.images)}
	}
	v.currentIndex = index
	return nil
}

// Reopen opens the lightbox at the last viewed image.
func (v *Viewer) Reopen() {
	if len(v.images) == 0 {
		return
	}
	v.lightboxOpen = true
}

// Close deactivates the lightbox. The current index is kept.
func (v *Viewer) Close() {
	v.lightboxOpen = false
}

// Next advances to the following image, wrapping to the first.
func (v *Viewer) Next() {
	n := len(v.images)
	if n == 0 {
		return
	}
	v.currentIndex = (v.currentIndex + 1) % n
}

// Previous steps back one image, wrapping to the last.
func (v *Viewer) Previous() {
	n := len(v.images)
	if n == 0 {
		return
	}
	v.currentIndex = (v.currentIndex - 1 + n) % n
}

// OverflowCount is the number of images not shown by any preview tile.
func (v *Viewer) OverflowCount() int {
	return OverflowCount(len(v.images))
}

// Current returns the image under the lightbox cursor.
func (v *Viewer) Current() (string, bool) {
	if len(v.images) == 0 {
		return "", false
	}
	return v.images[v.currentIndex], true
}

// Position returns the 1-based position and the set length. Both are zero
// for an empty set.
func (v *Viewer) Position() (int, int) {
	if len(v.images) == 0 {
		return 0, 0
	}
	return v.currentIndex + 1, len(v.images)
}

// PositionLabel renders the lightbox indicator, e.g. "5 / 7".
func (v *Viewer) PositionLabel() string {
	cur, total := v.Position()
	return fmt.Sprintf("%d / %d", cur, total)
}

// Layout returns the preview grid for the current image set.
func (v *Viewer) Layout() PreviewLayout {
	return NewLayout(v.images)
}

// OverflowCount returns max(0, n-PreviewSlots).
func OverflowCount(n int) int {
	return max(0, n-PreviewSlots)
}
