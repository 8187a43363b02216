package catalog

import (
	"context"
	"errors"
	"time"
)

// ErrImageNotFound is returned when a registered image id does not exist.
var ErrImageNotFound = errors.New("image not found")

// Image is an image reference registered for an owner at runtime, in
// addition to the images listed in the catalog file. Only the locator is
// stored, never image bytes.
type Image struct {
	ID        int64     `json:"id"`
	Owner     Owner     `json:"owner"`
	URL       string    `json:"url"`
	AltText   string    `json:"alt_text,omitempty"`
	SortOrder int       `json:"sort_order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// ImageStore persists registered images.
type ImageStore interface {
	// List returns the active images of owner ordered by sort order, then
	// newest first.
	List(ctx context.Context, owner Owner) ([]Image, error)
	Add(ctx context.Context, img *Image) error
	Update(ctx context.Context, id int64, altText string, sortOrder int) error
	Deactivate(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
