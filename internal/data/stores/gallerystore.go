package stores

import (
	"context"
	"fmt"
	"time"

	"github.com/colonyops/innview/internal/core/catalog"
	"github.com/colonyops/innview/internal/data/db"
)

// GalleryStore implements catalog.ImageStore using SQLite.
type GalleryStore struct {
	db *db.DB
}

var _ catalog.ImageStore = (*GalleryStore)(nil)

// NewGalleryStore creates a new SQLite-backed gallery image store.
func NewGalleryStore(db *db.DB) *GalleryStore {
	return &GalleryStore{db: db}
}

// List returns the active images for owner.
func (s *GalleryStore) List(ctx context.Context, owner catalog.Owner) ([]catalog.Image, error) {
	rows, err := s.db.Conn().QueryContext(ctx, `
		SELECT id, owner, url, alt_text, sort_order, is_active, created_at
		FROM gallery_images
		WHERE owner = ? AND is_active = 1
		ORDER BY sort_order ASC, created_at DESC, id ASC`,
		owner.Key(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var images []catalog.Image
	for rows.Next() {
		var (
			img       catalog.Image
			ownerKey  string
			active    int
			createdAt int64
		)
		if err := rows.Scan(&img.ID, &ownerKey, &img.URL, &img.AltText, &img.SortOrder, &active, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		img.Owner, err = catalog.ParseOwner(ownerKey)
		if err != nil {
			return nil, fmt.Errorf("image %d: %w", img.ID, err)
		}
		img.Active = active != 0
		img.CreatedAt = time.Unix(0, createdAt)
		images = append(images, img)
	}

	return images, rows.Err()
}

// Add inserts img and fills in its ID, Active and CreatedAt fields.
func (s *GalleryStore) Add(ctx context.Context, img *catalog.Image) error {
	if img.URL == "" {
		return fmt.Errorf("image url is required")
	}

	createdAt := img.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	res, err := s.db.Conn().ExecContext(ctx, `
		INSERT INTO gallery_images (owner, url, alt_text, sort_order, is_active, created_at)
		VALUES (?, ?, ?, ?, 1, ?)`,
		img.Owner.Key(), img.URL, img.AltText, img.SortOrder, createdAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to add image: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read image id: %w", err)
	}

	img.ID = id
	img.Active = true
	img.CreatedAt = createdAt
	return nil
}

// Update changes the alt text and sort order of an image.
func (s *GalleryStore) Update(ctx context.Context, id int64, altText string, sortOrder int) error {
	return s.execOne(ctx, "update",
		"UPDATE gallery_images SET alt_text = ?, sort_order = ? WHERE id = ?",
		altText, sortOrder, id,
	)
}

// Deactivate hides an image from listings without deleting it.
func (s *GalleryStore) Deactivate(ctx context.Context, id int64) error {
	return s.execOne(ctx, "deactivate",
		"UPDATE gallery_images SET is_active = 0 WHERE id = ?", id,
	)
}

// Delete removes an image. Returns catalog.ErrImageNotFound if not found.
func (s *GalleryStore) Delete(ctx context.Context, id int64) error {
	return s.execOne(ctx, "delete",
		"DELETE FROM gallery_images WHERE id = ?", id,
	)
}

// execOne runs a statement expected to touch exactly one row.
func (s *GalleryStore) execOne(ctx context.Context, verb, query string, args ...any) error {
	res, err := s.db.Conn().ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s image: %w", verb, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to %s image: %w", verb, err)
	}
	if n == 0 {
		return catalog.ErrImageNotFound
	}
	return nil
}
