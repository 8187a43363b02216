package innview

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/colonyops/innview/internal/core/catalog"
	"github.com/colonyops/innview/internal/core/logging"
)

// ErrStoreDisabled is returned by operations that need the registered image
// store when it is not configured.
var ErrStoreDisabled = errors.New("registered image store is disabled")

// GalleryService assembles image sets from the catalog and the registered
// image store. The catalog can be swapped at runtime when its file changes.
type GalleryService struct {
	mu      sync.RWMutex
	catalog *catalog.Catalog
	path    string

	store catalog.ImageStore // optional
	log   zerolog.Logger
}

// NewGalleryService creates a GalleryService. store may be nil.
func NewGalleryService(cat *catalog.Catalog, store catalog.ImageStore, log zerolog.Logger) *GalleryService {
	return &GalleryService{
		catalog: cat,
		path:    cat.Path(),
		store:   store,
		log:     log.With().Str("component", "gallery-service").Logger(),
	}
}

// Catalog returns the current catalog.
func (s *GalleryService) Catalog() *catalog.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// HasStore reports whether registered images are available.
func (s *GalleryService) HasStore() bool {
	return s.store != nil
}

// Reload re-reads the catalog file. On failure the previous catalog stays
// active and the error is returned.
func (s *GalleryService) Reload() (*catalog.Catalog, error) {
	if s.path == "" {
		return s.Catalog(), nil
	}

	cat, err := catalog.Load(s.path)
	if err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("catalog reload failed, keeping previous")
		return nil, err
	}

	s.mu.Lock()
	s.catalog = cat
	s.mu.Unlock()

	s.log.Info().Str("path", s.path).Int("hotels", len(cat.Hotels)).Msg("catalog reloaded")
	return cat, nil
}

// ImageSet returns the ordered image locators for owner: catalog images
// (explicit, then glob matches) followed by active registered images.
// Duplicates are kept.
func (s *GalleryService) ImageSet(ctx context.Context, owner catalog.Owner) ([]string, error) {
	ctx = logging.WithOwner(ctx, owner.Key())

	images, err := s.Catalog().ImageSet(owner)
	if err != nil {
		return nil, err
	}

	if s.store == nil {
		return images, nil
	}

	registered, err := s.store.List(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list registered images for %s: %w", owner, err)
	}
	for _, img := range registered {
		images = append(images, img.URL)
	}

	s.log.Debug().
		Ctx(ctx).
		Int("images", len(images)).
		Int("registered", len(registered)).
		Msg("image set assembled")

	return images, nil
}

// Registered returns the active registered images for owner.
func (s *GalleryService) Registered(ctx context.Context, owner catalog.Owner) ([]catalog.Image, error) {
	if s.store == nil {
		return nil, ErrStoreDisabled
	}
	if err := s.checkOwner(owner); err != nil {
		return nil, err
	}
	return s.store.List(ctx, owner)
}

// Register stores an image reference for an owner that exists in the catalog.
func (s *GalleryService) Register(ctx context.Context, img *catalog.Image) error {
	if s.store == nil {
		return ErrStoreDisabled
	}
	if err := s.checkOwner(img.Owner); err != nil {
		return err
	}
	if img.URL == "" {
		return fmt.Errorf("image url is required")
	}

	if err := s.store.Add(ctx, img); err != nil {
		return err
	}
	s.log.Info().
		Ctx(logging.WithOwner(ctx, img.Owner.Key())).
		Int64("id", img.ID).
		Msg("image registered")
	return nil
}

// Update changes the alt text and sort order of a registered image.
func (s *GalleryService) Update(ctx context.Context, id int64, altText string, sortOrder int) error {
	if s.store == nil {
		return ErrStoreDisabled
	}
	return s.store.Update(ctx, id, altText, sortOrder)
}

// Remove deletes a registered image, or hides it when keep is true.
func (s *GalleryService) Remove(ctx context.Context, id int64, keep bool) error {
	if s.store == nil {
		return ErrStoreDisabled
	}
	if keep {
		return s.store.Deactivate(ctx, id)
	}
	return s.store.Delete(ctx, id)
}

func (s *GalleryService) checkOwner(owner catalog.Owner) error {
	cat := s.Catalog()
	if owner.Kind == catalog.OwnerRoom {
		_, _, err := cat.FindRoom(owner.HotelID, owner.RoomID)
		return err
	}
	_, err := cat.FindHotel(owner.HotelID)
	return err
}
