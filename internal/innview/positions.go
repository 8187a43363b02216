package innview

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/innview/internal/core/catalog"
	"github.com/colonyops/innview/internal/core/gallery"
	"github.com/colonyops/innview/internal/core/kv"
)

// positionTTL bounds how long a saved gallery position survives without use.
const positionTTL = 30 * 24 * time.Hour

// PositionService remembers the last viewed image per owner so the lightbox
// can resume across runs. A nil store turns every call into a no-op.
type PositionService struct {
	positions *kv.TypedKV[int]
	log       zerolog.Logger
}

// NewPositionService creates a PositionService. store may be nil.
func NewPositionService(store kv.KV, log zerolog.Logger) *PositionService {
	s := &PositionService{log: log.With().Str("component", "positions").Logger()}
	if store != nil {
		s.positions = kv.Scoped[int](store, "gallery.index").WithTTL(positionTTL)
	}
	return s
}

// Restore seeks viewer to the saved index for owner. Saved indices that no
// longer fit the image set are dropped.
func (s *PositionService) Restore(ctx context.Context, owner catalog.Owner, viewer *gallery.Viewer) {
	if s.positions == nil || viewer.Len() == 0 {
		return
	}

	index, ok, err := s.positions.Lookup(ctx, owner.Key())
	if err != nil {
		s.log.Warn().Err(err).Str("owner", owner.Key()).Msg("failed to read gallery position")
		return
	}
	if !ok {
		return
	}

	if err := viewer.Seek(index); err != nil {
		if errors.Is(err, gallery.ErrInvalidIndex) {
			s.log.Debug().Err(err).Str("owner", owner.Key()).Msg("discarding stale gallery position")
			_ = s.positions.Delete(ctx, owner.Key())
		}
		return
	}
}

// Save stores the viewer's current index for owner.
func (s *PositionService) Save(ctx context.Context, owner catalog.Owner, viewer *gallery.Viewer) {
	if s.positions == nil || viewer.Len() == 0 {
		return
	}
	if err := s.positions.Set(ctx, owner.Key(), viewer.Index()); err != nil {
		s.log.Warn().Err(err).Str("owner", owner.Key()).Msg("failed to save gallery position")
	}
}
