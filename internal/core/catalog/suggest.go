package catalog

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
)

// ErrNotFound is matched by every lookup miss.
var ErrNotFound = errors.New("not found")

// NotFoundError reports a missing hotel or room with the closest known id.
type NotFoundError struct {
	Kind       OwnerKind
	ID         string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s %q not found", e.Kind, e.ID)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Suggest returns the candidate closest to id by edit distance, or "" when
// nothing is close enough to be a plausible typo.
func Suggest(id string, candidates []string) string {
	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(id, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(id)/3) {
		return ""
	}
	return best
}
