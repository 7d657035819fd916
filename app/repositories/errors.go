package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means the id did not resolve to an entity.
	ErrNotFound = errors.New("entity not found")

	// ErrReferentialConflict means a hard delete was blocked because
	// dependent records still reference the target. Callers must surface
	// this distinctly so the UI can suggest archiving instead.
	ErrReferentialConflict = errors.New("entity is referenced by dependent records")
)

// wrapStoreErr maps gorm's sentinel onto the repository taxonomy and tags
// everything else as a store failure so transient outages stay
// distinguishable from domain errors.
func wrapStoreErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: store error: %w", op, err)
}
