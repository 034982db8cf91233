package corpus

import (
	"fmt"
	"strings"

	"aegis-srv/internal/model"
)

// Validate checks that entities form a usable corpus.
func Validate(entities []model.Entity) error {
	if len(entities) == 0 {
		return ErrEmptyCorpus
	}
	seen := make(map[int]struct{}, len(entities))
	for i, e := range entities {
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateEntityID, e.ID)
		}
		seen[e.ID] = struct{}{}

		switch {
		case e.ID <= 0:
			return fmt.Errorf("%w: entity %d: id must be positive", ErrInvalidEntity, i)
		case strings.TrimSpace(e.Username) == "":
			return fmt.Errorf("%w: entity %d: username is required", ErrInvalidEntity, e.ID)
		case !e.Platform.IsValid():
			return fmt.Errorf("%w: entity %d: unknown platform %q", ErrInvalidEntity, e.ID, e.Platform)
		case !e.Engagement.IsValid():
			return fmt.Errorf("%w: entity %d: unknown engagement %q", ErrInvalidEntity, e.ID, e.Engagement)
		case e.Followers < 0:
			return fmt.Errorf("%w: entity %d: followers must not be negative", ErrInvalidEntity, e.ID)
		}
	}
	return nil
}
