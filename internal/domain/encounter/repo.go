package encounter

import "context"

type Repository interface {
	Create(ctx context.Context, t *EncounterType) error

	// GetByName is an exact match and reports absence as vocab.ErrNotFound.
	GetByName(ctx context.Context, name string) (*EncounterType, error)
}
