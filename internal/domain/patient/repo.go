package patient

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Create persists a patient together with its seeded identifiers,
	// names, and addresses.
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)

	// FindByIdentifier returns every patient holding the exact identifier
	// value under the given identifier type.
	FindByIdentifier(ctx context.Context, value string, identifierTypeID uuid.UUID) ([]*Patient, error)

	// Identifier-type vocabulary. GetIdentifierTypeByName reports absence
	// as vocab.ErrNotFound.
	CreateIdentifierType(ctx context.Context, t *PatientIdentifierType) error
	GetIdentifierTypeByName(ctx context.Context, name string) (*PatientIdentifierType, error)
}
