package provider

import "context"

type Repository interface {
	Create(ctx context.Context, p *Provider) error

	// GetByIdentifier reports absence as vocab.ErrNotFound.
	GetByIdentifier(ctx context.Context, identifier string) (*Provider, error)

	// ListAll returns every provider. Used only by the name-match fallback
	// when an author has no identifier; O(n) in provider count.
	ListAll(ctx context.Context) ([]*Provider, error)

	// Encounter-role vocabulary. GetRoleByName is an exact, case-sensitive
	// match and reports absence as vocab.ErrNotFound.
	CreateRole(ctx context.Context, r *EncounterRole) error
	GetRoleByName(ctx context.Context, name string) (*EncounterRole, error)
}
