package provider

import (
	"time"

	"github.com/google/uuid"
)

// Provider maps to the provider table. Identity is the external identifier
// string when present; name matching is only a fallback.
type Provider struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Identifier *string   `db:"identifier" json:"identifier,omitempty"`
	Name       string    `db:"name" json:"name"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// EncounterRole maps to the encounter_role table: a global vocabulary of
// participation roles, created on first sight, exact name match on lookup.
type EncounterRole struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// RoleAssignment pairs a role with the set of providers participating under
// it for one document.
type RoleAssignment struct {
	Role      *EncounterRole
	Providers []*Provider
}

// ProvidersByRole maps role identity to its assignment. Keying by the
// stored role's id means two differently-cased role strings that resolve to
// the same row collapse into one entry.
type ProvidersByRole map[uuid.UUID]*RoleAssignment

// Add inserts a provider into a role's set with set semantics: a provider
// already present under the role is not duplicated.
func (m ProvidersByRole) Add(role *EncounterRole, p *Provider) {
	assignment, ok := m[role.ID]
	if !ok {
		assignment = &RoleAssignment{Role: role}
		m[role.ID] = assignment
	}
	for _, existing := range assignment.Providers {
		if existing.ID == p.ID {
			return
		}
	}
	assignment.Providers = append(assignment.Providers, p)
}
