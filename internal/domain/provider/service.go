package provider

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/openhie/xds-repository/internal/platform/hl7"
	"github.com/openhie/xds-repository/internal/platform/xds"
	"github.com/openhie/xds-repository/pkg/vocab"
)

// UnknownRoleName is the well-known fallback role for authors submitted
// without an authorRole slot. The row is seeded by the migrations.
const UnknownRoleName = "Unknown"

const roleDescription = "Created by the XDS.b repository."

type Service struct {
	repo   Repository
	logger zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ResolveProvidersByRole walks every author classification of a document,
// resolving or creating one provider per instance and assigning it to each
// role named by the authorRole slot (or to the Unknown role when the slot
// is absent).
func (s *Service) ResolveProvidersByRole(ctx context.Context, eo *xds.ExtrinsicObject) (ProvidersByRole, error) {
	byRole := make(ProvidersByRole)

	for _, slots := range eo.ClassificationSlots(xds.SchemeAuthor) {
		person := slots.FirstValue(xds.SlotAuthorPerson)
		if person == "" {
			continue
		}

		pro, err := s.resolveProvider(ctx, hl7.ParseXCN(person))
		if err != nil {
			return nil, err
		}

		roleNames := slots.Values(xds.SlotAuthorRole)
		if len(roleNames) == 0 {
			roleNames = []string{UnknownRoleName}
		}
		for _, name := range roleNames {
			role, err := s.resolveRole(ctx, name)
			if err != nil {
				return nil, err
			}
			byRole.Add(role, pro)
		}
	}

	return byRole, nil
}

// resolveProvider looks up a provider by external identifier, falling back
// to a linear name scan only when the XCN carries no identifier component.
// The scan matches given-name prefix and family-name containment; it is
// O(n) in total provider count and exists for sources that cannot supply a
// provider id, not as a primary lookup.
func (s *Service) resolveProvider(ctx context.Context, xcn hl7.XCN) (*Provider, error) {
	if xcn.ID != "" {
		pro, err := s.repo.GetByIdentifier(ctx, xcn.ID)
		if err == nil {
			return pro, nil
		}
		if !errors.Is(err, vocab.ErrNotFound) {
			return nil, err
		}
	} else if xcn.GivenName != "" || xcn.FamilyName != "" {
		// Empty given and family names would match every provider; an XCN
		// with no id and no name components skips the scan entirely.
		all, err := s.repo.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, pro := range all {
			if strings.HasPrefix(pro.Name, xcn.GivenName) && strings.Contains(pro.Name, xcn.FamilyName) {
				return pro, nil
			}
		}
	}

	pro := newProvider(xcn)
	if err := s.repo.Create(ctx, pro); err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("provider_id", pro.ID.String()).
		Str("name", pro.Name).
		Msg("created provider")
	return pro, nil
}

func newProvider(xcn hl7.XCN) *Provider {
	pro := &Provider{}
	if xcn.ID != "" {
		id := xcn.ID
		pro.Identifier = &id
	}
	if xcn.GivenName != "" && xcn.FamilyName != "" {
		pro.Name = xcn.GivenName + " " + xcn.FamilyName
	} else {
		pro.Name = xcn.ID
	}
	return pro
}

// resolveRole finds or creates an encounter role by exact, case-sensitive
// name match.
func (s *Service) resolveRole(ctx context.Context, name string) (*EncounterRole, error) {
	return vocab.Resolve(ctx,
		func(ctx context.Context) (*EncounterRole, error) {
			return s.repo.GetRoleByName(ctx, name)
		},
		func(ctx context.Context) (*EncounterRole, error) {
			desc := roleDescription
			role := &EncounterRole{Name: name, Description: &desc}
			if err := s.repo.CreateRole(ctx, role); err != nil {
				return nil, err
			}
			s.logger.Info().Str("role", name).Msg("created encounter role")
			return role, nil
		},
	)
}
