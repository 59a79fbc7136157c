package patient

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/openhie/xds-repository/internal/platform/hl7"
	"github.com/openhie/xds-repository/internal/platform/xds"
	"github.com/openhie/xds-repository/pkg/vocab"
)

var (
	// ErrMissingPatientIdentifier is returned when a document carries no
	// patientId external identifier.
	ErrMissingPatientIdentifier = errors.New("document metadata has no patient identifier")

	// ErrAmbiguousPatientIdentifier is returned when more than one patient
	// matches an identifier under its identifier type. The resolver never
	// silently picks one.
	ErrAmbiguousPatientIdentifier = errors.New("multiple patients found for identifier")
)

// defaultLocation seeds the location of the identifier attached to a newly
// created patient.
const defaultLocation = "Unknown Location"

type Service struct {
	repo   Repository
	logger zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ResolvePatient finds the canonical patient a document's metadata refers
// to, creating the patient and the assigning authority's identifier-type
// vocabulary entry on first sight.
func (s *Service) ResolvePatient(ctx context.Context, eo *xds.ExtrinsicObject) (*Patient, error) {
	raw, ok := eo.ExternalIdentifierValue(xds.SchemePatientID)
	if !ok || raw == "" {
		return nil, ErrMissingPatientIdentifier
	}

	cx, err := hl7.ParseCX(raw)
	if err != nil {
		return nil, err
	}

	idType, err := s.resolveIdentifierType(ctx, cx.AssigningAuthority)
	if err != nil {
		return nil, err
	}

	matches, err := s.repo.FindByIdentifier(ctx, cx.ID, idType.ID)
	if err != nil {
		return nil, err
	}

	switch len(matches) {
	case 0:
		return s.createPatient(ctx, eo, cx.ID, idType)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %s with id type %s",
			ErrAmbiguousPatientIdentifier, cx.ID, idType.Name)
	}
}

// resolveIdentifierType finds or creates the identifier-type vocabulary
// entry named after the assigning authority.
func (s *Service) resolveIdentifierType(ctx context.Context, authority string) (*PatientIdentifierType, error) {
	return vocab.Resolve(ctx,
		func(ctx context.Context) (*PatientIdentifierType, error) {
			return s.repo.GetIdentifierTypeByName(ctx, authority)
		},
		func(ctx context.Context) (*PatientIdentifierType, error) {
			desc := fmt.Sprintf("ID type for assigning authority: '%s'.", authority)
			t := &PatientIdentifierType{Name: authority, Description: &desc}
			if err := s.repo.CreateIdentifierType(ctx, t); err != nil {
				return nil, err
			}
			s.logger.Info().Str("authority", authority).Msg("created patient identifier type")
			return t, nil
		},
	)
}

// createPatient builds a patient from the sourcePatientInfo slot and
// persists it with its seeded identifier.
func (s *Service) createPatient(ctx context.Context, eo *xds.ExtrinsicObject, id string, idType *PatientIdentifierType) (*Patient, error) {
	loc := defaultLocation
	p := &Patient{
		Identifiers: []PatientIdentifier{{
			IdentifierTypeID: idType.ID,
			Value:            id,
			Location:         &loc,
		}},
	}

	if values := eo.SlotMap().Values(xds.SlotSourcePatientInfo); len(values) > 0 {
		info, err := hl7.ParseSourcePatientInfo(values)
		if err != nil {
			return nil, err
		}
		for _, tag := range info.UnknownTags {
			s.logger.Warn().Str("value", tag).Msg("unknown value in sourcePatientInfo slot")
		}
		applyDemographics(p, info)
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("patient_id", p.ID.String()).
		Str("identifier", id).
		Str("id_type", idType.Name).
		Msg("created patient")
	return p, nil
}

func applyDemographics(p *Patient, info *hl7.SourcePatientInfo) {
	if info.Gender != "" {
		gender := info.Gender
		p.Gender = &gender
	}
	p.BirthDate = info.BirthDate

	if info.Name != nil {
		p.Names = append(p.Names, PersonName{
			FamilyName: optional(info.Name.FamilyName),
			GivenName:  optional(info.Name.GivenName),
			MiddleName: optional(info.Name.MiddleName),
			Suffix:     optional(info.Name.Suffix),
			Prefix:     optional(info.Name.Prefix),
			Degree:     optional(info.Name.Degree),
		})
	}

	if info.Address != nil {
		p.Addresses = append(p.Addresses, PersonAddress{
			Address1:      optional(info.Address.Address1),
			Address2:      optional(info.Address.Address2),
			CityVillage:   optional(info.Address.CityVillage),
			StateProvince: optional(info.Address.StateProvince),
			PostalCode:    optional(info.Address.PostalCode),
			Country:       optional(info.Address.Country),
		})
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
