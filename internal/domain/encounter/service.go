package encounter

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/openhie/xds-repository/internal/platform/xds"
	"github.com/openhie/xds-repository/pkg/vocab"
)

// ErrMissingClassCode is returned when a document carries no classCode
// classification.
var ErrMissingClassCode = errors.New("document metadata has no classCode classification")

const typeDescription = "Created by the XDS.b repository."

type Service struct {
	repo   Repository
	logger zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ResolveEncounterType finds or creates the encounter type keyed by the
// document's class code.
func (s *Service) ResolveEncounterType(ctx context.Context, eo *xds.ExtrinsicObject) (*EncounterType, error) {
	classCode, err := eo.Classification(xds.SchemeClassCode)
	if err != nil {
		if errors.Is(err, xds.ErrClassificationNotFound) {
			return nil, ErrMissingClassCode
		}
		return nil, err
	}

	name := classCode.NodeRepresentation
	return vocab.Resolve(ctx,
		func(ctx context.Context) (*EncounterType, error) {
			return s.repo.GetByName(ctx, name)
		},
		func(ctx context.Context) (*EncounterType, error) {
			desc := typeDescription
			t := &EncounterType{Name: name, Description: &desc}
			if err := s.repo.Create(ctx, t); err != nil {
				return nil, err
			}
			s.logger.Info().Str("class_code", name).Msg("created encounter type")
			return t, nil
		},
	)
}
