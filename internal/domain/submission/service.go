package submission

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/openhie/xds-repository/internal/domain/content"
	"github.com/openhie/xds-repository/internal/domain/encounter"
	"github.com/openhie/xds-repository/internal/domain/patient"
	"github.com/openhie/xds-repository/internal/domain/provider"
	"github.com/openhie/xds-repository/internal/platform/xds"
)

var (
	// ErrMissingDocumentContent is returned when a metadata entry has no
	// matching document in the submission.
	ErrMissingDocumentContent = errors.New("no document content for metadata entry")

	// ErrMissingUniqueID is returned when a stored document's metadata
	// carries no uniqueId external identifier.
	ErrMissingUniqueID = errors.New("document metadata has no uniqueId external identifier")
)

// Service is the submission orchestrator: it sequences metadata extraction,
// entity resolution, and content dispatch over every document of a
// submission and forwards the metadata set to the registry.
type Service struct {
	patients   *patient.Service
	providers  *provider.Service
	encounters *encounter.Service
	handlers   *content.HandlerService
	registry   RegistryClient
	logger     zerolog.Logger
}

func NewService(
	patients *patient.Service,
	providers *provider.Service,
	encounters *encounter.Service,
	handlers *content.HandlerService,
	registry RegistryClient,
	logger zerolog.Logger,
) *Service {
	return &Service{
		patients:   patients,
		providers:  providers,
		encounters: encounters,
		handlers:   handlers,
		registry:   registry,
		logger:     logger,
	}
}

// ProvideAndRegister processes one Provide and Register Document Set
// transaction. Documents are handled strictly sequentially so that later
// documents observe entities created by earlier ones. Any failure aborts
// the remaining documents and yields a single aggregate failure response;
// the caller always receives a structured response.
//
// Entities and documents persisted before a failure are not rolled back.
// There is no compensating transaction; the partial-failure window is
// logged rather than hidden.
func (s *Service) ProvideAndRegister(ctx context.Context, req *ProvideAndRegisterRequest) *xds.RegistryResponse {
	s.logger.Info().
		Int("documents", len(req.Documents)).
		Int("extrinsic_objects", len(req.Metadata.ExtrinsicObjects)).
		Msg("start provide and register document set")

	contents := req.contentByID()

	var storedIDs []string
	for i := range req.Metadata.ExtrinsicObjects {
		eo := &req.Metadata.ExtrinsicObjects[i]
		uniqueID, err := s.storeDocument(ctx, eo, contents[eo.ID])
		if err != nil {
			s.logger.Error().Err(err).
				Str("entry", eo.ID).
				Strs("stored", storedIDs).
				Msg("submission failed; entities and documents stored for earlier entries are not rolled back")
			return xds.FailureResponse(err)
		}
		storedIDs = append(storedIDs, uniqueID)
	}

	verdict, err := s.registry.Submit(ctx, &req.Metadata)
	if err != nil {
		s.logger.Error().Err(err).
			Strs("stored", storedIDs).
			Msg("registry submission failed; stored documents are not rolled back")
		return xds.FailureResponse(err)
	}

	s.logger.Info().Strs("stored", storedIDs).Str("status", verdict.Status).
		Msg("finished provide and register document set")
	return verdict
}

// storeDocument resolves one document's entities, dispatches its content,
// and returns the document's unique identifier.
func (s *Service) storeDocument(ctx context.Context, eo *xds.ExtrinsicObject, raw []byte) (string, error) {
	if raw == nil {
		return "", fmt.Errorf("%w: %s", ErrMissingDocumentContent, eo.ID)
	}

	uniqueID, ok := eo.ExternalIdentifierValue(xds.SchemeUniqueID)
	if !ok || uniqueID == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingUniqueID, eo.ID)
	}

	typeCode := codedValue(eo, xds.SchemeTypeCode)
	formatCode := codedValue(eo, xds.SchemeFormatCode)

	pat, err := s.patients.ResolvePatient(ctx, eo)
	if err != nil {
		return "", err
	}
	byRole, err := s.providers.ResolveProvidersByRole(ctx, eo)
	if err != nil {
		return "", err
	}
	encType, err := s.encounters.ResolveEncounterType(ctx, eo)
	if err != nil {
		return "", err
	}

	c := content.Content{
		UniqueID:    uniqueID,
		Payload:     string(raw),
		TypeCode:    typeCode,
		FormatCode:  formatCode,
		ContentType: eo.MimeType,
	}

	// Always send to the default unstructured handler; a discrete handler
	// registered for the codes is invoked additionally.
	if err := s.handlers.DefaultHandler(typeCode, formatCode).SaveContent(ctx, pat, byRole, encType, c); err != nil {
		return "", err
	}
	if discrete := s.handlers.DiscreteHandler(typeCode, formatCode); discrete != nil {
		if err := discrete.SaveContent(ctx, pat, byRole, encType, c); err != nil {
			return "", err
		}
	}

	return uniqueID, nil
}

// codedValue reads the first classification of a scheme as a coded value;
// the codingScheme slot supplies the scheme component.
func codedValue(eo *xds.ExtrinsicObject, scheme string) content.CodedValue {
	c, err := eo.Classification(scheme)
	if err != nil {
		return content.CodedValue{}
	}
	cv := content.CodedValue{Code: c.NodeRepresentation}
	for _, slot := range c.Slots {
		if slot.Name == xds.SlotCodingScheme && len(slot.Values) > 0 {
			cv.Scheme = slot.Values[0]
			break
		}
	}
	return cv
}
