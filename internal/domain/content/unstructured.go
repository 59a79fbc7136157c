package content

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/openhie/xds-repository/internal/domain/encounter"
	"github.com/openhie/xds-repository/internal/domain/patient"
	"github.com/openhie/xds-repository/internal/domain/provider"
)

// UnstructuredHandler is the mandatory default content handler. It stores
// the document payload verbatim in the xds_document table, linked to the
// resolved patient and encounter type.
type UnstructuredHandler struct {
	repo   DocumentRepository
	logger zerolog.Logger
}

func NewUnstructuredHandler(repo DocumentRepository, logger zerolog.Logger) *UnstructuredHandler {
	return &UnstructuredHandler{repo: repo, logger: logger}
}

func (h *UnstructuredHandler) SaveContent(ctx context.Context, pat *patient.Patient, byRole provider.ProvidersByRole, encType *encounter.EncounterType, c Content) error {
	doc := &Document{
		UniqueID:        c.UniqueID,
		PatientID:       pat.ID,
		EncounterTypeID: encType.ID,
		TypeCode:        optional(c.TypeCode.Code),
		TypeScheme:      optional(c.TypeCode.Scheme),
		FormatCode:      optional(c.FormatCode.Code),
		FormatScheme:    optional(c.FormatCode.Scheme),
		ContentType:     optional(c.ContentType),
		Payload:         c.Payload,
	}

	if err := h.repo.Create(ctx, doc); err != nil {
		return fmt.Errorf("store unstructured document %s: %w", c.UniqueID, err)
	}

	h.logger.Info().
		Str("unique_id", c.UniqueID).
		Str("patient_id", pat.ID.String()).
		Int("roles", len(byRole)).
		Msg("stored document content")
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
