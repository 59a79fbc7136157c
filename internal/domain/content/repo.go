package content

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Document maps to the xds_document table.
type Document struct {
	ID              uuid.UUID `db:"id" json:"id"`
	UniqueID        string    `db:"unique_id" json:"unique_id"`
	PatientID       uuid.UUID `db:"patient_id" json:"patient_id"`
	EncounterTypeID uuid.UUID `db:"encounter_type_id" json:"encounter_type_id"`
	TypeCode        *string   `db:"type_code" json:"type_code,omitempty"`
	TypeScheme      *string   `db:"type_coding_scheme" json:"type_coding_scheme,omitempty"`
	FormatCode      *string   `db:"format_code" json:"format_code,omitempty"`
	FormatScheme    *string   `db:"format_coding_scheme" json:"format_coding_scheme,omitempty"`
	ContentType     *string   `db:"content_type" json:"content_type,omitempty"`
	Payload         string    `db:"payload" json:"payload"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type DocumentRepository interface {
	Create(ctx context.Context, doc *Document) error
	GetByUniqueID(ctx context.Context, uniqueID string) (*Document, error)
}
