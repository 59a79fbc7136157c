package content

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openhie/xds-repository/internal/platform/db"
	"github.com/openhie/xds-repository/pkg/vocab"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) DocumentRepository {
	return &repoPG{pool: pool}
}

const docCols = `id, unique_id, patient_id, encounter_type_id, type_code, type_coding_scheme,
	format_code, format_coding_scheme, content_type, payload, created_at`

func (r *repoPG) Create(ctx context.Context, doc *Document) error {
	doc.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO xds_document (
			id, unique_id, patient_id, encounter_type_id, type_code, type_coding_scheme,
			format_code, format_coding_scheme, content_type, payload
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		doc.ID, doc.UniqueID, doc.PatientID, doc.EncounterTypeID, doc.TypeCode, doc.TypeScheme,
		doc.FormatCode, doc.FormatScheme, doc.ContentType, doc.Payload,
	)
	return db.WrapConflict(err)
}

func (r *repoPG) GetByUniqueID(ctx context.Context, uniqueID string) (*Document, error) {
	var d Document
	err := r.pool.QueryRow(ctx,
		`SELECT `+docCols+` FROM xds_document WHERE unique_id = $1 ORDER BY created_at DESC LIMIT 1`,
		uniqueID,
	).Scan(&d.ID, &d.UniqueID, &d.PatientID, &d.EncounterTypeID, &d.TypeCode, &d.TypeScheme,
		&d.FormatCode, &d.FormatScheme, &d.ContentType, &d.Payload, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, vocab.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}
