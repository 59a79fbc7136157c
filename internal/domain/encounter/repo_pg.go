package encounter

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

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) Create(ctx context.Context, t *EncounterType) error {
	t.ID = uuid.New()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO encounter_type (id, name, description) VALUES ($1, $2, $3)`,
		t.ID, t.Name, t.Description,
	)
	return db.WrapConflict(err)
}

func (r *repoPG) GetByName(ctx context.Context, name string) (*EncounterType, error) {
	var t EncounterType
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description, created_at FROM encounter_type WHERE name = $1`,
		name,
	).Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, vocab.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}
