package provider

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

func (r *repoPG) Create(ctx context.Context, p *Provider) error {
	p.ID = uuid.New()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO provider (id, identifier, name) VALUES ($1, $2, $3)`,
		p.ID, p.Identifier, p.Name,
	)
	return db.WrapConflict(err)
}

func (r *repoPG) GetByIdentifier(ctx context.Context, identifier string) (*Provider, error) {
	var p Provider
	err := r.pool.QueryRow(ctx,
		`SELECT id, identifier, name, created_at FROM provider WHERE identifier = $1`,
		identifier,
	).Scan(&p.ID, &p.Identifier, &p.Name, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, vocab.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repoPG) ListAll(ctx context.Context) ([]*Provider, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, identifier, name, created_at FROM provider ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var providers []*Provider
	for rows.Next() {
		var p Provider
		if err := rows.Scan(&p.ID, &p.Identifier, &p.Name, &p.CreatedAt); err != nil {
			return nil, err
		}
		providers = append(providers, &p)
	}
	return providers, rows.Err()
}

func (r *repoPG) CreateRole(ctx context.Context, role *EncounterRole) error {
	role.ID = uuid.New()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO encounter_role (id, name, description) VALUES ($1, $2, $3)`,
		role.ID, role.Name, role.Description,
	)
	return db.WrapConflict(err)
}

func (r *repoPG) GetRoleByName(ctx context.Context, name string) (*EncounterRole, error) {
	var role EncounterRole
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description, created_at FROM encounter_role WHERE name = $1`,
		name,
	).Scan(&role.ID, &role.Name, &role.Description, &role.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, vocab.ErrNotFound
		}
		return nil, err
	}
	return &role, nil
}
