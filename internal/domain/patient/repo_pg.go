package patient

import (
	"context"
	"errors"
	"fmt"

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

const patientCols = `id, gender, birth_date, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	p.ID = uuid.New()
	if _, err := tx.Exec(ctx,
		`INSERT INTO patient (id, gender, birth_date) VALUES ($1, $2, $3)`,
		p.ID, p.Gender, p.BirthDate,
	); err != nil {
		return db.WrapConflict(err)
	}

	for i := range p.Identifiers {
		pi := &p.Identifiers[i]
		pi.ID = uuid.New()
		pi.PatientID = p.ID
		if _, err := tx.Exec(ctx,
			`INSERT INTO patient_identifier (id, patient_id, identifier_type_id, value, location)
			 VALUES ($1, $2, $3, $4, $5)`,
			pi.ID, pi.PatientID, pi.IdentifierTypeID, pi.Value, pi.Location,
		); err != nil {
			return db.WrapConflict(err)
		}
	}

	for i := range p.Names {
		n := &p.Names[i]
		n.ID = uuid.New()
		n.PatientID = p.ID
		if _, err := tx.Exec(ctx,
			`INSERT INTO person_name (id, patient_id, family_name, given_name, middle_name, suffix, prefix, degree)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			n.ID, n.PatientID, n.FamilyName, n.GivenName, n.MiddleName, n.Suffix, n.Prefix, n.Degree,
		); err != nil {
			return err
		}
	}

	for i := range p.Addresses {
		a := &p.Addresses[i]
		a.ID = uuid.New()
		a.PatientID = p.ID
		if _, err := tx.Exec(ctx,
			`INSERT INTO person_address (id, patient_id, address1, address2, city_village, state_province, postal_code, country)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			a.ID, a.PatientID, a.Address1, a.Address2, a.CityVillage, a.StateProvince, a.PostalCode, a.Country,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	var p Patient
	err := r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patient WHERE id = $1`, id,
	).Scan(&p.ID, &p.Gender, &p.BirthDate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, vocab.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repoPG) FindByIdentifier(ctx context.Context, value string, identifierTypeID uuid.UUID) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.gender, p.birth_date, p.created_at, p.updated_at
		FROM patient p
		JOIN patient_identifier pi ON pi.patient_id = p.id
		WHERE pi.value = $1 AND pi.identifier_type_id = $2
		ORDER BY p.created_at`,
		value, identifierTypeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var patients []*Patient
	for rows.Next() {
		var p Patient
		if err := rows.Scan(&p.ID, &p.Gender, &p.BirthDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		patients = append(patients, &p)
	}
	return patients, rows.Err()
}

func (r *repoPG) CreateIdentifierType(ctx context.Context, t *PatientIdentifierType) error {
	t.ID = uuid.New()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO patient_identifier_type (id, name, description) VALUES ($1, $2, $3)`,
		t.ID, t.Name, t.Description,
	)
	return db.WrapConflict(err)
}

func (r *repoPG) GetIdentifierTypeByName(ctx context.Context, name string) (*PatientIdentifierType, error) {
	var t PatientIdentifierType
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description, created_at FROM patient_identifier_type WHERE name = $1`,
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
