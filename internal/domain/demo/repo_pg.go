package demo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const patientCols = `id, name, gender, age_value, age_unit, phone, email, address,
	created_by, created_at`

const testCols = `id, patient_id, test_type, test_code, status, results,
	created_by, created_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.Gender, &p.AgeValue, &p.AgeUnit,
		&p.Phone, &p.Email, &p.Address, &p.CreatedBy, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &p, err
}

func scanTest(row pgx.Row) (*Test, error) {
	var t Test
	err := row.Scan(&t.ID, &t.PatientID, &t.TestType, &t.TestCode, &t.Status,
		&t.Results, &t.CreatedBy, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &t, err
}

func (r *repoPG) CreatePatient(ctx context.Context, p *Patient) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	p.ID = uuid.New()
	_, err = tx.Exec(ctx, `
		INSERT INTO demo_patient (id, name, gender, age_value, age_unit, phone, email, address, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		p.ID, p.Name, p.Gender, p.AgeValue, p.AgeUnit, p.Phone, p.Email, p.Address, p.CreatedBy)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// unique(created_by): the account already has a patient
			return ErrQuotaExceeded
		}
		return err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE account SET demo_patients_created = demo_patients_created + 1, updated_at = NOW()
		 WHERE id = $1`, p.CreatedBy); err != nil {
		return err
	}

	if err := tx.QueryRow(ctx,
		`SELECT created_at FROM demo_patient WHERE id = $1`, p.ID).Scan(&p.CreatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *repoPG) GetPatientByOwner(ctx context.Context, accountID uuid.UUID) (*Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM demo_patient WHERE created_by = $1`, accountID))
	if err != nil {
		return nil, err
	}
	if err := r.loadTests(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repoPG) GetPatientOwned(ctx context.Context, patientID, accountID uuid.UUID) (*Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM demo_patient WHERE id = $1 AND created_by = $2`,
		patientID, accountID))
	if err != nil {
		return nil, err
	}
	if err := r.loadTests(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repoPG) loadTests(ctx context.Context, p *Patient) error {
	rows, err := r.pool.Query(ctx,
		`SELECT `+testCols+` FROM demo_test WHERE patient_id = $1 ORDER BY created_at`, p.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	p.Tests = []*Test{}
	for rows.Next() {
		t, err := scanTest(rows)
		if err != nil {
			return err
		}
		p.Tests = append(p.Tests, t)
	}
	return rows.Err()
}

func (r *repoPG) CreateTests(ctx context.Context, patientID, accountID uuid.UUID, specs []TestSpec, maxTests int) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the patient row so concurrent batches for the same account
	// serialize on the quota re-check below.
	var ownedID uuid.UUID
	err = tx.QueryRow(ctx,
		`SELECT id FROM demo_patient WHERE id = $1 AND created_by = $2 FOR UPDATE`,
		patientID, accountID).Scan(&ownedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	var used int
	if err := tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM demo_test WHERE created_by = $1`, accountID).Scan(&used); err != nil {
		return 0, err
	}
	if used+len(specs) > maxTests {
		return 0, ErrQuotaExceeded
	}

	for _, spec := range specs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO demo_test (id, patient_id, test_type, test_code, status, created_by)
			VALUES ($1,$2,$3,$4,$5,$6)`,
			uuid.New(), patientID, spec.TestType, spec.TestCode, StatusPending, accountID); err != nil {
			return 0, err
		}
	}

	if _, err := tx.Exec(ctx,
		`UPDATE account SET demo_tests_created = demo_tests_created + $2, updated_at = NOW()
		 WHERE id = $1`, accountID, len(specs)); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return len(specs), nil
}

func (r *repoPG) GetTestOwned(ctx context.Context, testID, accountID uuid.UUID) (*Test, error) {
	t, err := scanTest(r.pool.QueryRow(ctx,
		`SELECT `+testCols+` FROM demo_test WHERE id = $1 AND created_by = $2`,
		testID, accountID))
	if err != nil {
		return nil, err
	}
	p, err := scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM demo_patient WHERE id = $1`, t.PatientID))
	if err != nil {
		return nil, err
	}
	t.Patient = p
	return t, nil
}

func (r *repoPG) UpdateTest(ctx context.Context, t *Test) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE demo_test SET status = $2, results = $3
		WHERE id = $1 AND created_by = $4`,
		t.ID, t.Status, t.Results, t.CreatedBy)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
