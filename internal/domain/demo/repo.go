package demo

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the demo entity store. Every read and write is scoped to
// the owning account id; callers never address rows by id alone.
type Repository interface {
	// CreatePatient inserts the patient and bumps the owner's
	// demo_patients_created counter in one transaction. A second patient
	// for the same owner fails with ErrQuotaExceeded (unique constraint
	// on created_by closes the concurrent-create race).
	CreatePatient(ctx context.Context, p *Patient) error

	// GetPatientByOwner returns the account's patient with its tests,
	// or ErrNotFound when the account has none.
	GetPatientByOwner(ctx context.Context, accountID uuid.UUID) (*Patient, error)

	// GetPatientOwned returns the patient only when it is owned by
	// accountID; any other case is ErrNotFound.
	GetPatientOwned(ctx context.Context, patientID, accountID uuid.UUID) (*Patient, error)

	// CreateTests inserts the batch atomically and bumps the owner's
	// demo_tests_created counter. The patient row is locked and the
	// per-account test count re-checked inside the transaction; if the
	// batch would push the count past maxTests nothing is inserted and
	// ErrQuotaExceeded is returned.
	CreateTests(ctx context.Context, patientID, accountID uuid.UUID, specs []TestSpec, maxTests int) (int, error)

	// GetTestOwned returns the test with its parent patient, scoped to
	// the owning account; otherwise ErrNotFound.
	GetTestOwned(ctx context.Context, testID, accountID uuid.UUID) (*Test, error)

	// UpdateTest overwrites status and results of an owned test.
	UpdateTest(ctx context.Context, t *Test) error
}
