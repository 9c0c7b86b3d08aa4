package demo

import (
	"time"

	"github.com/google/uuid"
)

// TestStatus enumerates the lifecycle of a demo lab test.
type TestStatus string

const (
	StatusPending    TestStatus = "Pending"
	StatusInProgress TestStatus = "InProgress"
	StatusCompleted  TestStatus = "Completed"
	StatusCancelled  TestStatus = "Cancelled"
)

// ValidStatus reports whether s is one of the known test statuses.
func ValidStatus(s TestStatus) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Patient maps to the demo_patient table. Each account owns at most one;
// the row is immutable after creation.
type Patient struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Gender    *string   `db:"gender" json:"gender,omitempty"`
	AgeValue  *float64  `db:"age_value" json:"age_value,omitempty"`
	AgeUnit   *string   `db:"age_unit" json:"age_unit,omitempty"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	Email     *string   `db:"email" json:"email,omitempty"`
	Address   *string   `db:"address" json:"address,omitempty"`
	CreatedBy uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	Tests []*Test `db:"-" json:"tests"`
}

// Test maps to the demo_test table. Results stay null until a result is
// entered; status and results are the only mutable fields.
type Test struct {
	ID        uuid.UUID              `db:"id" json:"id"`
	PatientID uuid.UUID              `db:"patient_id" json:"patient_id"`
	TestType  string                 `db:"test_type" json:"test_type"`
	TestCode  *string                `db:"test_code" json:"test_code,omitempty"`
	Status    TestStatus             `db:"status" json:"status"`
	Results   map[string]interface{} `db:"results" json:"results,omitempty"`
	CreatedBy uuid.UUID              `db:"created_by" json:"created_by"`
	CreatedAt time.Time              `db:"created_at" json:"created_at"`

	Patient *Patient `db:"-" json:"patient,omitempty"`
}

// TestSpec is one entry of a batched "select tests" request.
type TestSpec struct {
	TestType string  `json:"test_type"`
	TestCode *string `json:"test_code,omitempty"`
}

// Usage is the derived per-account quota snapshot. It is computed from
// live rows on every read and never persisted.
type Usage struct {
	CanCreatePatient bool       `json:"can_create_patient"`
	CanCreateTest    bool       `json:"can_create_test"`
	PatientsUsed     int        `json:"patients_used"`
	PatientsMax      int        `json:"patients_max"`
	TestsUsed        int        `json:"tests_used"`
	TestsMax         int        `json:"tests_max"`
	TestsRemaining   int        `json:"tests_remaining"`
	PatientID        *uuid.UUID `json:"patient_id"`
}

// Limits holds the per-account demo caps.
type Limits struct {
	MaxPatients int
	MaxTests    int
}

// DefaultLimits returns the product defaults: one patient, five tests.
func DefaultLimits() Limits {
	return Limits{MaxPatients: 1, MaxTests: 5}
}
