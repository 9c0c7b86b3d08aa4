package demo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo   Repository
	limits Limits
}

func NewService(repo Repository, limits Limits) *Service {
	return &Service{repo: repo, limits: limits}
}

// Usage computes the account's quota snapshot from live rows. It is a
// pure read: an account with no patient degrades to zero usage rather
// than an error.
func (s *Service) Usage(ctx context.Context, accountID uuid.UUID) (*Usage, error) {
	u := &Usage{
		PatientsMax: s.limits.MaxPatients,
		TestsMax:    s.limits.MaxTests,
	}

	p, err := s.repo.GetPatientByOwner(ctx, accountID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if p != nil {
		u.PatientsUsed = 1
		u.TestsUsed = len(p.Tests)
		id := p.ID
		u.PatientID = &id
	}

	u.CanCreatePatient = u.PatientsUsed < s.limits.MaxPatients
	u.CanCreateTest = u.TestsUsed < s.limits.MaxTests
	u.TestsRemaining = s.limits.MaxTests - u.TestsUsed
	return u, nil
}

// CreatePatientInput carries the "new patient" form fields.
type CreatePatientInput struct {
	Name     string   `json:"name"`
	Gender   *string  `json:"gender,omitempty"`
	AgeValue *float64 `json:"age_value,omitempty"`
	AgeUnit  *string  `json:"age_unit,omitempty"`
	Phone    *string  `json:"phone,omitempty"`
	Email    *string  `json:"email,omitempty"`
	Address  *string  `json:"address,omitempty"`
}

// CreatePatient creates the account's single demo patient. The quota
// check here is advisory; the unique constraint in the store is what
// actually closes the two-tabs race.
func (s *Service) CreatePatient(ctx context.Context, accountID uuid.UUID, in CreatePatientInput) (*Patient, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	u, err := s.Usage(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !u.CanCreatePatient {
		return nil, fmt.Errorf("%w: you can only create %d patient(s)", ErrQuotaExceeded, s.limits.MaxPatients)
	}

	p := &Patient{
		Name:      in.Name,
		Gender:    in.Gender,
		AgeValue:  in.AgeValue,
		AgeUnit:   in.AgeUnit,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		CreatedBy: accountID,
	}
	if err := s.repo.CreatePatient(ctx, p); err != nil {
		if errors.Is(err, ErrQuotaExceeded) {
			return nil, fmt.Errorf("%w: you can only create %d patient(s)", ErrQuotaExceeded, s.limits.MaxPatients)
		}
		return nil, err
	}
	p.Tests = []*Test{}
	return p, nil
}

// GetPatient returns the account's patient with its tests, or (nil, nil)
// when the account has not created one yet.
func (s *Service) GetPatient(ctx context.Context, accountID uuid.UUID) (*Patient, error) {
	p, err := s.repo.GetPatientByOwner(ctx, accountID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return p, err
}

// CreateTests adds a batch of tests to the account's patient. The batch
// is all-or-nothing: the store re-checks the cap under a row lock, so a
// batch that would exceed the remaining slots creates zero rows.
func (s *Service) CreateTests(ctx context.Context, accountID, patientID uuid.UUID, specs []TestSpec) (int, error) {
	if len(specs) == 0 {
		return 0, fmt.Errorf("%w: tests array is required", ErrValidation)
	}
	for i, spec := range specs {
		if spec.TestType == "" {
			return 0, fmt.Errorf("%w: tests[%d].test_type is required", ErrValidation, i)
		}
	}

	u, err := s.Usage(ctx, accountID)
	if err != nil {
		return 0, err
	}
	if !u.CanCreateTest {
		return 0, fmt.Errorf("%w: you can only create %d tests", ErrQuotaExceeded, s.limits.MaxTests)
	}
	if len(specs) > u.TestsRemaining {
		return 0, fmt.Errorf("%w: you can only add %d more test(s)", ErrQuotaExceeded, u.TestsRemaining)
	}

	count, err := s.repo.CreateTests(ctx, patientID, accountID, specs, s.limits.MaxTests)
	if errors.Is(err, ErrQuotaExceeded) {
		return 0, fmt.Errorf("%w: you can only create %d tests", ErrQuotaExceeded, s.limits.MaxTests)
	}
	return count, err
}

// GetTest returns an owned test with its parent patient.
func (s *Service) GetTest(ctx context.Context, accountID, testID uuid.UUID) (*Test, error) {
	return s.repo.GetTestOwned(ctx, testID, accountID)
}

// UpdateTestResult overwrites a test's results and/or status. A nil
// results payload and an empty status each leave the current value
// unchanged, so a no-op update is permitted and harmless.
func (s *Service) UpdateTestResult(ctx context.Context, accountID, testID uuid.UUID, results map[string]interface{}, status TestStatus) (*Test, error) {
	if status != "" && !ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	t, err := s.repo.GetTestOwned(ctx, testID, accountID)
	if err != nil {
		return nil, err
	}

	if results != nil {
		t.Results = results
	}
	if status != "" {
		t.Status = status
	}

	if err := s.repo.UpdateTest(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
