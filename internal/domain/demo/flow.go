package demo

import "github.com/google/uuid"

// Page names the steps of the demo walkthrough.
type Page string

const (
	PageDashboard   Page = "dashboard"
	PageNewPatient  Page = "new-patient"
	PagePatient     Page = "patient"
	PageSelectTests Page = "select-tests"
	PageReports     Page = "reports"
)

// KnownPage reports whether p is a routable demo page.
func KnownPage(p Page) bool {
	switch p {
	case PageDashboard, PageNewPatient, PagePatient, PageSelectTests, PageReports:
		return true
	}
	return false
}

// Step is the flow controller's decision for a page entry: where the
// client should actually be, and whether that differs from where it
// asked to go.
type Step struct {
	Page      Page       `json:"page"`
	PatientID *uuid.UUID `json:"patient_id,omitempty"`
	Redirect  bool       `json:"redirect"`
}

// NextStep evaluates the demo redirect rules for entering page given the
// account's usage snapshot. It is a pure function of its inputs; the
// unauthenticated case never reaches it (the session middleware answers
// 401 first).
//
// Rules, in order:
//   - new-patient while the patient slot is used: go to the existing
//     patient (there can only ever be one).
//   - select-tests with no patient: go create one first; with no test
//     slots left: back to the patient page.
//   - reports (and the patient page itself) with no patient: go create
//     one first.
//   - otherwise: stay.
func NextStep(page Page, u *Usage) Step {
	stay := Step{Page: page, PatientID: u.PatientID}

	switch page {
	case PageNewPatient:
		if !u.CanCreatePatient {
			return Step{Page: PagePatient, PatientID: u.PatientID, Redirect: true}
		}
	case PageSelectTests:
		if u.PatientsUsed == 0 {
			return Step{Page: PageNewPatient, Redirect: true}
		}
		if u.TestsRemaining == 0 {
			return Step{Page: PagePatient, PatientID: u.PatientID, Redirect: true}
		}
	case PageReports, PagePatient:
		if u.PatientsUsed == 0 {
			return Step{Page: PageNewPatient, Redirect: true}
		}
	}

	return stay
}
