package demo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/labflow/labflow/internal/platform/auth"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc, _ := newTestService()
	h := NewHandler(svc, zerolog.Nop())
	e := echo.New()
	return h, e
}

// authedContext builds an echo context carrying accountID the way the
// session middleware would.
func authedContext(e *echo.Echo, accountID uuid.UUID, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(req.Context(), auth.AccountIDKey, accountID)
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_CreatePatient(t *testing.T) {
	h, e := newTestHandler()
	c, rec := authedContext(e, uuid.New(), http.MethodPost, "/api/demo/patient", `{"name":"Sara Ali","gender":"female"}`)

	if err := h.CreatePatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if _, ok := resp["patient"]; !ok {
		t.Error("expected patient in response")
	}
}

func TestHandler_CreatePatient_MissingName(t *testing.T) {
	h, e := newTestHandler()
	c, rec := authedContext(e, uuid.New(), http.MethodPost, "/api/demo/patient", `{}`)

	if err := h.CreatePatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_CreatePatient_QuotaExceeded(t *testing.T) {
	h, e := newTestHandler()
	accountID := uuid.New()

	c, _ := authedContext(e, accountID, http.MethodPost, "/api/demo/patient", `{"name":"First"}`)
	if err := h.CreatePatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, rec := authedContext(e, accountID, http.MethodPost, "/api/demo/patient", `{"name":"Second"}`)
	if err := h.CreatePatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestHandler_GetPatient_NoneYet(t *testing.T) {
	h, e := newTestHandler()
	c, rec := authedContext(e, uuid.New(), http.MethodGet, "/api/demo/patient", "")

	if err := h.GetPatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"patient":null`) {
		t.Errorf("expected null patient, got %s", rec.Body.String())
	}
}

func TestHandler_CreateTests(t *testing.T) {
	h, e := newTestHandler()
	accountID := uuid.New()
	p, err := h.svc.CreatePatient(context.Background(), accountID, CreatePatientInput{Name: "Sara Ali"})
	if err != nil {
		t.Fatalf("seed patient: %v", err)
	}

	body := `{"patient_id":"` + p.ID.String() + `","tests":[{"test_type":"CBC"},{"test_type":"HbA1c"}]}`
	c, rec := authedContext(e, accountID, http.MethodPost, "/api/demo/tests", body)

	if err := h.CreateTests(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var resp map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["count"] != 2 {
		t.Errorf("expected count 2, got %d", resp["count"])
	}
}

func TestHandler_CreateTests_MissingPatientID(t *testing.T) {
	h, e := newTestHandler()
	c, rec := authedContext(e, uuid.New(), http.MethodPost, "/api/demo/tests", `{"tests":[{"test_type":"CBC"}]}`)

	if err := h.CreateTests(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_CreateTests_ForeignPatientIsNotFound(t *testing.T) {
	h, e := newTestHandler()
	owner := uuid.New()
	p, _ := h.svc.CreatePatient(context.Background(), owner, CreatePatientInput{Name: "Sara Ali"})

	body := `{"patient_id":"` + p.ID.String() + `","tests":[{"test_type":"CBC"}]}`
	c, rec := authedContext(e, uuid.New(), http.MethodPost, "/api/demo/tests", body)

	if err := h.CreateTests(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for a foreign patient, got %d", rec.Code)
	}
}

func TestHandler_GetTest_MalformedID(t *testing.T) {
	h, e := newTestHandler()
	c, rec := authedContext(e, uuid.New(), http.MethodGet, "/api/demo/tests/nope", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")

	if err := h.GetTest(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for malformed id, got %d", rec.Code)
	}
}

func TestHandler_UpdateTestResult(t *testing.T) {
	h, e := newTestHandler()
	accountID := uuid.New()
	p, _ := h.svc.CreatePatient(context.Background(), accountID, CreatePatientInput{Name: "Sara Ali"})
	if _, err := h.svc.CreateTests(context.Background(), accountID, p.ID, []TestSpec{{TestType: "CBC"}}); err != nil {
		t.Fatalf("seed test: %v", err)
	}
	pt, _ := h.svc.GetPatient(context.Background(), accountID)
	testID := pt.Tests[0].ID

	body := `{"results":{"wbc":6.1},"status":"Completed"}`
	c, rec := authedContext(e, accountID, http.MethodPut, "/api/demo/tests/"+testID.String()+"/results", body)
	c.SetParamNames("id")
	c.SetParamValues(testID.String())

	if err := h.UpdateTestResult(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"Completed"`) {
		t.Errorf("expected updated status in response, got %s", rec.Body.String())
	}
}

func TestHandler_UpdateTestResult_BadStatus(t *testing.T) {
	h, e := newTestHandler()
	accountID := uuid.New()
	p, _ := h.svc.CreatePatient(context.Background(), accountID, CreatePatientInput{Name: "Sara Ali"})
	h.svc.CreateTests(context.Background(), accountID, p.ID, []TestSpec{{TestType: "CBC"}})
	pt, _ := h.svc.GetPatient(context.Background(), accountID)
	testID := pt.Tests[0].ID

	c, rec := authedContext(e, accountID, http.MethodPut, "/api/demo/tests/"+testID.String()+"/results", `{"status":"Archived"}`)
	c.SetParamNames("id")
	c.SetParamValues(testID.String())

	if err := h.UpdateTestResult(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown status, got %d", rec.Code)
	}
}

func TestHandler_GetUsage(t *testing.T) {
	h, e := newTestHandler()
	c, rec := authedContext(e, uuid.New(), http.MethodGet, "/api/demo/usage", "")

	if err := h.GetUsage(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var u Usage
	if err := json.Unmarshal(rec.Body.Bytes(), &u); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !u.CanCreatePatient || u.TestsRemaining != 5 {
		t.Errorf("unexpected usage for fresh account: %+v", u)
	}
}

func TestHandler_GetFlow(t *testing.T) {
	h, e := newTestHandler()
	c, rec := authedContext(e, uuid.New(), http.MethodGet, "/api/demo/flow/select-tests", "")
	c.SetParamNames("page")
	c.SetParamValues("select-tests")

	if err := h.GetFlow(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Step Step `json:"step"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Step.Page != PageNewPatient || !resp.Step.Redirect {
		t.Errorf("expected redirect to new-patient, got %+v", resp.Step)
	}
}

func TestHandler_GetFlow_UnknownPage(t *testing.T) {
	h, e := newTestHandler()
	c, rec := authedContext(e, uuid.New(), http.MethodGet, "/api/demo/flow/settings", "")
	c.SetParamNames("page")
	c.SetParamValues("settings")

	if err := h.GetFlow(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown page, got %d", rec.Code)
	}
}
