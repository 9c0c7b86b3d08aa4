package demo

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/labflow/labflow/internal/platform/auth"
)

type Handler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHandler(svc *Service, logger zerolog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/demo")
	g.POST("/patient", h.CreatePatient)
	g.GET("/patient", h.GetPatient)
	g.POST("/tests", h.CreateTests)
	g.GET("/tests/:id", h.GetTest)
	g.PUT("/tests/:id/results", h.UpdateTestResult)
	g.GET("/usage", h.GetUsage)
	g.GET("/flow/:page", h.GetFlow)
}

// jsonError maps the store's error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is a store failure: logged, surfaced as a generic
// 500.
func (h *Handler) jsonError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, ErrValidation):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, ErrQuotaExceeded):
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	h.logger.Error().Err(err).Str("path", c.Request().URL.Path).Msg("demo store failure")
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

func (h *Handler) CreatePatient(c echo.Context) error {
	accountID := auth.AccountIDFromContext(c.Request().Context())

	var in CreatePatientInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	p, err := h.svc.CreatePatient(c.Request().Context(), accountID, in)
	if err != nil {
		return h.jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"patient": p})
}

func (h *Handler) GetPatient(c echo.Context) error {
	accountID := auth.AccountIDFromContext(c.Request().Context())

	p, err := h.svc.GetPatient(c.Request().Context(), accountID)
	if err != nil {
		return h.jsonError(c, err)
	}
	// p is nil when the account has no patient yet; the client renders
	// the "create patient" call to action off the null.
	return c.JSON(http.StatusOK, map[string]interface{}{"patient": p})
}

type createTestsRequest struct {
	PatientID uuid.UUID  `json:"patient_id"`
	Tests     []TestSpec `json:"tests"`
}

func (h *Handler) CreateTests(c echo.Context) error {
	accountID := auth.AccountIDFromContext(c.Request().Context())

	var req createTestsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.PatientID == uuid.Nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "patient_id is required"})
	}

	count, err := h.svc.CreateTests(c.Request().Context(), accountID, req.PatientID, req.Tests)
	if err != nil {
		return h.jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]int{"count": count})
}

func (h *Handler) GetTest(c echo.Context) error {
	accountID := auth.AccountIDFromContext(c.Request().Context())

	testID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "test not found"})
	}

	t, err := h.svc.GetTest(c.Request().Context(), accountID, testID)
	if err != nil {
		return h.jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"test": t})
}

type updateTestRequest struct {
	Results map[string]interface{} `json:"results,omitempty"`
	Status  TestStatus             `json:"status,omitempty"`
}

func (h *Handler) UpdateTestResult(c echo.Context) error {
	accountID := auth.AccountIDFromContext(c.Request().Context())

	testID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "test not found"})
	}

	var req updateTestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	t, err := h.svc.UpdateTestResult(c.Request().Context(), accountID, testID, req.Results, req.Status)
	if err != nil {
		return h.jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"test": t})
}

func (h *Handler) GetUsage(c echo.Context) error {
	accountID := auth.AccountIDFromContext(c.Request().Context())

	u, err := h.svc.Usage(c.Request().Context(), accountID)
	if err != nil {
		return h.jsonError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) GetFlow(c echo.Context) error {
	accountID := auth.AccountIDFromContext(c.Request().Context())

	page := Page(c.Param("page"))
	if !KnownPage(page) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown page"})
	}

	u, err := h.svc.Usage(c.Request().Context(), accountID)
	if err != nil {
		return h.jsonError(c, err)
	}

	step := NextStep(page, u)
	resp := map[string]interface{}{"step": step}
	if page == PageDashboard {
		resp["usage"] = u
	}
	return c.JSON(http.StatusOK, resp)
}
