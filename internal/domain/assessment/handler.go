package assessment

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/halcyonrcm/recovery/internal/engine"
	"github.com/halcyonrcm/recovery/internal/platform/auth"
	"github.com/halcyonrcm/recovery/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	// Read endpoints
	readGroup := api.Group("", auth.RequireRole("admin", "revenue_cycle", "eligibility_specialist"))
	readGroup.GET("/assessments", h.ListAssessments)
	readGroup.GET("/assessments/:id", h.GetAssessment)

	// Write endpoints
	writeGroup := api.Group("", auth.RequireRole("admin", "revenue_cycle"))
	writeGroup.POST("/assessments", h.CreateAssessment)
	writeGroup.DELETE("/assessments/:id", h.DeleteAssessment)

	// Stateless evaluation endpoints
	evalGroup := api.Group("", auth.RequireRole("admin", "revenue_cycle", "eligibility_specialist"))
	evalGroup.POST("/evaluate", h.Evaluate)
	evalGroup.POST("/evaluate/medicaid", h.EvaluateMedicaid)
	evalGroup.POST("/evaluate/magi", h.EvaluateMAGI)
	evalGroup.POST("/evaluate/presumptive", h.EvaluatePresumptive)
	evalGroup.POST("/evaluate/retroactive", h.EvaluateRetroactive)
	evalGroup.POST("/evaluate/charity", h.EvaluateCharityCare)
	evalGroup.POST("/evaluate/denial", h.EvaluateDenial)
	evalGroup.POST("/evaluate/dual", h.EvaluateDualEligible)
	evalGroup.POST("/evaluate/dsh-audit", h.EvaluateDSHAudit)
}

type createAssessmentRequest struct {
	PatientAccount string               `json:"patient_account"`
	Input          engine.RecoveryInput `json:"input"`
}

func (h *Handler) CreateAssessment(c echo.Context) error {
	var req createAssessmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	createdBy := auth.UserIDFromContext(c.Request().Context())
	a, err := h.svc.CreateAssessment(c.Request().Context(), req.PatientAccount, req.Input, createdBy)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) GetAssessment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	a, err := h.svc.GetAssessment(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteAssessment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteAssessment(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListAssessments(c echo.Context) error {
	pg := pagination.FromContext(c)
	ctx := c.Request().Context()

	if account := c.QueryParam("patient_account"); account != "" {
		items, total, err := h.svc.ListAssessmentsByPatient(ctx, account, pg.Limit, pg.Offset)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
	}

	filters := map[string]string{}
	for _, key := range []string{"state", "primary_path", "min_confidence"} {
		if v := c.QueryParam(key); v != "" {
			filters[key] = v
		}
	}
	items, total, err := h.svc.SearchAssessments(ctx, filters, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

// -- Evaluation Handlers --

func (h *Handler) Evaluate(c echo.Context) error {
	var in engine.RecoveryInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.svc.Evaluate(in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) EvaluateMedicaid(c echo.Context) error {
	var in engine.RecoveryInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.svc.EvaluateMedicaid(in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) EvaluateMAGI(c echo.Context) error {
	var in engine.MAGIInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.svc.CalculateMAGI(in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) EvaluatePresumptive(c echo.Context) error {
	var in engine.RecoveryInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.svc.EvaluatePresumptive(in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) EvaluateRetroactive(c echo.Context) error {
	var in engine.RecoveryInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.svc.EvaluateRetroactive(in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) EvaluateCharityCare(c echo.Context) error {
	var in engine.RecoveryInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.svc.EvaluateCharityCare(in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) EvaluateDenial(c echo.Context) error {
	var in engine.RecoveryInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.svc.EvaluateDenial(in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) EvaluateDualEligible(c echo.Context) error {
	var in engine.RecoveryInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.svc.EvaluateDualEligible(in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, res)
}

type dshAuditRequest struct {
	DSHAudit   engine.DSHAuditInput `json:"dsh_audit"`
	FiscalYear int                  `json:"fiscal_year"`
}

func (h *Handler) EvaluateDSHAudit(c echo.Context) error {
	var req dshAuditRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.svc.EvaluateDSHAudit(req.DSHAudit, req.FiscalYear)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, res)
}
