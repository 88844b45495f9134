package reporting

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"github.com/halcyonrcm/recovery/internal/platform/auth"
)

// MeasureDefinition defines a reporting measure with its SQL query.
type MeasureDefinition struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	SQL         string   `json:"sql"`
	Parameters  []string `json:"parameters"`
}

// MeasureReport holds the results of evaluating a measure.
type MeasureReport struct {
	MeasureID   string                   `json:"measure_id"`
	MeasureName string                   `json:"measure_name"`
	GeneratedAt time.Time                `json:"generated_at"`
	Results     []map[string]interface{} `json:"results"`
	Parameters  map[string]string        `json:"parameters,omitempty"`
}

// PredefinedMeasures is the list of available reporting measures.
var PredefinedMeasures = []MeasureDefinition{
	{
		ID:          "assessment-count",
		Name:        "Assessment Count",
		Description: "Total number of recovery assessments, split by whether a viable pathway was found",
		SQL:         `SELECT COUNT(*) AS total, COALESCE(SUM(CASE WHEN primary_path IS NOT NULL THEN 1 ELSE 0 END), 0) AS with_pathway FROM assessments`,
		Parameters:  []string{},
	},
	{
		ID:          "assessments-by-primary-path",
		Name:        "Assessments by Primary Pathway",
		Description: "Number of assessments grouped by the top-ranked recovery pathway",
		SQL:         `SELECT COALESCE(primary_path, 'none') AS primary_path, COUNT(*) AS total FROM assessments GROUP BY primary_path ORDER BY total DESC`,
		Parameters:  []string{},
	},
	{
		ID:          "projected-recovery-by-state",
		Name:        "Projected Recovery by State",
		Description: "Sum of estimated recoverable charges grouped by patient state",
		SQL:         `SELECT state, COUNT(*) AS assessments, COALESCE(SUM(estimated_total_recovery), 0) AS projected_recovery FROM assessments GROUP BY state ORDER BY projected_recovery DESC`,
		Parameters:  []string{},
	},
	{
		ID:          "confidence-distribution",
		Name:        "Confidence Distribution",
		Description: "Assessment counts bucketed by overall confidence score",
		SQL:         `SELECT CASE WHEN overall_confidence >= 80 THEN 'high' WHEN overall_confidence >= 50 THEN 'medium' ELSE 'low' END AS confidence_band, COUNT(*) AS total FROM assessments GROUP BY 1 ORDER BY total DESC`,
		Parameters:  []string{},
	},
}

// Handler provides HTTP handlers for the reporting API.
type Handler struct {
	pool *pgxpool.Pool
}

// NewHandler creates a new reporting handler.
func NewHandler(pool *pgxpool.Pool) *Handler {
	return &Handler{pool: pool}
}

// RegisterRoutes registers the reporting API routes.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	reportGroup := api.Group("/reports", auth.RequireRole("admin", "revenue_cycle"))
	reportGroup.GET("/measures", h.ListMeasures)
	reportGroup.GET("/measures/:id/evaluate", h.EvaluateMeasure)
}

// ListMeasures returns all available measure definitions.
func (h *Handler) ListMeasures(c echo.Context) error {
	return c.JSON(http.StatusOK, PredefinedMeasures)
}

// EvaluateMeasure executes a measure's SQL and returns the results.
func (h *Handler) EvaluateMeasure(c echo.Context) error {
	measureID := c.Param("id")

	measure := FindMeasure(measureID)
	if measure == nil {
		return echo.NewHTTPError(http.StatusNotFound, "measure not found")
	}

	// Collect parameters from query string
	params := map[string]string{}
	for _, p := range measure.Parameters {
		if v := c.QueryParam(p); v != "" {
			params[p] = v
		}
	}

	results, err := h.executeSQL(c.Request().Context(), measure.SQL)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("query failed: %v", err))
	}

	report := MeasureReport{
		MeasureID:   measure.ID,
		MeasureName: measure.Name,
		GeneratedAt: time.Now(),
		Results:     results,
		Parameters:  params,
	}

	return c.JSON(http.StatusOK, report)
}

// executeSQL runs a SQL query and returns results as a slice of maps.
func (h *Handler) executeSQL(ctx context.Context, sql string) ([]map[string]interface{}, error) {
	rows, err := h.pool.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fieldDescs := rows.FieldDescriptions()
	var results []map[string]interface{}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}

		row := make(map[string]interface{}, len(fieldDescs))
		for i, fd := range fieldDescs {
			row[string(fd.Name)] = values[i]
		}
		results = append(results, row)
	}

	if results == nil {
		results = []map[string]interface{}{}
	}

	return results, nil
}

// FindMeasure looks up a measure by ID.
func FindMeasure(id string) *MeasureDefinition {
	for i := range PredefinedMeasures {
		if PredefinedMeasures[i].ID == id {
			return &PredefinedMeasures[i]
		}
	}
	return nil
}
