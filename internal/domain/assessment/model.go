package assessment

import (
	"time"

	"github.com/google/uuid"

	"github.com/halcyonrcm/recovery/internal/engine"
)

// Assessment maps to the assessments table. The full evaluation input and
// result are stored as JSONB; the ranking columns are denormalized for
// reporting queries.
type Assessment struct {
	ID                     uuid.UUID             `db:"id" json:"id"`
	PatientAccount         string                `db:"patient_account" json:"patient_account"`
	State                  string                `db:"state" json:"state"`
	Input                  engine.RecoveryInput  `db:"input" json:"input"`
	Result                 engine.RecoveryResult `db:"result" json:"result"`
	PrimaryPath            *string               `db:"primary_path" json:"primary_path,omitempty"`
	OverallConfidence      int                   `db:"overall_confidence" json:"overall_confidence"`
	EstimatedTotalRecovery float64               `db:"estimated_total_recovery" json:"estimated_total_recovery"`
	CreatedBy              *string               `db:"created_by" json:"created_by,omitempty"`
	CreatedAt              time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt              time.Time             `db:"updated_at" json:"updated_at"`
}
