package middleware

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPGAuditRecorder returns an AuditRecorder that persists entries to the
// access_audit table. Failures are returned to the middleware, which logs
// them without failing the request.
func NewPGAuditRecorder(pool *pgxpool.Pool) AuditRecorder {
	return AuditRecorderFunc(func(e AuditEntry) error {
		var assessmentID interface{}
		if e.AssessmentID != "" {
			assessmentID = e.AssessmentID
		}
		_, err := pool.Exec(context.Background(), `
			INSERT INTO access_audit (user_id, user_roles, resource_type, assessment_id,
				action, ip_address, user_agent, path, method, request_id, status_code, occurred_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
			e.UserID, e.UserRoles, e.ResourceType, assessmentID,
			e.Action, e.IPAddress, e.UserAgent, e.Path, e.Method, e.RequestID, e.StatusCode, e.Timestamp)
		return err
	})
}
