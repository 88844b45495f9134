package assessment

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/halcyonrcm/recovery/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG returns a PostgreSQL-backed Repository.
func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const assessCols = `id, patient_account, state, input, result,
	primary_path, overall_confidence, estimated_total_recovery,
	created_by, created_at, updated_at`

func (r *repoPG) scanAssessment(row pgx.Row) (*Assessment, error) {
	var a Assessment
	err := row.Scan(&a.ID, &a.PatientAccount, &a.State, &a.Input, &a.Result,
		&a.PrimaryPath, &a.OverallConfidence, &a.EstimatedTotalRecovery,
		&a.CreatedBy, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *repoPG) Create(ctx context.Context, a *Assessment) error {
	a.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO assessments (id, patient_account, state, input, result,
			primary_path, overall_confidence, estimated_total_recovery, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		a.ID, a.PatientAccount, a.State, a.Input, a.Result,
		a.PrimaryPath, a.OverallConfidence, a.EstimatedTotalRecovery, a.CreatedBy)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	return r.scanAssessment(r.conn(ctx).QueryRow(ctx,
		`SELECT `+assessCols+` FROM assessments WHERE id = $1`, id))
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM assessments WHERE id = $1`, id)
	return err
}

func (r *repoPG) ListByPatientAccount(ctx context.Context, account string, limit, offset int) ([]*Assessment, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM assessments WHERE patient_account = $1`, account).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+assessCols+` FROM assessments WHERE patient_account = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, account, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return r.collect(rows, total)
}

// assessmentSearchParams maps query filters to SQL predicates.
var assessmentSearchParams = map[string]string{
	"state":          "state = $%d",
	"primary_path":   "primary_path = $%d",
	"min_confidence": "overall_confidence >= $%d",
}

func (r *repoPG) Search(ctx context.Context, filters map[string]string, limit, offset int) ([]*Assessment, int, error) {
	var clauses []string
	var args []interface{}

	for _, key := range []string{"state", "primary_path", "min_confidence"} {
		v, ok := filters[key]
		if !ok || v == "" {
			continue
		}
		var arg interface{} = v
		if key == "min_confidence" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, 0, fmt.Errorf("invalid min_confidence: %s", v)
			}
			arg = n
		}
		args = append(args, arg)
		clauses = append(clauses, fmt.Sprintf(assessmentSearchParams[key], len(args)))
	}

	where := ""
	if len(clauses) > 0 {
		where = " WHERE " + strings.Join(clauses, " AND ")
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM assessments`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataArgs := append(args, limit, offset)
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+assessCols+` FROM assessments`+where+
			fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2),
		dataArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return r.collect(rows, total)
}

func (r *repoPG) collect(rows pgx.Rows, total int) ([]*Assessment, int, error) {
	var items []*Assessment
	for rows.Next() {
		a, err := r.scanAssessment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
