package assessment

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence contract for stored assessments.
type Repository interface {
	Create(ctx context.Context, a *Assessment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Assessment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPatientAccount(ctx context.Context, account string, limit, offset int) ([]*Assessment, int, error)
	Search(ctx context.Context, filters map[string]string, limit, offset int) ([]*Assessment, int, error)
}
