package contract

import (
	"context"
	"time"

	"github.com/google/uuid"

	"course-assist-be/internal/entity"
	"course-assist-be/internal/repository/specification"
)

type EscalatedQueryRepository interface {
	Create(ctx context.Context, query *entity.EscalatedQuery) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EscalatedQuery, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EscalatedQuery, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// MarkAnswered flips answered=false -> true in a single conditional
	// update. Returns false when the row was already answered (or missing),
	// which is how the single-transition guarantee is enforced under
	// concurrent admins.
	MarkAnswered(ctx context.Context, id uuid.UUID, answer string, answeredAt time.Time) (bool, error)
}
