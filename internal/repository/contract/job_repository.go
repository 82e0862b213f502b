package contract

import (
	"context"

	"talentmatch-be/internal/entity"
	"talentmatch-be/internal/repository/specification"

	"github.com/google/uuid"
)

type JobRepository interface {
	Create(ctx context.Context, job *entity.JobPosting) error
	Update(ctx context.Context, job *entity.JobPosting) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.JobPosting, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.JobPosting, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// FindOneWithCompany preloads the owning company for detail views.
	FindOneWithCompany(ctx context.Context, id uuid.UUID) (*entity.JobPosting, error)
	// FindAllWithCompany preloads companies, used by match ranking where
	// company stage feeds the score.
	FindAllWithCompany(ctx context.Context, specs ...specification.Specification) ([]*entity.JobPosting, error)
}
