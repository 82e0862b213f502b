package contract

import (
	"context"

	"talentmatch-be/internal/entity"
	"talentmatch-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredJobEmbedding wraps JobEmbedding with its similarity score
type ScoredJobEmbedding struct {
	Embedding  *entity.JobEmbedding
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type JobEmbeddingRepository interface {
	Upsert(ctx context.Context, embedding *entity.JobEmbedding) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByJobId(ctx context.Context, jobId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.JobEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilar ranks open jobs by cosine distance against the query vector.
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*ScoredJobEmbedding, error)
}
