package implementation

import (
	"context"
	"errors"

	"talentmatch-be/internal/entity"
	"talentmatch-be/internal/mapper"
	"talentmatch-be/internal/model"
	"talentmatch-be/internal/repository/contract"
	"talentmatch-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JobEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.JobMapper
}

func NewJobEmbeddingRepository(db *gorm.DB) contract.JobEmbeddingRepository {
	return &JobEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewJobMapper(),
	}
}

func (r *JobEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Upsert keeps one embedding row per job, replacing the vector when the
// posting is re-embedded.
func (r *JobEmbeddingRepositoryImpl) Upsert(ctx context.Context, embedding *entity.JobEmbedding) error {
	m := r.mapper.EmbeddingToModel(embedding)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "job_id"}},
		UpdateAll: true,
	}).Create(m).Error
	if err != nil {
		return err
	}
	*embedding = *r.mapper.EmbeddingToEntity(m)
	return nil
}

func (r *JobEmbeddingRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.JobEmbedding{}, id).Error
}

func (r *JobEmbeddingRepositoryImpl) DeleteByJobId(ctx context.Context, jobId uuid.UUID) error {
	query := specification.ByJobId{JobID: jobId}.Apply(r.db.WithContext(ctx))
	return query.Delete(&model.JobEmbedding{}).Error
}

func (r *JobEmbeddingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.JobEmbedding, error) {
	var m model.JobEmbedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.EmbeddingToEntity(&m), nil
}

func (r *JobEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.JobEmbedding{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SearchSimilar ranks open postings by cosine distance. Cosine distance in
// pgvector is 1 - cosine_similarity, so similarity = 1 - distance.
func (r *JobEmbeddingRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredJobEmbedding, error) {
	if limit <= 0 {
		limit = 10
	}

	type result struct {
		model.JobEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("job_embeddings").
		Select("job_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Joins("JOIN job_postings ON job_postings.id = job_embeddings.job_id").
		Where("job_postings.status = ?", "open").
		Where("job_postings.deleted_at IS NULL").
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredJobEmbedding, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredJobEmbedding{
			Embedding:  r.mapper.EmbeddingToEntity(&res.JobEmbedding),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
