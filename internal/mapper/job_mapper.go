package mapper

import (
	"talentmatch-be/internal/entity"
	"talentmatch-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type JobMapper struct{}

func NewJobMapper() *JobMapper {
	return &JobMapper{}
}

func (m *JobMapper) CompanyToEntity(c *model.Company) *entity.Company {
	if c == nil {
		return nil
	}
	return &entity.Company{
		Id:        c.Id,
		Name:      c.Name,
		Website:   c.Website,
		Stage:     entity.CompanyStage(c.Stage),
		Location:  c.Location,
		About:     c.About,
		LogoURL:   c.LogoURL,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *JobMapper) CompanyToModel(c *entity.Company) *model.Company {
	if c == nil {
		return nil
	}
	return &model.Company{
		Id:        c.Id,
		Name:      c.Name,
		Website:   c.Website,
		Stage:     string(c.Stage),
		Location:  c.Location,
		About:     c.About,
		LogoURL:   c.LogoURL,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *JobMapper) JobToEntity(j *model.JobPosting) *entity.JobPosting {
	if j == nil {
		return nil
	}
	return &entity.JobPosting{
		Id:             j.Id,
		CompanyId:      j.CompanyId,
		Title:          j.Title,
		Description:    j.Description,
		RoleCategory:   j.RoleCategory,
		Location:       j.Location,
		RemotePolicy:   entity.RemotePreference(j.RemotePolicy),
		EmploymentType: entity.EmploymentType(j.EmploymentType),
		SalaryMin:      j.SalaryMin,
		SalaryMax:      j.SalaryMax,
		Status:         entity.JobStatus(j.Status),
		PostedAt:       j.PostedAt,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
		Company:        m.CompanyToEntity(j.Company),
	}
}

func (m *JobMapper) JobToModel(j *entity.JobPosting) *model.JobPosting {
	if j == nil {
		return nil
	}
	return &model.JobPosting{
		Id:             j.Id,
		CompanyId:      j.CompanyId,
		Title:          j.Title,
		Description:    j.Description,
		RoleCategory:   j.RoleCategory,
		Location:       j.Location,
		RemotePolicy:   string(j.RemotePolicy),
		EmploymentType: string(j.EmploymentType),
		SalaryMin:      j.SalaryMin,
		SalaryMax:      j.SalaryMax,
		Status:         string(j.Status),
		PostedAt:       j.PostedAt,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}

func (m *JobMapper) JobsToEntities(jobs []*model.JobPosting) []*entity.JobPosting {
	entities := make([]*entity.JobPosting, len(jobs))
	for i, j := range jobs {
		entities[i] = m.JobToEntity(j)
	}
	return entities
}

func (m *JobMapper) EmbeddingToEntity(e *model.JobEmbedding) *entity.JobEmbedding {
	if e == nil {
		return nil
	}
	return &entity.JobEmbedding{
		Id:        e.Id,
		JobId:     e.JobId,
		Document:  e.Document,
		Values:    e.EmbeddingValue.Slice(),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (m *JobMapper) EmbeddingToModel(e *entity.JobEmbedding) *model.JobEmbedding {
	if e == nil {
		return nil
	}
	return &model.JobEmbedding{
		Id:             e.Id,
		JobId:          e.JobId,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.Values),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
