package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"talentmatch-be/internal/dto"
	"talentmatch-be/internal/entity"
	"talentmatch-be/internal/pkg/logger"
	"talentmatch-be/internal/repository/specification"
	"talentmatch-be/internal/repository/unitofwork"
	"talentmatch-be/pkg/events"
	pktNats "talentmatch-be/pkg/nats"

	"github.com/google/uuid"
)

type IJobService interface {
	CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*dto.CompanyResponse, error)
	GetCompany(ctx context.Context, id uuid.UUID) (*dto.CompanyResponse, error)
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*dto.CreateJobResponse, error)
	GetJob(ctx context.Context, id uuid.UUID) (*dto.JobResponse, error)
	// ListOpenJobs lists open postings, optionally narrowed to role categories.
	ListOpenJobs(ctx context.Context, roles []string, limit, offset int) ([]*dto.JobResponse, error)
	ListCompanyJobs(ctx context.Context, companyId uuid.UUID) ([]*dto.JobResponse, error)
}

type jobService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	log              logger.ILogger
}

func NewJobService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IJobService {
	return &jobService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		log:              log,
	}
}

func (s *jobService) CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	company := &entity.Company{
		Id:        uuid.New(),
		Name:      req.Name,
		Stage:     entity.CompanyStage(req.Stage),
		Location:  req.Location,
		About:     req.About,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.CompanyRepository().Create(ctx, company); err != nil {
		return nil, err
	}
	return companyToResponse(company), nil
}

func (s *jobService) GetCompany(ctx context.Context, id uuid.UUID) (*dto.CompanyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	company, err := uow.CompanyRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errors.New("company not found")
	}
	return companyToResponse(company), nil
}

func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*dto.CreateJobResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	company, err := uow.CompanyRepository().FindOne(ctx, specification.ByID{ID: req.CompanyId})
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errors.New("company not found")
	}

	job := &entity.JobPosting{
		Id:             uuid.New(),
		CompanyId:      req.CompanyId,
		Title:          req.Title,
		Description:    req.Description,
		RoleCategory:   req.RoleCategory,
		Location:       req.Location,
		RemotePolicy:   entity.RemotePreference(req.RemotePolicy),
		EmploymentType: entity.EmploymentType(req.EmploymentType),
		Status:         entity.JobStatusOpen,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if err := uow.JobRepository().Create(ctx, job); err != nil {
		return nil, err
	}

	// Queue the posting for embedding. Failure is logged, not fatal: the
	// posting exists either way and can be re-embedded later.
	payload, err := json.Marshal(dto.EmbedJobMessage{JobId: job.Id})
	if err == nil {
		err = s.publisherService.Publish(ctx, payload)
	}
	if err != nil {
		s.log.Warn("job", "failed to queue posting for embedding", map[string]interface{}{
			"job_id": job.Id.String(),
			"error":  err.Error(),
		})
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewJobPosted(job.Id, job.Title)); err != nil {
			s.log.Warn("job", "failed to publish JOB_POSTED event", map[string]interface{}{
				"job_id": job.Id.String(),
				"error":  err.Error(),
			})
		}
	}

	return &dto.CreateJobResponse{Id: job.Id}, nil
}

func (s *jobService) GetJob(ctx context.Context, id uuid.UUID) (*dto.JobResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	job, err := uow.JobRepository().FindOneWithCompany(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, errors.New("job not found")
	}
	return jobToResponse(job), nil
}

func (s *jobService) ListOpenJobs(ctx context.Context, roles []string, limit, offset int) ([]*dto.JobResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)

	jobs, err := uow.JobRepository().FindAll(ctx,
		specification.OpenJobs{},
		specification.ByRoleCategories{Categories: roles},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.JobResponse, len(jobs))
	for i, j := range jobs {
		out[i] = jobToResponse(j)
	}
	return out, nil
}

func (s *jobService) ListCompanyJobs(ctx context.Context, companyId uuid.UUID) ([]*dto.JobResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	jobs, err := uow.JobRepository().FindAll(ctx,
		specification.ByCompany{CompanyID: companyId},
		specification.OpenJobs{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.JobResponse, len(jobs))
	for i, j := range jobs {
		out[i] = jobToResponse(j)
	}
	return out, nil
}

func companyToResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		Id:       c.Id,
		Name:     c.Name,
		Stage:    string(c.Stage),
		Location: c.Location,
		About:    c.About,
	}
}

func jobToResponse(j *entity.JobPosting) *dto.JobResponse {
	res := &dto.JobResponse{
		Id:             j.Id,
		Title:          j.Title,
		Description:    j.Description,
		RoleCategory:   j.RoleCategory,
		Location:       j.Location,
		RemotePolicy:   string(j.RemotePolicy),
		EmploymentType: string(j.EmploymentType),
		Status:         string(j.Status),
		CreatedAt:      j.CreatedAt,
	}
	if j.Company != nil {
		res.Company = companyToResponse(j.Company)
	}
	return res
}
