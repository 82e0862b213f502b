package entity

import (
	"time"

	"github.com/google/uuid"
)

type CompanyStage string

const (
	CompanyStageSeed   CompanyStage = "seed"
	CompanyStageEarly  CompanyStage = "early"
	CompanyStageGrowth CompanyStage = "growth"
	CompanyStagePublic CompanyStage = "public"
)

type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

type Company struct {
	Id        uuid.UUID
	Name      string
	Website   string
	Stage     CompanyStage
	Location  string
	About     string
	LogoURL   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type JobPosting struct {
	Id             uuid.UUID
	CompanyId      uuid.UUID
	Title          string
	Description    string
	RoleCategory   string
	Location       string
	RemotePolicy   RemotePreference
	EmploymentType EmploymentType
	SalaryMin      int
	SalaryMax      int
	Status         JobStatus
	PostedAt       time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Populated on detail/list reads.
	Company *Company
}

// JobEmbedding stores the vector for one job posting's description, written
// by the embedding consumer and queried by the match service.
type JobEmbedding struct {
	Id        uuid.UUID
	JobId     uuid.UUID
	Document  string
	Values    []float32
	CreatedAt time.Time
	UpdatedAt time.Time
}
