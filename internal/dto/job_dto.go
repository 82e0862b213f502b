package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCompanyRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Stage    string `json:"stage" validate:"required,oneof=seed early growth public"`
	Location string `json:"location"`
	About    string `json:"about"`
}

type CompanyResponse struct {
	Id       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Stage    string    `json:"stage"`
	Location string    `json:"location"`
	About    string    `json:"about"`
}

type CreateJobRequest struct {
	CompanyId      uuid.UUID `json:"company_id" validate:"required"`
	Title          string    `json:"title" validate:"required,min=3"`
	Description    string    `json:"description" validate:"required"`
	RoleCategory   string    `json:"role_category" validate:"required"`
	Location       string    `json:"location"`
	RemotePolicy   string    `json:"remote_policy" validate:"required,oneof=onsite hybrid remote"`
	EmploymentType string    `json:"employment_type" validate:"required,oneof=full_time part_time contract internship"`
}

type CreateJobResponse struct {
	Id uuid.UUID `json:"id"`
}

type JobResponse struct {
	Id             uuid.UUID        `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	RoleCategory   string           `json:"role_category"`
	Location       string           `json:"location"`
	RemotePolicy   string           `json:"remote_policy"`
	EmploymentType string           `json:"employment_type"`
	Status         string           `json:"status"`
	Company        *CompanyResponse `json:"company,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

// MatchResponse is one dashboard row: a job plus how it was ranked.
type MatchResponse struct {
	Job        JobResponse `json:"job"`
	Score      int         `json:"score"`
	Reasons    []string    `json:"reasons"`
	Similarity *float64    `json:"similarity,omitempty"` // present when vector ranking ran
}

// EmbedJobMessage is the payload published to the embedding pipeline when a
// posting is created or updated.
type EmbedJobMessage struct {
	JobId uuid.UUID `json:"job_id"`
}
