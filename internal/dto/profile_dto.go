package dto

import (
	"time"

	"github.com/google/uuid"
)

// AggregateResponse is the merged candidate view returned by profile reads.
type AggregateResponse struct {
	Id       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Location string    `json:"location"`
	Title    string    `json:"title"`
	Bio      string    `json:"bio"`

	LinkedinURL      string     `json:"linkedin_url"`
	GithubURL        string     `json:"github_url"`
	WebsiteURL       string     `json:"website_url"`
	ResumeURL        string     `json:"resume_url"`
	ResumeFilename   string     `json:"resume_filename"`
	ResumeUploadedAt *time.Time `json:"resume_uploaded_at,omitempty"`

	EducationLevel string `json:"education_level"`
	School         string `json:"school"`
	Degree         string `json:"degree"`
	GraduationYear string `json:"graduation_year"`

	CompanyStagePrefs  map[string]string `json:"company_stage_prefs"`
	PreferredLocations []string          `json:"preferred_locations"`
	RemotePreference   string            `json:"remote_preference"`
	EmploymentType     string            `json:"employment_type"`

	SelectedRoles       []string `json:"selected_roles"`
	CompletedSteps      []string `json:"completed_steps"`
	OnboardingCompleted bool     `json:"onboarding_completed"`
}

// UpdateAggregateRequest carries a partial update. Absent fields stay
// untouched, which is why everything is a pointer.
type UpdateAggregateRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=2"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
	Title    *string `json:"title"`
	Bio      *string `json:"bio"`

	LinkedinURL *string `json:"linkedin_url" validate:"omitempty,url"`
	GithubURL   *string `json:"github_url" validate:"omitempty,url"`
	WebsiteURL  *string `json:"website_url" validate:"omitempty,url"`

	EducationLevel *string `json:"education_level"`
	School         *string `json:"school"`
	Degree         *string `json:"degree"`
	GraduationYear *string `json:"graduation_year"`

	CompanyStagePrefs  map[string]string `json:"company_stage_prefs"`
	PreferredLocations *[]string         `json:"preferred_locations"`
	RemotePreference   *string           `json:"remote_preference" validate:"omitempty,oneof=onsite hybrid remote flexible"`
	EmploymentType     *string           `json:"employment_type" validate:"omitempty,oneof=full_time part_time contract internship"`

	SelectedRoles *[]string `json:"selected_roles"`
}

// SaveReport mirrors the per-table outcome of a profile save. A table that
// saved cleanly reports an empty error string.
type SaveReport struct {
	Ok     bool           `json:"ok"`
	Tables []TableOutcome `json:"tables"`
}

type TableOutcome struct {
	Table string `json:"table"`
	Saved bool   `json:"saved"`
	Error string `json:"error,omitempty"`
}

type ResumeUploadResponse struct {
	ResumeURL      string    `json:"resume_url"`
	ResumeFilename string    `json:"resume_filename"`
	UploadedAt     time.Time `json:"uploaded_at"`
}
