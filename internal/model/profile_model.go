package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CandidateProfile is the profiles collection: one row per identity, keyed
// by the user id itself.
type CandidateProfile struct {
	UserId           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName         string    `gorm:"type:varchar(255)"`
	Email            string    `gorm:"type:varchar(255)"`
	Phone            string    `gorm:"type:varchar(50)"`
	Location         string    `gorm:"type:varchar(255)"`
	Title            string    `gorm:"type:varchar(255)"`
	Bio              string    `gorm:"type:text"`
	LinkedinURL      string    `gorm:"type:text"`
	GithubURL        string    `gorm:"type:text"`
	WebsiteURL       string    `gorm:"type:text"`
	EducationLevel   string    `gorm:"type:varchar(100)"`
	School           string    `gorm:"type:varchar(255)"`
	Degree           string    `gorm:"type:varchar(255)"`
	GraduationYear   string    `gorm:"type:varchar(10)"`
	ResumeURL        string    `gorm:"type:text"`
	ResumeFilename   string    `gorm:"type:varchar(255)"`
	ResumeUploadedAt *time.Time
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (CandidateProfile) TableName() string {
	return "candidate_profiles"
}

// CandidatePreferences is the preferences collection, foreign-keyed to the
// identity. Stage preferences are a jsonb map of stage -> tri-state value.
type CandidatePreferences struct {
	UserId             uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	CompanyStagePrefs  datatypes.JSONMap           `gorm:"type:jsonb"`
	PreferredLocations datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	RemotePreference   string                      `gorm:"type:varchar(50)"`
	EmploymentType     string                      `gorm:"type:varchar(50)"`
	CreatedAt          time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt          time.Time                   `gorm:"autoUpdateTime"`
}

func (CandidatePreferences) TableName() string {
	return "candidate_preferences"
}

// OnboardingState is the onboarding collection, foreign-keyed to the
// identity. completed_steps keeps insertion order.
type OnboardingState struct {
	UserId         uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	SelectedRoles  datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CompletedSteps datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Completed      bool                        `gorm:"default:false"`
	CreatedAt      time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt      time.Time                   `gorm:"autoUpdateTime"`
}

func (OnboardingState) TableName() string {
	return "onboarding_states"
}
