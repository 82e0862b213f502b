package entity

import (
	"time"

	"github.com/google/uuid"
)

// StagePreference is the tri-state preference a candidate holds toward a
// company stage category.
type StagePreference string

const (
	StageNeutral   StagePreference = "neutral"
	StagePreferred StagePreference = "preferred"
	StageAvoid     StagePreference = "avoid"
)

type RemotePreference string

const (
	RemoteOnsite   RemotePreference = "onsite"
	RemoteHybrid   RemotePreference = "hybrid"
	RemoteFull     RemotePreference = "remote"
	RemoteFlexible RemotePreference = "flexible"
)

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentPartTime   EmploymentType = "part_time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
)

// CandidateProfile is one row of the profiles collection, keyed by the
// identity id.
type CandidateProfile struct {
	UserId           uuid.UUID
	FullName         string
	Email            string
	Phone            string
	Location         string
	Title            string
	Bio              string
	LinkedinURL      string
	GithubURL        string
	WebsiteURL       string
	EducationLevel   string
	School           string
	Degree           string
	GraduationYear   string
	ResumeURL        string
	ResumeFilename   string
	ResumeUploadedAt *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CandidatePreferences is one row of the preferences collection,
// foreign-keyed to the identity id.
type CandidatePreferences struct {
	UserId             uuid.UUID
	CompanyStagePrefs  map[string]StagePreference
	PreferredLocations []string
	RemotePreference   RemotePreference
	EmploymentType     EmploymentType
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// OnboardingState is one row of the onboarding collection, foreign-keyed to
// the identity id. CompletedSteps keeps insertion order (= completion order).
type OnboardingState struct {
	UserId         uuid.UUID
	SelectedRoles  []string
	CompletedSteps []string
	Completed      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
