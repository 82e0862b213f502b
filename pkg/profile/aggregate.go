package profile

import (
	"time"

	"talentmatch-be/internal/entity"

	"github.com/google/uuid"
)

// Aggregate is the merged in-memory view of a candidate's profile,
// preferences and onboarding records. It is owned exclusively by the Store;
// other components receive copies and mutate only through the Store.
type Aggregate struct {
	Id uuid.UUID

	// Contact / basic
	FullName string
	Email    string
	Phone    string
	Location string
	Title    string
	Bio      string

	// External links + resume reference
	LinkedinURL      string
	GithubURL        string
	WebsiteURL       string
	ResumeURL        string
	ResumeFilename   string
	ResumeUploadedAt *time.Time

	// Education
	EducationLevel string
	School         string
	Degree         string
	GraduationYear string

	// Preferences
	CompanyStagePrefs  map[string]entity.StagePreference
	PreferredLocations []string
	RemotePreference   entity.RemotePreference
	EmploymentType     entity.EmploymentType

	// Onboarding
	SelectedRoles       []string
	CompletedSteps      []string
	OnboardingCompleted bool
}

// Patch is a shallow partial update of the aggregate. Nil fields are left
// untouched.
type Patch struct {
	FullName *string
	Email    *string
	Phone    *string
	Location *string
	Title    *string
	Bio      *string

	LinkedinURL      *string
	GithubURL        *string
	WebsiteURL       *string
	ResumeURL        *string
	ResumeFilename   *string
	ResumeUploadedAt *time.Time

	EducationLevel *string
	School         *string
	Degree         *string
	GraduationYear *string

	CompanyStagePrefs  map[string]entity.StagePreference
	PreferredLocations *[]string
	RemotePreference   *entity.RemotePreference
	EmploymentType     *entity.EmploymentType

	SelectedRoles       *[]string
	OnboardingCompleted *bool
}

func defaultAggregate(id uuid.UUID) Aggregate {
	return Aggregate{
		Id:                 id,
		CompanyStagePrefs:  map[string]entity.StagePreference{},
		PreferredLocations: []string{},
		SelectedRoles:      []string{},
		CompletedSteps:     []string{},
	}
}

// merge builds the aggregate from the three partial remote records.
// Precedence: profile fields > preferences fields > onboarding fields >
// static defaults. Any record may be nil (new user).
func merge(id uuid.UUID, p *entity.CandidateProfile, prefs *entity.CandidatePreferences, ob *entity.OnboardingState) Aggregate {
	agg := defaultAggregate(id)

	if ob != nil {
		agg.SelectedRoles = append([]string{}, ob.SelectedRoles...)
		agg.CompletedSteps = append([]string{}, ob.CompletedSteps...)
		agg.OnboardingCompleted = ob.Completed
	}

	if prefs != nil {
		if prefs.CompanyStagePrefs != nil {
			agg.CompanyStagePrefs = make(map[string]entity.StagePreference, len(prefs.CompanyStagePrefs))
			for k, v := range prefs.CompanyStagePrefs {
				agg.CompanyStagePrefs[k] = v
			}
		}
		agg.PreferredLocations = append([]string{}, prefs.PreferredLocations...)
		agg.RemotePreference = prefs.RemotePreference
		agg.EmploymentType = prefs.EmploymentType
	}

	if p != nil {
		agg.FullName = p.FullName
		agg.Email = p.Email
		agg.Phone = p.Phone
		agg.Location = p.Location
		agg.Title = p.Title
		agg.Bio = p.Bio
		agg.LinkedinURL = p.LinkedinURL
		agg.GithubURL = p.GithubURL
		agg.WebsiteURL = p.WebsiteURL
		agg.EducationLevel = p.EducationLevel
		agg.School = p.School
		agg.Degree = p.Degree
		agg.GraduationYear = p.GraduationYear
		agg.ResumeURL = p.ResumeURL
		agg.ResumeFilename = p.ResumeFilename
		agg.ResumeUploadedAt = p.ResumeUploadedAt
	}

	return agg
}

func (a *Aggregate) apply(p Patch) {
	if p.FullName != nil {
		a.FullName = *p.FullName
	}
	if p.Email != nil {
		a.Email = *p.Email
	}
	if p.Phone != nil {
		a.Phone = *p.Phone
	}
	if p.Location != nil {
		a.Location = *p.Location
	}
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Bio != nil {
		a.Bio = *p.Bio
	}
	if p.LinkedinURL != nil {
		a.LinkedinURL = *p.LinkedinURL
	}
	if p.GithubURL != nil {
		a.GithubURL = *p.GithubURL
	}
	if p.WebsiteURL != nil {
		a.WebsiteURL = *p.WebsiteURL
	}
	if p.ResumeURL != nil {
		a.ResumeURL = *p.ResumeURL
	}
	if p.ResumeFilename != nil {
		a.ResumeFilename = *p.ResumeFilename
	}
	if p.ResumeUploadedAt != nil {
		a.ResumeUploadedAt = p.ResumeUploadedAt
	}
	if p.EducationLevel != nil {
		a.EducationLevel = *p.EducationLevel
	}
	if p.School != nil {
		a.School = *p.School
	}
	if p.Degree != nil {
		a.Degree = *p.Degree
	}
	if p.GraduationYear != nil {
		a.GraduationYear = *p.GraduationYear
	}
	if p.CompanyStagePrefs != nil {
		a.CompanyStagePrefs = p.CompanyStagePrefs
	}
	if p.PreferredLocations != nil {
		a.PreferredLocations = *p.PreferredLocations
	}
	if p.RemotePreference != nil {
		a.RemotePreference = *p.RemotePreference
	}
	if p.EmploymentType != nil {
		a.EmploymentType = *p.EmploymentType
	}
	if p.SelectedRoles != nil {
		a.SelectedRoles = *p.SelectedRoles
	}
	if p.OnboardingCompleted != nil {
		a.OnboardingCompleted = *p.OnboardingCompleted
	}
}

// HasCompletedStep reports whether sectionId is already in CompletedSteps.
func (a Aggregate) HasCompletedStep(sectionId string) bool {
	for _, s := range a.CompletedSteps {
		if s == sectionId {
			return true
		}
	}
	return false
}
