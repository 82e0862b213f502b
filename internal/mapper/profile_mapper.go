package mapper

import (
	"talentmatch-be/internal/entity"
	"talentmatch-be/internal/model"

	"gorm.io/datatypes"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ProfileToEntity(p *model.CandidateProfile) *entity.CandidateProfile {
	if p == nil {
		return nil
	}
	return &entity.CandidateProfile{
		UserId:           p.UserId,
		FullName:         p.FullName,
		Email:            p.Email,
		Phone:            p.Phone,
		Location:         p.Location,
		Title:            p.Title,
		Bio:              p.Bio,
		LinkedinURL:      p.LinkedinURL,
		GithubURL:        p.GithubURL,
		WebsiteURL:       p.WebsiteURL,
		EducationLevel:   p.EducationLevel,
		School:           p.School,
		Degree:           p.Degree,
		GraduationYear:   p.GraduationYear,
		ResumeURL:        p.ResumeURL,
		ResumeFilename:   p.ResumeFilename,
		ResumeUploadedAt: p.ResumeUploadedAt,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (m *ProfileMapper) ProfileToModel(p *entity.CandidateProfile) *model.CandidateProfile {
	if p == nil {
		return nil
	}
	return &model.CandidateProfile{
		UserId:           p.UserId,
		FullName:         p.FullName,
		Email:            p.Email,
		Phone:            p.Phone,
		Location:         p.Location,
		Title:            p.Title,
		Bio:              p.Bio,
		LinkedinURL:      p.LinkedinURL,
		GithubURL:        p.GithubURL,
		WebsiteURL:       p.WebsiteURL,
		EducationLevel:   p.EducationLevel,
		School:           p.School,
		Degree:           p.Degree,
		GraduationYear:   p.GraduationYear,
		ResumeURL:        p.ResumeURL,
		ResumeFilename:   p.ResumeFilename,
		ResumeUploadedAt: p.ResumeUploadedAt,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (m *ProfileMapper) PreferencesToEntity(p *model.CandidatePreferences) *entity.CandidatePreferences {
	if p == nil {
		return nil
	}
	prefs := make(map[string]entity.StagePreference, len(p.CompanyStagePrefs))
	for k, v := range p.CompanyStagePrefs {
		if s, ok := v.(string); ok {
			prefs[k] = entity.StagePreference(s)
		}
	}
	return &entity.CandidatePreferences{
		UserId:             p.UserId,
		CompanyStagePrefs:  prefs,
		PreferredLocations: []string(p.PreferredLocations),
		RemotePreference:   entity.RemotePreference(p.RemotePreference),
		EmploymentType:     entity.EmploymentType(p.EmploymentType),
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func (m *ProfileMapper) PreferencesToModel(p *entity.CandidatePreferences) *model.CandidatePreferences {
	if p == nil {
		return nil
	}
	prefs := make(datatypes.JSONMap, len(p.CompanyStagePrefs))
	for k, v := range p.CompanyStagePrefs {
		prefs[k] = string(v)
	}
	return &model.CandidatePreferences{
		UserId:             p.UserId,
		CompanyStagePrefs:  prefs,
		PreferredLocations: datatypes.NewJSONSlice(p.PreferredLocations),
		RemotePreference:   string(p.RemotePreference),
		EmploymentType:     string(p.EmploymentType),
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func (m *ProfileMapper) OnboardingToEntity(s *model.OnboardingState) *entity.OnboardingState {
	if s == nil {
		return nil
	}
	return &entity.OnboardingState{
		UserId:         s.UserId,
		SelectedRoles:  []string(s.SelectedRoles),
		CompletedSteps: []string(s.CompletedSteps),
		Completed:      s.Completed,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func (m *ProfileMapper) OnboardingToModel(s *entity.OnboardingState) *model.OnboardingState {
	if s == nil {
		return nil
	}
	return &model.OnboardingState{
		UserId:         s.UserId,
		SelectedRoles:  datatypes.NewJSONSlice(s.SelectedRoles),
		CompletedSteps: datatypes.NewJSONSlice(s.CompletedSteps),
		Completed:      s.Completed,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
