package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"talentmatch-be/internal/dto"
	"talentmatch-be/internal/entity"
	"talentmatch-be/internal/pkg/logger"
	"talentmatch-be/internal/repository/memory"
	"talentmatch-be/pkg/events"
	pktNats "talentmatch-be/pkg/nats"
	"talentmatch-be/pkg/profile"

	"github.com/google/uuid"
)

const maxResumeSize = 5 * 1024 * 1024 // 5MB

var allowedResumeExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

type IProfileService interface {
	// StoreFor returns the live store for a user, loading remote state on
	// first access.
	StoreFor(ctx context.Context, userId uuid.UUID) (*profile.Store, error)
	GetAggregate(ctx context.Context, userId uuid.UUID) (*dto.AggregateResponse, error)
	UpdateAggregate(ctx context.Context, userId uuid.UUID, req *dto.UpdateAggregateRequest) (*dto.AggregateResponse, error)
	Save(ctx context.Context, userId uuid.UUID) (*dto.SaveReport, error)
	UploadResume(ctx context.Context, userId uuid.UUID, file *multipart.FileHeader, save func(dst string) error) (*dto.ResumeUploadResponse, error)
	IsOnboardingComplete(ctx context.Context, userId uuid.UUID) (bool, error)
	EvictStore(userId uuid.UUID)
}

type profileService struct {
	stores         *memory.StoreRepository
	remote         profile.RemoteStore
	storageDir     string
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewProfileService(
	stores *memory.StoreRepository,
	remote profile.RemoteStore,
	storageDir string,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IProfileService {
	return &profileService{
		stores:         stores,
		remote:         remote,
		storageDir:     storageDir,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *profileService) StoreFor(ctx context.Context, userId uuid.UUID) (*profile.Store, error) {
	if st, found := s.stores.Get(userId.String()); found {
		return st, nil
	}

	st := profile.NewStore(userId, s.remote, s.log)
	if err := st.Load(ctx); err != nil {
		// The store falls back to defaults on load failure; keep serving it
		// so the flow degrades instead of breaking.
		s.log.Error("profile", "remote load failed, serving defaults", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}
	s.stores.Save(st)
	return st, nil
}

func (s *profileService) GetAggregate(ctx context.Context, userId uuid.UUID) (*dto.AggregateResponse, error) {
	st, err := s.StoreFor(ctx, userId)
	if err != nil {
		return nil, err
	}
	agg := st.Aggregate()
	return aggregateToResponse(&agg), nil
}

func (s *profileService) UpdateAggregate(ctx context.Context, userId uuid.UUID, req *dto.UpdateAggregateRequest) (*dto.AggregateResponse, error) {
	st, err := s.StoreFor(ctx, userId)
	if err != nil {
		return nil, err
	}

	st.Update(requestToPatch(req))

	agg := st.Aggregate()
	return aggregateToResponse(&agg), nil
}

func (s *profileService) Save(ctx context.Context, userId uuid.UUID) (*dto.SaveReport, error) {
	st, err := s.StoreFor(ctx, userId)
	if err != nil {
		return nil, err
	}
	result := st.Save(ctx)

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewProfileSaved(userId, result.Ok())); err != nil {
			s.log.Warn("profile", "failed to publish profile saved event", map[string]interface{}{
				"user_id": userId.String(),
				"error":   err.Error(),
			})
		}
	}

	return saveResultToReport(result), nil
}

func (s *profileService) UploadResume(ctx context.Context, userId uuid.UUID, file *multipart.FileHeader, save func(dst string) error) (*dto.ResumeUploadResponse, error) {
	if file.Size > maxResumeSize {
		return nil, errors.New("resume exceeds the 5MB size limit")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedResumeExts[ext] {
		return nil, errors.New("resume must be a PDF, DOC or DOCX file")
	}

	dir := filepath.Join(s.storageDir, "resumes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare storage: %w", err)
	}

	storedName := fmt.Sprintf("%s%s", userId.String(), ext)
	dst := filepath.Join(dir, storedName)
	if err := save(dst); err != nil {
		return nil, fmt.Errorf("failed to store resume: %w", err)
	}

	uploadedAt := time.Now()
	resumeURL := "/uploads/resumes/" + storedName

	st, err := s.StoreFor(ctx, userId)
	if err != nil {
		return nil, err
	}
	st.Update(profile.Patch{
		ResumeURL:        &resumeURL,
		ResumeFilename:   &file.Filename,
		ResumeUploadedAt: &uploadedAt,
	})
	if result := st.Save(ctx); !result.Ok() {
		s.log.Warn("profile", "resume metadata save was partial", map[string]interface{}{
			"user_id": userId.String(),
		})
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewResumeUploaded(userId, file.Filename)); err != nil {
			s.log.Warn("profile", "failed to publish resume uploaded event", map[string]interface{}{
				"user_id": userId.String(),
				"error":   err.Error(),
			})
		}
	}

	return &dto.ResumeUploadResponse{
		ResumeURL:      resumeURL,
		ResumeFilename: file.Filename,
		UploadedAt:     uploadedAt,
	}, nil
}

func (s *profileService) IsOnboardingComplete(ctx context.Context, userId uuid.UUID) (bool, error) {
	st, err := s.StoreFor(ctx, userId)
	if err != nil {
		return false, err
	}
	return st.IsOnboardingComplete(), nil
}

// EvictStore drops the cached store, typically on sign-out, so the next
// access reloads remote state.
func (s *profileService) EvictStore(userId uuid.UUID) {
	s.stores.Delete(userId.String())
}

// --- mapping helpers ---

func aggregateToResponse(a *profile.Aggregate) *dto.AggregateResponse {
	stagePrefs := make(map[string]string, len(a.CompanyStagePrefs))
	for k, v := range a.CompanyStagePrefs {
		stagePrefs[k] = string(v)
	}
	return &dto.AggregateResponse{
		Id:                  a.Id,
		FullName:            a.FullName,
		Email:               a.Email,
		Phone:               a.Phone,
		Location:            a.Location,
		Title:               a.Title,
		Bio:                 a.Bio,
		LinkedinURL:         a.LinkedinURL,
		GithubURL:           a.GithubURL,
		WebsiteURL:          a.WebsiteURL,
		ResumeURL:           a.ResumeURL,
		ResumeFilename:      a.ResumeFilename,
		ResumeUploadedAt:    a.ResumeUploadedAt,
		EducationLevel:      a.EducationLevel,
		School:              a.School,
		Degree:              a.Degree,
		GraduationYear:      a.GraduationYear,
		CompanyStagePrefs:   stagePrefs,
		PreferredLocations:  a.PreferredLocations,
		RemotePreference:    string(a.RemotePreference),
		EmploymentType:      string(a.EmploymentType),
		SelectedRoles:       a.SelectedRoles,
		CompletedSteps:      a.CompletedSteps,
		OnboardingCompleted: a.OnboardingCompleted,
	}
}

func requestToPatch(req *dto.UpdateAggregateRequest) profile.Patch {
	p := profile.Patch{
		FullName:           req.FullName,
		Email:              req.Email,
		Phone:              req.Phone,
		Location:           req.Location,
		Title:              req.Title,
		Bio:                req.Bio,
		LinkedinURL:        req.LinkedinURL,
		GithubURL:          req.GithubURL,
		WebsiteURL:         req.WebsiteURL,
		EducationLevel:     req.EducationLevel,
		School:             req.School,
		Degree:             req.Degree,
		GraduationYear:     req.GraduationYear,
		PreferredLocations: req.PreferredLocations,
		SelectedRoles:      req.SelectedRoles,
	}

	if req.CompanyStagePrefs != nil {
		prefs := make(map[string]entity.StagePreference, len(req.CompanyStagePrefs))
		for k, v := range req.CompanyStagePrefs {
			prefs[k] = entity.StagePreference(v)
		}
		p.CompanyStagePrefs = prefs
	}
	if req.RemotePreference != nil {
		rp := entity.RemotePreference(*req.RemotePreference)
		p.RemotePreference = &rp
	}
	if req.EmploymentType != nil {
		et := entity.EmploymentType(*req.EmploymentType)
		p.EmploymentType = &et
	}
	return p
}

func saveResultToReport(r profile.SaveResult) *dto.SaveReport {
	outcome := func(table string, err error) dto.TableOutcome {
		o := dto.TableOutcome{Table: table, Saved: err == nil}
		if err != nil {
			o.Error = err.Error()
		}
		return o
	}
	return &dto.SaveReport{
		Ok: r.Ok(),
		Tables: []dto.TableOutcome{
			outcome("candidate_profiles", r.Profile),
			outcome("candidate_preferences", r.Preferences),
			outcome("onboarding_states", r.Onboarding),
		},
	}
}
