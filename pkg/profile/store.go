package profile

import (
	"context"
	"sync"
	"time"

	"talentmatch-be/internal/entity"
	"talentmatch-be/internal/pkg/logger"

	"github.com/google/uuid"
)

// RemoteStore is the Store's view of the three remote collections. Fetches
// return (nil, nil) when no row exists for the identity; that is an expected
// state for new users, not an error.
type RemoteStore interface {
	FetchProfile(ctx context.Context, userId uuid.UUID) (*entity.CandidateProfile, error)
	FetchPreferences(ctx context.Context, userId uuid.UUID) (*entity.CandidatePreferences, error)
	FetchOnboarding(ctx context.Context, userId uuid.UUID) (*entity.OnboardingState, error)

	UpsertProfile(ctx context.Context, p *entity.CandidateProfile) error
	UpsertPreferences(ctx context.Context, p *entity.CandidatePreferences) error
	UpsertOnboarding(ctx context.Context, s *entity.OnboardingState) error
}

// SaveResult reports the outcome of each of the three independent upserts.
// Partial saves are allowed: a failure in one table never blocks the others,
// and nothing is rolled back.
type SaveResult struct {
	Profile     error
	Preferences error
	Onboarding  error
}

func (r SaveResult) Ok() bool {
	return r.Profile == nil && r.Preferences == nil && r.Onboarding == nil
}

// Store is the single in-process owner of one identity's Aggregate. All
// reads and writes against the remote collections go through it.
type Store struct {
	userId uuid.UUID
	remote RemoteStore
	log    logger.ILogger

	mu       sync.Mutex
	loading  bool
	agg      Aggregate
	complete bool
}

func NewStore(userId uuid.UUID, remote RemoteStore, log logger.ILogger) *Store {
	return &Store{
		userId: userId,
		remote: remote,
		log:    log,
		agg:    defaultAggregate(userId),
	}
}

// Load fetches the three remote records and replaces the in-memory
// aggregate. Missing rows fall back to defaults; any other remote error is
// logged and leaves the aggregate at defaults. A Load while another Load is
// in flight is a no-op.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	prof, errP := s.remote.FetchProfile(ctx, s.userId)
	prefs, errPref := s.remote.FetchPreferences(ctx, s.userId)
	ob, errOb := s.remote.FetchOnboarding(ctx, s.userId)

	for _, err := range []error{errP, errPref, errOb} {
		if err != nil {
			s.log.Error("ProfileStore", "Failed to load remote records", map[string]interface{}{
				"user_id": s.userId,
				"error":   err.Error(),
			})
			s.mu.Lock()
			s.agg = defaultAggregate(s.userId)
			s.complete = IsOnboardingComplete(s.agg)
			s.mu.Unlock()
			return err
		}
	}

	s.mu.Lock()
	s.agg = merge(s.userId, prof, prefs, ob)
	s.complete = IsOnboardingComplete(s.agg)
	s.mu.Unlock()
	return nil
}

// Update shallow-merges the patch into the aggregate. Local only, never
// contacts the remote store, always succeeds.
func (s *Store) Update(p Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agg.apply(p)
	s.complete = IsOnboardingComplete(s.agg)
}

// CompleteStep appends sectionId to CompletedSteps if not already present.
// Idempotent, local only.
func (s *Store) CompleteStep(sectionId string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.agg.HasCompletedStep(sectionId) {
		return
	}
	s.agg.CompletedSteps = append(s.agg.CompletedSteps, sectionId)
	s.complete = IsOnboardingComplete(s.agg)
}

// Save persists the aggregate through three independent upserts. Failures
// are collected per table; in-memory state is never touched, and nothing is
// retried or rolled back here.
func (s *Store) Save(ctx context.Context) SaveResult {
	s.mu.Lock()
	agg := s.snapshotLocked()
	s.mu.Unlock()

	now := time.Now()
	var res SaveResult

	res.Profile = s.remote.UpsertProfile(ctx, &entity.CandidateProfile{
		UserId:           agg.Id,
		FullName:         agg.FullName,
		Email:            agg.Email,
		Phone:            agg.Phone,
		Location:         agg.Location,
		Title:            agg.Title,
		Bio:              agg.Bio,
		LinkedinURL:      agg.LinkedinURL,
		GithubURL:        agg.GithubURL,
		WebsiteURL:       agg.WebsiteURL,
		EducationLevel:   agg.EducationLevel,
		School:           agg.School,
		Degree:           agg.Degree,
		GraduationYear:   agg.GraduationYear,
		ResumeURL:        agg.ResumeURL,
		ResumeFilename:   agg.ResumeFilename,
		ResumeUploadedAt: agg.ResumeUploadedAt,
		UpdatedAt:        now,
	})

	res.Preferences = s.remote.UpsertPreferences(ctx, &entity.CandidatePreferences{
		UserId:             agg.Id,
		CompanyStagePrefs:  agg.CompanyStagePrefs,
		PreferredLocations: agg.PreferredLocations,
		RemotePreference:   agg.RemotePreference,
		EmploymentType:     agg.EmploymentType,
		UpdatedAt:          now,
	})

	res.Onboarding = s.remote.UpsertOnboarding(ctx, &entity.OnboardingState{
		UserId:         agg.Id,
		SelectedRoles:  agg.SelectedRoles,
		CompletedSteps: agg.CompletedSteps,
		Completed:      agg.OnboardingCompleted,
		UpdatedAt:      now,
	})

	if !res.Ok() {
		s.log.Warn("ProfileStore", "Partial save", map[string]interface{}{
			"user_id":        agg.Id,
			"profile_ok":     res.Profile == nil,
			"preferences_ok": res.Preferences == nil,
			"onboarding_ok":  res.Onboarding == nil,
		})
	}

	return res
}

// Aggregate returns a copy of the current in-memory aggregate.
func (s *Store) Aggregate() Aggregate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Aggregate {
	agg := s.agg
	agg.PreferredLocations = append([]string{}, s.agg.PreferredLocations...)
	agg.SelectedRoles = append([]string{}, s.agg.SelectedRoles...)
	agg.CompletedSteps = append([]string{}, s.agg.CompletedSteps...)
	agg.CompanyStagePrefs = make(map[string]entity.StagePreference, len(s.agg.CompanyStagePrefs))
	for k, v := range s.agg.CompanyStagePrefs {
		agg.CompanyStagePrefs[k] = v
	}
	return agg
}

func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// IsOnboardingComplete returns the derived completion signal recomputed on
// the last mutation.
func (s *Store) IsOnboardingComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.complete
}

func (s *Store) UserId() uuid.UUID {
	return s.userId
}
