package remote

import (
	"context"

	"talentmatch-be/internal/entity"
	"talentmatch-be/internal/repository/unitofwork"
	"talentmatch-be/pkg/profile"

	"github.com/google/uuid"
)

// GormRemoteStore adapts the repository layer to the profile.RemoteStore
// interface. Each call grabs a fresh unit of work; the three fetches and
// three upserts stay independent on purpose.
type GormRemoteStore struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewGormRemoteStore(uowFactory unitofwork.RepositoryFactory) profile.RemoteStore {
	return &GormRemoteStore{
		uowFactory: uowFactory,
	}
}

func (s *GormRemoteStore) FetchProfile(ctx context.Context, userId uuid.UUID) (*entity.CandidateProfile, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProfileRepository().FindByUserId(ctx, userId)
}

func (s *GormRemoteStore) FetchPreferences(ctx context.Context, userId uuid.UUID) (*entity.CandidatePreferences, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.PreferenceRepository().FindByUserId(ctx, userId)
}

func (s *GormRemoteStore) FetchOnboarding(ctx context.Context, userId uuid.UUID) (*entity.OnboardingState, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.OnboardingRepository().FindByUserId(ctx, userId)
}

func (s *GormRemoteStore) UpsertProfile(ctx context.Context, p *entity.CandidateProfile) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProfileRepository().Upsert(ctx, p)
}

func (s *GormRemoteStore) UpsertPreferences(ctx context.Context, p *entity.CandidatePreferences) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.PreferenceRepository().Upsert(ctx, p)
}

func (s *GormRemoteStore) UpsertOnboarding(ctx context.Context, st *entity.OnboardingState) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.OnboardingRepository().Upsert(ctx, st)
}
