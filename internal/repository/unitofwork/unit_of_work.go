package unitofwork

import (
	"context"

	"talentmatch-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProfileRepository() contract.ProfileRepository
	PreferenceRepository() contract.PreferenceRepository
	OnboardingRepository() contract.OnboardingRepository

	JobRepository() contract.JobRepository
	CompanyRepository() contract.CompanyRepository
	JobEmbeddingRepository() contract.JobEmbeddingRepository
}
