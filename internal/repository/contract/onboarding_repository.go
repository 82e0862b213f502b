package contract

import (
	"context"

	"talentmatch-be/internal/entity"

	"github.com/google/uuid"
)

type OnboardingRepository interface {
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.OnboardingState, error)
	Upsert(ctx context.Context, state *entity.OnboardingState) error
	Delete(ctx context.Context, userId uuid.UUID) error
}
