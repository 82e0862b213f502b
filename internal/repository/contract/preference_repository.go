package contract

import (
	"context"

	"talentmatch-be/internal/entity"

	"github.com/google/uuid"
)

type PreferenceRepository interface {
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.CandidatePreferences, error)
	Upsert(ctx context.Context, prefs *entity.CandidatePreferences) error
	Delete(ctx context.Context, userId uuid.UUID) error
}
