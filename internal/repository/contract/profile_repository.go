package contract

import (
	"context"

	"talentmatch-be/internal/entity"

	"github.com/google/uuid"
)

// ProfileRepository persists the candidate_profiles table. FindByUserId
// returns (nil, nil) when the row does not exist yet so callers can treat
// absence as "not onboarded" instead of an error.
type ProfileRepository interface {
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.CandidateProfile, error)
	Upsert(ctx context.Context, profile *entity.CandidateProfile) error
	Delete(ctx context.Context, userId uuid.UUID) error
}
