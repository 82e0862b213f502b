package implementation

import (
	"context"
	"errors"

	"talentmatch-be/internal/entity"
	"talentmatch-be/internal/mapper"
	"talentmatch-be/internal/model"
	"talentmatch-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OnboardingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewOnboardingRepository(db *gorm.DB) contract.OnboardingRepository {
	return &OnboardingRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *OnboardingRepositoryImpl) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.OnboardingState, error) {
	var m model.OnboardingState
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.OnboardingToEntity(&m), nil
}

func (r *OnboardingRepositoryImpl) Upsert(ctx context.Context, state *entity.OnboardingState) error {
	m := r.mapper.OnboardingToModel(state)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(m).Error
	if err != nil {
		return err
	}
	*state = *r.mapper.OnboardingToEntity(m)
	return nil
}

func (r *OnboardingRepositoryImpl) Delete(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.OnboardingState{}).Error
}
