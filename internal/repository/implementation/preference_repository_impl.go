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

type PreferenceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewPreferenceRepository(db *gorm.DB) contract.PreferenceRepository {
	return &PreferenceRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *PreferenceRepositoryImpl) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.CandidatePreferences, error) {
	var m model.CandidatePreferences
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PreferencesToEntity(&m), nil
}

func (r *PreferenceRepositoryImpl) Upsert(ctx context.Context, prefs *entity.CandidatePreferences) error {
	m := r.mapper.PreferencesToModel(prefs)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(m).Error
	if err != nil {
		return err
	}
	*prefs = *r.mapper.PreferencesToEntity(m)
	return nil
}

func (r *PreferenceRepositoryImpl) Delete(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.CandidatePreferences{}).Error
}
