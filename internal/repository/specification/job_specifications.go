package specification

import (
	"gorm.io/gorm"

	"github.com/google/uuid"
)

type OpenJobs struct{}

func (s OpenJobs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", "open")
}

type ByRoleCategories struct {
	Categories []string
}

func (s ByRoleCategories) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Categories) == 0 {
		return db
	}
	return db.Where("role_category IN ?", s.Categories)
}

type ByCompany struct {
	CompanyID uuid.UUID
}

func (s ByCompany) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("company_id = ?", s.CompanyID)
}

type ByJobId struct {
	JobID uuid.UUID
}

func (s ByJobId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("job_id = ?", s.JobID)
}
