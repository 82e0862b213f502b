package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Company struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Website   string    `gorm:"type:text"`
	Stage     string    `gorm:"type:varchar(50);not null;default:'early'"`
	Location  string    `gorm:"type:varchar(255)"`
	About     string    `gorm:"type:text"`
	LogoURL   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Company) TableName() string {
	return "companies"
}

type JobPosting struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title          string    `gorm:"type:varchar(255);not null"`
	Description    string    `gorm:"type:text"`
	RoleCategory   string    `gorm:"type:varchar(100);index"`
	Location       string    `gorm:"type:varchar(255)"`
	RemotePolicy   string    `gorm:"type:varchar(50)"`
	EmploymentType string    `gorm:"type:varchar(50)"`
	SalaryMin      int       `gorm:"default:0"`
	SalaryMax      int       `gorm:"default:0"`
	Status         string    `gorm:"type:varchar(50);not null;default:'open';index"`
	PostedAt       time.Time
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`

	Company *Company `gorm:"foreignKey:CompanyId"`
}

func (JobPosting) TableName() string {
	return "job_postings"
}
