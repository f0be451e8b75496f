package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Organization struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name        string           `gorm:"type:varchar(100);not null"`
	Description string           `gorm:"type:text"`
	Type        OrganizationType `gorm:"type:organization_type"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Organization) TableName() string { return "organization" }

func (o *Organization) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrganizationResponsible links an employee to an organization they may act for.
type OrganizationResponsible struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID    `gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID    `gorm:"type:uuid;not null;index"`
	Organization   Organization `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	User           Employee     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (OrganizationResponsible) TableName() string { return "organization_responsible" }

func (r *OrganizationResponsible) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
