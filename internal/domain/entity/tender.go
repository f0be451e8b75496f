package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tender struct {
	ID              uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Name            string       `gorm:"type:varchar(100);not null"`
	Description     string       `gorm:"type:varchar(500);not null"`
	Status          TenderStatus `gorm:"type:tender_status;not null"`
	ServiceType     ServiceType  `gorm:"type:tender_service_type;not null;index"`
	Version         int          `gorm:"not null"`
	OrganizationID  uuid.UUID    `gorm:"type:uuid;not null;index"`
	CreatorUsername string       `gorm:"type:varchar(50);not null"`
	CreatedAt       time.Time
	Organization    Organization `gorm:"foreignKey:OrganizationID"`
	Creator         Employee     `gorm:"foreignKey:CreatorUsername;references:Username"`
}

func (Tender) TableName() string { return "tender" }

func (t *Tender) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TenderVersion is the state a tender had before it was edited or rolled back.
type TenderVersion struct {
	ID              uuid.UUID    `gorm:"type:uuid;primaryKey" copier:"-"`
	TenderID        uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_tender_version" copier:"-"`
	Name            string       `gorm:"type:varchar(100);not null"`
	Description     string       `gorm:"type:varchar(500);not null"`
	Status          TenderStatus `gorm:"type:tender_status;not null"`
	ServiceType     ServiceType  `gorm:"type:tender_service_type;not null"`
	Version         int          `gorm:"not null;uniqueIndex:idx_tender_version"`
	OrganizationID  uuid.UUID    `gorm:"type:uuid;not null"`
	CreatorUsername string       `gorm:"type:varchar(50);not null"`
	CreatedAt       time.Time    `gorm:"not null;autoCreateTime:false"`
	Tender          Tender       `gorm:"foreignKey:TenderID;constraint:OnDelete:CASCADE" copier:"-"`
}

func (TenderVersion) TableName() string { return "tender_version" }
