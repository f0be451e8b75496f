package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Bid struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(100);not null"`
	Description string     `gorm:"type:varchar(500);not null"`
	Status      BidStatus  `gorm:"type:bid_status;not null"`
	Version     int        `gorm:"not null"`
	TenderID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	AuthorType  AuthorType `gorm:"type:bid_author_type;not null"`
	AuthorID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	Tender      Tender `gorm:"foreignKey:TenderID;constraint:OnDelete:CASCADE"`
}

func (Bid) TableName() string { return "bid" }

func (b *Bid) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

type BidVersion struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" copier:"-"`
	BidID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_bid_version" copier:"-"`
	Name        string     `gorm:"type:varchar(100);not null"`
	Description string     `gorm:"type:varchar(500);not null"`
	Status      BidStatus  `gorm:"type:bid_status;not null"`
	Version     int        `gorm:"not null;uniqueIndex:idx_bid_version"`
	TenderID    uuid.UUID  `gorm:"type:uuid;not null"`
	AuthorType  AuthorType `gorm:"type:bid_author_type;not null"`
	AuthorID    uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime:false"`
	Bid         Bid        `gorm:"foreignKey:BidID;constraint:OnDelete:CASCADE" copier:"-"`
}

func (BidVersion) TableName() string { return "bid_version" }

// BidDecision holds the latest verdict of one responsible on one bid.
type BidDecision struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	BidID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bid_decision_responsible"`
	ResponsibleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bid_decision_responsible"`
	Decision      Decision  `gorm:"type:bid_decision;not null"`
	CreatedAt     time.Time
	Bid           Bid                     `gorm:"foreignKey:BidID;constraint:OnDelete:CASCADE"`
	Responsible   OrganizationResponsible `gorm:"foreignKey:ResponsibleID;constraint:OnDelete:CASCADE"`
}

func (BidDecision) TableName() string { return "bid_decision" }

func (d *BidDecision) BeforeCreate(*gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

type BidFeedback struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	BidID         uuid.UUID `gorm:"type:uuid;not null;index"`
	ResponsibleID uuid.UUID `gorm:"type:uuid;not null"`
	Description   string    `gorm:"type:varchar(1000);not null"`
	CreatedAt     time.Time
	Bid           Bid                     `gorm:"foreignKey:BidID;constraint:OnDelete:CASCADE"`
	Responsible   OrganizationResponsible `gorm:"foreignKey:ResponsibleID;constraint:OnDelete:CASCADE"`
}

func (BidFeedback) TableName() string { return "bid_feedback" }

func (f *BidFeedback) BeforeCreate(*gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
