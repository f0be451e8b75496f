package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tenders/internal/domain/entity"
)

type IBidRepository interface {
	Create(ctx context.Context, bid *entity.Bid) error
	FindByID(ctx context.Context, id uuid.UUID) (entity.Bid, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]entity.Bid, error)
	ListByTender(ctx context.Context, tenderID uuid.UUID, limit, offset int) ([]entity.Bid, error)
	FindVersion(ctx context.Context, bidID uuid.UUID, version int) (entity.BidVersion, error)
	UpdateWithSnapshot(ctx context.Context, bid *entity.Bid, snapshot *entity.BidVersion) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BidStatus) error
	SaveDecision(ctx context.Context, decision *entity.BidDecision) error
	CountDecisions(ctx context.Context, bidID uuid.UUID, decision entity.Decision) (int64, error)
	CreateFeedback(ctx context.Context, feedback *entity.BidFeedback) error
	ListFeedback(ctx context.Context, tenderID, authorID uuid.UUID, limit, offset int) ([]entity.BidFeedback, error)
}

type BidRepository struct {
	gormDB *gorm.DB
}

func NewBidRepository(db *gorm.DB) IBidRepository {
	return &BidRepository{
		gormDB: db,
	}
}

func (r *BidRepository) Create(ctx context.Context, bid *entity.Bid) error {
	return r.gormDB.WithContext(ctx).Omit(clause.Associations).Create(bid).Error
}

func (r *BidRepository) FindByID(ctx context.Context, id uuid.UUID) (entity.Bid, error) {
	var bid entity.Bid
	if err := r.gormDB.WithContext(ctx).Where("id = ?", id).Take(&bid).Error; err != nil {
		return entity.Bid{}, translate(err)
	}
	return bid, nil
}

func (r *BidRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]entity.Bid, error) {
	var bids []entity.Bid
	if err := r.gormDB.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&bids).Error; err != nil {
		return nil, err
	}
	return bids, nil
}

func (r *BidRepository) ListByTender(ctx context.Context, tenderID uuid.UUID, limit, offset int) ([]entity.Bid, error) {
	var bids []entity.Bid
	if err := r.gormDB.WithContext(ctx).
		Where("tender_id = ?", tenderID).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&bids).Error; err != nil {
		return nil, err
	}
	return bids, nil
}

func (r *BidRepository) FindVersion(ctx context.Context, bidID uuid.UUID, version int) (entity.BidVersion, error) {
	var snapshot entity.BidVersion
	if err := r.gormDB.WithContext(ctx).
		Where("bid_id = ? AND version = ?", bidID, version).
		Take(&snapshot).Error; err != nil {
		return entity.BidVersion{}, translate(err)
	}
	return snapshot, nil
}

// UpdateWithSnapshot follows the same version guard as the tender variant.
func (r *BidRepository) UpdateWithSnapshot(ctx context.Context, bid *entity.Bid, snapshot *entity.BidVersion) error {
	return r.gormDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(snapshot).Error; err != nil {
			return translate(err)
		}
		values := map[string]interface{}{
			"name":        bid.Name,
			"description": bid.Description,
			"version":     bid.Version,
		}
		if bid.Status != snapshot.Status {
			values["status"] = bid.Status
		}
		return updateVersion(tx, &entity.Bid{}, bid.ID, snapshot.Version, values)
	})
}

func (r *BidRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BidStatus) error {
	result := r.gormDB.WithContext(ctx).Model(&entity.Bid{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveDecision inserts the decision or replaces the one the same responsible gave earlier.
func (r *BidRepository) SaveDecision(ctx context.Context, decision *entity.BidDecision) error {
	return r.gormDB.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "bid_id"}, {Name: "responsible_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"decision", "created_at"}),
		}).
		Create(decision).Error
}

func (r *BidRepository) CountDecisions(ctx context.Context, bidID uuid.UUID, decision entity.Decision) (int64, error) {
	var count int64
	if err := r.gormDB.WithContext(ctx).Model(&entity.BidDecision{}).
		Where("bid_id = ? AND decision = ?", bidID, decision).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BidRepository) CreateFeedback(ctx context.Context, feedback *entity.BidFeedback) error {
	return r.gormDB.WithContext(ctx).Omit(clause.Associations).Create(feedback).Error
}

func (r *BidRepository) ListFeedback(ctx context.Context, tenderID, authorID uuid.UUID, limit, offset int) ([]entity.BidFeedback, error) {
	var feedback []entity.BidFeedback
	bids := r.gormDB.Model(&entity.Bid{}).
		Select("id").
		Where("tender_id = ? AND author_id = ?", tenderID, authorID)
	if err := r.gormDB.WithContext(ctx).
		Where("bid_id IN (?)", bids).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}
