package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tenders/internal/domain/entity"
)

type TenderFilter struct {
	ServiceTypes []entity.ServiceType
	Limit        int
	Offset       int
}

type ITenderRepository interface {
	List(ctx context.Context, filter TenderFilter) ([]entity.Tender, error)
	ListByResponsible(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Tender, error)
	Create(ctx context.Context, tender *entity.Tender) error
	FindByID(ctx context.Context, id uuid.UUID) (entity.Tender, error)
	FindVersion(ctx context.Context, tenderID uuid.UUID, version int) (entity.TenderVersion, error)
	UpdateWithSnapshot(ctx context.Context, tender *entity.Tender, snapshot *entity.TenderVersion) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TenderStatus) error
}

type TenderRepository struct {
	gormDB *gorm.DB
}

func NewTenderRepository(db *gorm.DB) ITenderRepository {
	return &TenderRepository{
		gormDB: db,
	}
}

func (r *TenderRepository) List(ctx context.Context, filter TenderFilter) ([]entity.Tender, error) {
	var tenders []entity.Tender
	query := r.gormDB.WithContext(ctx)
	if len(filter.ServiceTypes) > 0 {
		query = query.Where("service_type IN ?", filter.ServiceTypes)
	}
	if err := query.Order("name ASC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&tenders).Error; err != nil {
		return nil, err
	}
	return tenders, nil
}

func (r *TenderRepository) ListByResponsible(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Tender, error) {
	var tenders []entity.Tender
	organizations := r.gormDB.Model(&entity.OrganizationResponsible{}).
		Select("organization_id").
		Where("user_id = ?", userID)
	if err := r.gormDB.WithContext(ctx).
		Where("organization_id IN (?)", organizations).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&tenders).Error; err != nil {
		return nil, err
	}
	return tenders, nil
}

func (r *TenderRepository) Create(ctx context.Context, tender *entity.Tender) error {
	return r.gormDB.WithContext(ctx).Omit(clause.Associations).Create(tender).Error
}

func (r *TenderRepository) FindByID(ctx context.Context, id uuid.UUID) (entity.Tender, error) {
	var tender entity.Tender
	if err := r.gormDB.WithContext(ctx).Where("id = ?", id).Take(&tender).Error; err != nil {
		return entity.Tender{}, translate(err)
	}
	return tender, nil
}

func (r *TenderRepository) FindVersion(ctx context.Context, tenderID uuid.UUID, version int) (entity.TenderVersion, error) {
	var snapshot entity.TenderVersion
	if err := r.gormDB.WithContext(ctx).
		Where("tender_id = ? AND version = ?", tenderID, version).
		Take(&snapshot).Error; err != nil {
		return entity.TenderVersion{}, translate(err)
	}
	return snapshot, nil
}

// UpdateWithSnapshot stores the snapshot and the new tender state in one
// transaction. The tender row must still be at snapshot.Version, otherwise
// ErrConflict is returned. Status is written only when it differs from the
// snapshot, so an edit never reverts a status change made in the meantime.
func (r *TenderRepository) UpdateWithSnapshot(ctx context.Context, tender *entity.Tender, snapshot *entity.TenderVersion) error {
	return r.gormDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(snapshot).Error; err != nil {
			return translate(err)
		}
		values := map[string]interface{}{
			"name":         tender.Name,
			"description":  tender.Description,
			"service_type": tender.ServiceType,
			"version":      tender.Version,
		}
		if tender.Status != snapshot.Status {
			values["status"] = tender.Status
		}
		return updateVersion(tx, &entity.Tender{}, tender.ID, snapshot.Version, values)
	})
}

func (r *TenderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TenderStatus) error {
	result := r.gormDB.WithContext(ctx).Model(&entity.Tender{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
