package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tenders/internal/domain/entity"
)

type IEmployeeRepository interface {
	FindByUsername(ctx context.Context, username string) (entity.Employee, error)
	FindByID(ctx context.Context, id uuid.UUID) (entity.Employee, error)
	FindResponsible(ctx context.Context, userID, organizationID uuid.UUID) (entity.OrganizationResponsible, error)
	CountResponsibles(ctx context.Context, organizationID uuid.UUID) (int64, error)
}

type EmployeeRepository struct {
	gormDB *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) IEmployeeRepository {
	return &EmployeeRepository{
		gormDB: db,
	}
}

func (r *EmployeeRepository) FindByUsername(ctx context.Context, username string) (entity.Employee, error) {
	var employee entity.Employee
	if err := r.gormDB.WithContext(ctx).Where("username = ?", username).Take(&employee).Error; err != nil {
		return entity.Employee{}, translate(err)
	}
	return employee, nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (entity.Employee, error) {
	var employee entity.Employee
	if err := r.gormDB.WithContext(ctx).Where("id = ?", id).Take(&employee).Error; err != nil {
		return entity.Employee{}, translate(err)
	}
	return employee, nil
}

func (r *EmployeeRepository) FindResponsible(ctx context.Context, userID, organizationID uuid.UUID) (entity.OrganizationResponsible, error) {
	var responsible entity.OrganizationResponsible
	if err := r.gormDB.WithContext(ctx).
		Where("user_id = ? AND organization_id = ?", userID, organizationID).
		Take(&responsible).Error; err != nil {
		return entity.OrganizationResponsible{}, translate(err)
	}
	return responsible, nil
}

func (r *EmployeeRepository) CountResponsibles(ctx context.Context, organizationID uuid.UUID) (int64, error) {
	var count int64
	if err := r.gormDB.WithContext(ctx).Model(&entity.OrganizationResponsible{}).
		Where("organization_id = ?", organizationID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
