package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"tenders/internal/domain/entity"
	"tenders/internal/repository"
)

// Recorder receives domain events worth counting.
type Recorder interface {
	TenderCreated()
	BidCreated()
	BidDecision(decision string)
}

type nopRecorder struct{}

func (nopRecorder) TenderCreated()     {}
func (nopRecorder) BidCreated()        {}
func (nopRecorder) BidDecision(string) {}

type access struct {
	employees repository.IEmployeeRepository
}

func (a access) user(ctx context.Context, username string) (entity.Employee, error) {
	if username == "" {
		return entity.Employee{}, ErrUserNotFound
	}
	employee, err := a.employees.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return entity.Employee{}, fmt.Errorf("%q: %w", username, ErrUserNotFound)
	}
	if err != nil {
		return entity.Employee{}, fmt.Errorf("find user %q: %w", username, err)
	}
	return employee, nil
}

// responsible reports whether the employee may act on behalf of the organization.
func (a access) responsible(ctx context.Context, userID, organizationID uuid.UUID) (entity.OrganizationResponsible, bool, error) {
	r, err := a.employees.FindResponsible(ctx, userID, organizationID)
	if errors.Is(err, repository.ErrNotFound) {
		return entity.OrganizationResponsible{}, false, nil
	}
	if err != nil {
		return entity.OrganizationResponsible{}, false, fmt.Errorf("check responsibility: %w", err)
	}
	return r, true, nil
}

func (a access) requireResponsible(ctx context.Context, userID, organizationID uuid.UUID) (entity.OrganizationResponsible, error) {
	r, ok, err := a.responsible(ctx, userID, organizationID)
	if err != nil {
		return r, err
	}
	if !ok {
		return r, fmt.Errorf("user is not responsible for the organization: %w", ErrForbidden)
	}
	return r, nil
}
