package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"tenders/internal/cache"
	"tenders/internal/common/dto"
	"tenders/internal/domain/entity"
	"tenders/internal/repository"
)

type ITenderService interface {
	ListTenders(ctx context.Context, filter repository.TenderFilter) ([]entity.Tender, error)
	CreateTender(ctx context.Context, req dto.CreateTenderRequest) (entity.Tender, error)
	ListUserTenders(ctx context.Context, username string, limit, offset int) ([]entity.Tender, error)
	GetTenderStatus(ctx context.Context, id uuid.UUID, username string) (entity.TenderStatus, error)
	UpdateTenderStatus(ctx context.Context, id uuid.UUID, status entity.TenderStatus, username string) (entity.Tender, error)
	EditTender(ctx context.Context, id uuid.UUID, username string, req dto.EditTenderRequest) (entity.Tender, error)
	RollbackTender(ctx context.Context, id uuid.UUID, version int, username string) (entity.Tender, error)
}

type TenderService struct {
	tenderRepo repository.ITenderRepository
	access     access
	cache      cache.TenderCache
	recorder   Recorder
}

func NewTenderService(tenderRepo repository.ITenderRepository, employeeRepo repository.IEmployeeRepository,
	tenderCache cache.TenderCache, recorder Recorder) *TenderService {
	if tenderCache == nil {
		tenderCache = cache.NopTenderCache{}
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &TenderService{
		tenderRepo: tenderRepo,
		access:     access{employees: employeeRepo},
		cache:      tenderCache,
		recorder:   recorder,
	}
}

func (s *TenderService) ListTenders(ctx context.Context, filter repository.TenderFilter) ([]entity.Tender, error) {
	for _, t := range filter.ServiceTypes {
		if !t.Valid() {
			return nil, fmt.Errorf("service type %q: %w", t, ErrInvalidInput)
		}
	}
	tenders, gen, ok := s.cache.Get(ctx, filter)
	if ok {
		return tenders, nil
	}
	tenders, err := s.tenderRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list tenders: %w", err)
	}
	if len(tenders) == 0 {
		return nil, ErrTenderNotFound
	}
	s.cache.Set(ctx, gen, filter, tenders)
	return tenders, nil
}

func (s *TenderService) CreateTender(ctx context.Context, req dto.CreateTenderRequest) (entity.Tender, error) {
	if !req.ServiceType.Valid() {
		return entity.Tender{}, fmt.Errorf("service type %q: %w", req.ServiceType, ErrInvalidInput)
	}
	creator, err := s.access.user(ctx, req.CreatorUsername)
	if err != nil {
		return entity.Tender{}, err
	}
	if _, err := s.access.requireResponsible(ctx, creator.ID, req.OrganizationID); err != nil {
		return entity.Tender{}, err
	}

	tender := entity.Tender{
		ID:              uuid.New(),
		Name:            req.Name,
		Description:     req.Description,
		Status:          entity.TenderCreated,
		ServiceType:     req.ServiceType,
		Version:         1,
		OrganizationID:  req.OrganizationID,
		CreatorUsername: creator.Username,
	}
	if err := s.tenderRepo.Create(ctx, &tender); err != nil {
		return entity.Tender{}, fmt.Errorf("create tender: %w", err)
	}
	s.cache.Invalidate(ctx)
	s.recorder.TenderCreated()
	log.Info().Str("tender_id", tender.ID.String()).Str("creator", creator.Username).Msg("tender created")
	return tender, nil
}

func (s *TenderService) ListUserTenders(ctx context.Context, username string, limit, offset int) ([]entity.Tender, error) {
	user, err := s.access.user(ctx, username)
	if err != nil {
		return nil, err
	}
	tenders, err := s.tenderRepo.ListByResponsible(ctx, user.ID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list user tenders: %w", err)
	}
	if len(tenders) == 0 {
		return nil, ErrTenderNotFound
	}
	return tenders, nil
}

func (s *TenderService) GetTenderStatus(ctx context.Context, id uuid.UUID, username string) (entity.TenderStatus, error) {
	user, err := s.access.user(ctx, username)
	if err != nil {
		return "", err
	}
	tender, err := s.tender(ctx, id)
	if err != nil {
		return "", err
	}
	if err := s.authorizeCreatorOrResponsible(ctx, user, tender); err != nil {
		return "", err
	}
	return tender.Status, nil
}

func (s *TenderService) UpdateTenderStatus(ctx context.Context, id uuid.UUID, status entity.TenderStatus, username string) (entity.Tender, error) {
	if !status.Valid() {
		return entity.Tender{}, fmt.Errorf("tender status %q: %w", status, ErrInvalidInput)
	}
	user, err := s.access.user(ctx, username)
	if err != nil {
		return entity.Tender{}, err
	}
	tender, err := s.tender(ctx, id)
	if err != nil {
		return entity.Tender{}, err
	}
	if _, err := s.access.requireResponsible(ctx, user.ID, tender.OrganizationID); err != nil {
		return entity.Tender{}, err
	}
	if err := s.tenderRepo.UpdateStatus(ctx, id, status); err != nil {
		return entity.Tender{}, fmt.Errorf("update tender status: %w", err)
	}
	s.cache.Invalidate(ctx)
	log.Info().Str("tender_id", id.String()).Str("status", string(status)).Msg("tender status changed")
	tender.Status = status
	return tender, nil
}

func (s *TenderService) EditTender(ctx context.Context, id uuid.UUID, username string, req dto.EditTenderRequest) (entity.Tender, error) {
	if req.ServiceType != nil && !req.ServiceType.Valid() {
		return entity.Tender{}, fmt.Errorf("service type %q: %w", *req.ServiceType, ErrInvalidInput)
	}
	user, err := s.access.user(ctx, username)
	if err != nil {
		return entity.Tender{}, err
	}
	tender, err := s.tender(ctx, id)
	if err != nil {
		return entity.Tender{}, err
	}
	if _, err := s.access.requireResponsible(ctx, user.ID, tender.OrganizationID); err != nil {
		return entity.Tender{}, err
	}

	updated := tender
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.ServiceType != nil {
		updated.ServiceType = *req.ServiceType
	}
	return s.replace(ctx, tender, updated)
}

func (s *TenderService) RollbackTender(ctx context.Context, id uuid.UUID, version int, username string) (entity.Tender, error) {
	if version < 1 {
		return entity.Tender{}, fmt.Errorf("version %d: %w", version, ErrInvalidInput)
	}
	user, err := s.access.user(ctx, username)
	if err != nil {
		return entity.Tender{}, err
	}
	tender, err := s.tender(ctx, id)
	if err != nil {
		return entity.Tender{}, err
	}
	if err := s.authorizeCreatorOrResponsible(ctx, user, tender); err != nil {
		return entity.Tender{}, err
	}
	target, err := s.tenderRepo.FindVersion(ctx, id, version)
	if errors.Is(err, repository.ErrNotFound) {
		return entity.Tender{}, fmt.Errorf("tender version %d: %w", version, ErrVersionNotFound)
	}
	if err != nil {
		return entity.Tender{}, fmt.Errorf("find tender version: %w", err)
	}

	updated := tender
	updated.Name = target.Name
	updated.Description = target.Description
	updated.ServiceType = target.ServiceType
	updated.Status = target.Status
	return s.replace(ctx, tender, updated)
}

// replace snapshots current and stores updated as the next version.
func (s *TenderService) replace(ctx context.Context, current, updated entity.Tender) (entity.Tender, error) {
	var snapshot entity.TenderVersion
	if err := copier.Copy(&snapshot, &current); err != nil {
		return entity.Tender{}, fmt.Errorf("snapshot tender: %w", err)
	}
	snapshot.ID = uuid.New()
	snapshot.TenderID = current.ID

	updated.Version = current.Version + 1
	if err := s.tenderRepo.UpdateWithSnapshot(ctx, &updated, &snapshot); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return entity.Tender{}, ErrTenderNotFound
		case errors.Is(err, repository.ErrConflict):
			return entity.Tender{}, ErrConflict
		}
		return entity.Tender{}, fmt.Errorf("update tender: %w", err)
	}
	s.cache.Invalidate(ctx)
	log.Info().Str("tender_id", updated.ID.String()).Int("version", updated.Version).Msg("tender updated")
	return updated, nil
}

func (s *TenderService) tender(ctx context.Context, id uuid.UUID) (entity.Tender, error) {
	tender, err := s.tenderRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return entity.Tender{}, ErrTenderNotFound
	}
	if err != nil {
		return entity.Tender{}, fmt.Errorf("find tender: %w", err)
	}
	return tender, nil
}

func (s *TenderService) authorizeCreatorOrResponsible(ctx context.Context, user entity.Employee, tender entity.Tender) error {
	if tender.CreatorUsername == user.Username {
		return nil
	}
	_, err := s.access.requireResponsible(ctx, user.ID, tender.OrganizationID)
	return err
}
