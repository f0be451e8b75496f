package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"tenders/internal/common/dto"
	"tenders/internal/domain/entity"
	"tenders/internal/repository"
)

// ApprovalQuorum caps the number of approvals a bid needs to be published.
const ApprovalQuorum = 3

const MaxFeedbackLength = 1000

type IBidService interface {
	CreateBid(ctx context.Context, req dto.CreateBidRequest) (entity.Bid, error)
	ListUserBids(ctx context.Context, username string, limit, offset int) ([]entity.Bid, error)
	ListTenderBids(ctx context.Context, tenderID uuid.UUID, username string, limit, offset int) ([]entity.Bid, error)
	GetBidStatus(ctx context.Context, id uuid.UUID, username string) (entity.BidStatus, error)
	UpdateBidStatus(ctx context.Context, id uuid.UUID, status entity.BidStatus, username string) (entity.Bid, error)
	EditBid(ctx context.Context, id uuid.UUID, username string, req dto.EditBidRequest) (entity.Bid, error)
	RollbackBid(ctx context.Context, id uuid.UUID, version int, username string) (entity.Bid, error)
	SubmitDecision(ctx context.Context, id uuid.UUID, decision entity.Decision, username string) (entity.Bid, error)
	SubmitFeedback(ctx context.Context, id uuid.UUID, feedback, username string) (entity.Bid, error)
	ListReviews(ctx context.Context, tenderID uuid.UUID, authorUsername, requesterUsername string, limit, offset int) ([]entity.BidFeedback, error)
}

type BidService struct {
	bidRepo      repository.IBidRepository
	tenderRepo   repository.ITenderRepository
	employeeRepo repository.IEmployeeRepository
	access       access
	recorder     Recorder
}

func NewBidService(bidRepo repository.IBidRepository, tenderRepo repository.ITenderRepository,
	employeeRepo repository.IEmployeeRepository, recorder Recorder) *BidService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &BidService{
		bidRepo:      bidRepo,
		tenderRepo:   tenderRepo,
		employeeRepo: employeeRepo,
		access:       access{employees: employeeRepo},
		recorder:     recorder,
	}
}

func (s *BidService) CreateBid(ctx context.Context, req dto.CreateBidRequest) (entity.Bid, error) {
	if !req.AuthorType.Valid() {
		return entity.Bid{}, fmt.Errorf("author type %q: %w", req.AuthorType, ErrInvalidInput)
	}
	tender, err := s.tender(ctx, req.TenderID)
	if err != nil {
		return entity.Bid{}, err
	}
	author, err := s.employeeRepo.FindByID(ctx, req.AuthorID)
	if errors.Is(err, repository.ErrNotFound) {
		return entity.Bid{}, fmt.Errorf("author %s: %w", req.AuthorID, ErrUserNotFound)
	}
	if err != nil {
		return entity.Bid{}, fmt.Errorf("find author: %w", err)
	}
	if req.AuthorType == entity.AuthorOrganization {
		if _, err := s.access.requireResponsible(ctx, author.ID, tender.OrganizationID); err != nil {
			return entity.Bid{}, err
		}
	}

	bid := entity.Bid{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Status:      entity.BidCreated,
		Version:     1,
		TenderID:    tender.ID,
		AuthorType:  req.AuthorType,
		AuthorID:    author.ID,
	}
	if err := s.bidRepo.Create(ctx, &bid); err != nil {
		return entity.Bid{}, fmt.Errorf("create bid: %w", err)
	}
	s.recorder.BidCreated()
	log.Info().Str("bid_id", bid.ID.String()).Str("tender_id", tender.ID.String()).Msg("bid created")
	return bid, nil
}

func (s *BidService) ListUserBids(ctx context.Context, username string, limit, offset int) ([]entity.Bid, error) {
	user, err := s.access.user(ctx, username)
	if err != nil {
		return nil, err
	}
	bids, err := s.bidRepo.ListByAuthor(ctx, user.ID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list user bids: %w", err)
	}
	if len(bids) == 0 {
		return nil, ErrBidNotFound
	}
	return bids, nil
}

func (s *BidService) ListTenderBids(ctx context.Context, tenderID uuid.UUID, username string, limit, offset int) ([]entity.Bid, error) {
	user, err := s.access.user(ctx, username)
	if err != nil {
		return nil, err
	}
	tender, err := s.tender(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.requireResponsible(ctx, user.ID, tender.OrganizationID); err != nil {
		return nil, err
	}
	bids, err := s.bidRepo.ListByTender(ctx, tenderID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tender bids: %w", err)
	}
	if len(bids) == 0 {
		return nil, ErrBidNotFound
	}
	return bids, nil
}

func (s *BidService) GetBidStatus(ctx context.Context, id uuid.UUID, username string) (entity.BidStatus, error) {
	bid, err := s.authorizeBid(ctx, id, username)
	if err != nil {
		return "", err
	}
	return bid.Status, nil
}

func (s *BidService) UpdateBidStatus(ctx context.Context, id uuid.UUID, status entity.BidStatus, username string) (entity.Bid, error) {
	if !status.Valid() {
		return entity.Bid{}, fmt.Errorf("bid status %q: %w", status, ErrInvalidInput)
	}
	bid, err := s.authorizeBid(ctx, id, username)
	if err != nil {
		return entity.Bid{}, err
	}
	if err := s.bidRepo.UpdateStatus(ctx, id, status); err != nil {
		return entity.Bid{}, fmt.Errorf("update bid status: %w", err)
	}
	log.Info().Str("bid_id", id.String()).Str("status", string(status)).Msg("bid status changed")
	bid.Status = status
	return bid, nil
}

func (s *BidService) EditBid(ctx context.Context, id uuid.UUID, username string, req dto.EditBidRequest) (entity.Bid, error) {
	bid, err := s.authorizeBid(ctx, id, username)
	if err != nil {
		return entity.Bid{}, err
	}
	updated := bid
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	return s.replace(ctx, bid, updated)
}

func (s *BidService) RollbackBid(ctx context.Context, id uuid.UUID, version int, username string) (entity.Bid, error) {
	if version < 1 {
		return entity.Bid{}, fmt.Errorf("version %d: %w", version, ErrInvalidInput)
	}
	bid, err := s.authorizeBid(ctx, id, username)
	if err != nil {
		return entity.Bid{}, err
	}
	target, err := s.bidRepo.FindVersion(ctx, id, version)
	if errors.Is(err, repository.ErrNotFound) {
		return entity.Bid{}, fmt.Errorf("bid version %d: %w", version, ErrVersionNotFound)
	}
	if err != nil {
		return entity.Bid{}, fmt.Errorf("find bid version: %w", err)
	}
	updated := bid
	updated.Name = target.Name
	updated.Description = target.Description
	updated.Status = target.Status
	return s.replace(ctx, bid, updated)
}

// SubmitDecision records the verdict of a responsible. A single rejection cancels
// the bid; approvals from min(ApprovalQuorum, responsibles) people publish it.
func (s *BidService) SubmitDecision(ctx context.Context, id uuid.UUID, decision entity.Decision, username string) (entity.Bid, error) {
	if !decision.Valid() {
		return entity.Bid{}, fmt.Errorf("decision %q: %w", decision, ErrInvalidInput)
	}
	user, err := s.access.user(ctx, username)
	if err != nil {
		return entity.Bid{}, err
	}
	bid, err := s.bid(ctx, id)
	if err != nil {
		return entity.Bid{}, err
	}
	tender, err := s.tender(ctx, bid.TenderID)
	if err != nil {
		return entity.Bid{}, err
	}
	responsible, err := s.access.requireResponsible(ctx, user.ID, tender.OrganizationID)
	if err != nil {
		return entity.Bid{}, err
	}

	if err := s.bidRepo.SaveDecision(ctx, &entity.BidDecision{
		BidID:         bid.ID,
		ResponsibleID: responsible.ID,
		Decision:      decision,
	}); err != nil {
		return entity.Bid{}, fmt.Errorf("save decision: %w", err)
	}
	s.recorder.BidDecision(string(decision))

	status, err := s.resolveStatus(ctx, bid, tender.OrganizationID)
	if err != nil {
		return entity.Bid{}, err
	}
	if status != bid.Status {
		if err := s.bidRepo.UpdateStatus(ctx, bid.ID, status); err != nil {
			return entity.Bid{}, fmt.Errorf("update bid status: %w", err)
		}
		log.Info().Str("bid_id", bid.ID.String()).Str("status", string(status)).Msg("bid status resolved by decisions")
		bid.Status = status
	}
	return bid, nil
}

func (s *BidService) resolveStatus(ctx context.Context, bid entity.Bid, organizationID uuid.UUID) (entity.BidStatus, error) {
	rejected, err := s.bidRepo.CountDecisions(ctx, bid.ID, entity.DecisionRejected)
	if err != nil {
		return "", fmt.Errorf("count rejections: %w", err)
	}
	if rejected > 0 {
		return entity.BidCanceled, nil
	}
	approved, err := s.bidRepo.CountDecisions(ctx, bid.ID, entity.DecisionApproved)
	if err != nil {
		return "", fmt.Errorf("count approvals: %w", err)
	}
	responsibles, err := s.employeeRepo.CountResponsibles(ctx, organizationID)
	if err != nil {
		return "", fmt.Errorf("count responsibles: %w", err)
	}
	quorum := responsibles
	if quorum > ApprovalQuorum {
		quorum = ApprovalQuorum
	}
	if approved >= quorum {
		return entity.BidPublished, nil
	}
	return bid.Status, nil
}

func (s *BidService) SubmitFeedback(ctx context.Context, id uuid.UUID, feedback, username string) (entity.Bid, error) {
	if feedback == "" || utf8.RuneCountInString(feedback) > MaxFeedbackLength {
		return entity.Bid{}, fmt.Errorf("feedback must be 1..%d characters: %w", MaxFeedbackLength, ErrInvalidInput)
	}
	user, err := s.access.user(ctx, username)
	if err != nil {
		return entity.Bid{}, err
	}
	bid, err := s.bid(ctx, id)
	if err != nil {
		return entity.Bid{}, err
	}
	tender, err := s.tender(ctx, bid.TenderID)
	if err != nil {
		return entity.Bid{}, err
	}
	responsible, err := s.access.requireResponsible(ctx, user.ID, tender.OrganizationID)
	if err != nil {
		return entity.Bid{}, err
	}
	if err := s.bidRepo.CreateFeedback(ctx, &entity.BidFeedback{
		BidID:         bid.ID,
		ResponsibleID: responsible.ID,
		Description:   feedback,
	}); err != nil {
		return entity.Bid{}, fmt.Errorf("save feedback: %w", err)
	}
	return bid, nil
}

func (s *BidService) ListReviews(ctx context.Context, tenderID uuid.UUID, authorUsername, requesterUsername string, limit, offset int) ([]entity.BidFeedback, error) {
	requester, err := s.access.user(ctx, requesterUsername)
	if err != nil {
		return nil, err
	}
	tender, err := s.tender(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.requireResponsible(ctx, requester.ID, tender.OrganizationID); err != nil {
		return nil, err
	}
	author, err := s.access.user(ctx, authorUsername)
	if err != nil {
		return nil, err
	}
	reviews, err := s.bidRepo.ListFeedback(ctx, tenderID, author.ID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// authorizeBid loads the bid and checks that the user authored it or is
// responsible for the organization that owns its tender.
func (s *BidService) authorizeBid(ctx context.Context, id uuid.UUID, username string) (entity.Bid, error) {
	user, err := s.access.user(ctx, username)
	if err != nil {
		return entity.Bid{}, err
	}
	bid, err := s.bid(ctx, id)
	if err != nil {
		return entity.Bid{}, err
	}
	if bid.AuthorID == user.ID {
		return bid, nil
	}
	tender, err := s.tender(ctx, bid.TenderID)
	if err != nil {
		return entity.Bid{}, err
	}
	if _, err := s.access.requireResponsible(ctx, user.ID, tender.OrganizationID); err != nil {
		return entity.Bid{}, err
	}
	return bid, nil
}

func (s *BidService) replace(ctx context.Context, current, updated entity.Bid) (entity.Bid, error) {
	var snapshot entity.BidVersion
	if err := copier.Copy(&snapshot, &current); err != nil {
		return entity.Bid{}, fmt.Errorf("snapshot bid: %w", err)
	}
	snapshot.ID = uuid.New()
	snapshot.BidID = current.ID

	updated.Version = current.Version + 1
	if err := s.bidRepo.UpdateWithSnapshot(ctx, &updated, &snapshot); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return entity.Bid{}, ErrBidNotFound
		case errors.Is(err, repository.ErrConflict):
			return entity.Bid{}, ErrConflict
		}
		return entity.Bid{}, fmt.Errorf("update bid: %w", err)
	}
	log.Info().Str("bid_id", updated.ID.String()).Int("version", updated.Version).Msg("bid updated")
	return updated, nil
}

func (s *BidService) bid(ctx context.Context, id uuid.UUID) (entity.Bid, error) {
	bid, err := s.bidRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return entity.Bid{}, ErrBidNotFound
	}
	if err != nil {
		return entity.Bid{}, fmt.Errorf("find bid: %w", err)
	}
	return bid, nil
}

func (s *BidService) tender(ctx context.Context, id uuid.UUID) (entity.Tender, error) {
	tender, err := s.tenderRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return entity.Tender{}, ErrTenderNotFound
	}
	if err != nil {
		return entity.Tender{}, fmt.Errorf("find tender: %w", err)
	}
	return tender, nil
}
