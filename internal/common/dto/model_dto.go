package dto

import (
	"time"

	"github.com/google/uuid"

	"tenders/internal/domain/entity"
)

// Timestamp renders as RFC 3339 in UTC with seconds precision.
type Timestamp time.Time

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).UTC().Format(time.RFC3339) + `"`), nil
}

type ErrorResponse struct {
	Reason string `json:"reason"`
}

type CreateTenderRequest struct {
	Name            string             `json:"name" validate:"required,max=100"`
	Description     string             `json:"description" validate:"max=500"`
	ServiceType     entity.ServiceType `json:"serviceType" validate:"required,oneof=Construction Delivery Manufacture"`
	OrganizationID  uuid.UUID          `json:"organizationId" validate:"required"`
	CreatorUsername string             `json:"creatorUsername" validate:"required,max=50"`
}

type EditTenderRequest struct {
	Name        *string             `json:"name" validate:"omitempty,max=100"`
	Description *string             `json:"description" validate:"omitempty,max=500"`
	ServiceType *entity.ServiceType `json:"serviceType" validate:"omitempty,oneof=Construction Delivery Manufacture"`
}

type TenderResponse struct {
	ID             uuid.UUID           `json:"id"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	Status         entity.TenderStatus `json:"status"`
	ServiceType    entity.ServiceType  `json:"serviceType"`
	OrganizationID uuid.UUID           `json:"organizationId"`
	Version        int                 `json:"version"`
	CreatedAt      Timestamp           `json:"createdAt"`
}

type TenderStatusResponse struct {
	Status entity.TenderStatus `json:"status"`
}

type CreateBidRequest struct {
	Name        string            `json:"name" validate:"required,max=100"`
	Description string            `json:"description" validate:"max=500"`
	TenderID    uuid.UUID         `json:"tenderId" validate:"required"`
	AuthorType  entity.AuthorType `json:"authorType" validate:"required,oneof=Organization User"`
	AuthorID    uuid.UUID         `json:"authorId" validate:"required"`
}

type EditBidRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type BidResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Status      entity.BidStatus  `json:"status"`
	TenderID    uuid.UUID         `json:"tenderId"`
	AuthorType  entity.AuthorType `json:"authorType"`
	AuthorID    uuid.UUID         `json:"authorId"`
	Version     int               `json:"version"`
	CreatedAt   Timestamp         `json:"createdAt"`
}

type BidStatusResponse struct {
	Status entity.BidStatus `json:"status"`
}

type BidFeedbackResponse struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	CreatedAt   Timestamp `json:"createdAt"`
}

func NewTenderResponse(t entity.Tender) TenderResponse {
	return TenderResponse{
		ID:             t.ID,
		Name:           t.Name,
		Description:    t.Description,
		Status:         t.Status,
		ServiceType:    t.ServiceType,
		OrganizationID: t.OrganizationID,
		Version:        t.Version,
		CreatedAt:      Timestamp(t.CreatedAt),
	}
}

func NewTenderResponses(tenders []entity.Tender) []TenderResponse {
	res := make([]TenderResponse, 0, len(tenders))
	for _, t := range tenders {
		res = append(res, NewTenderResponse(t))
	}
	return res
}

func NewBidResponse(b entity.Bid) BidResponse {
	return BidResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Status:      b.Status,
		TenderID:    b.TenderID,
		AuthorType:  b.AuthorType,
		AuthorID:    b.AuthorID,
		Version:     b.Version,
		CreatedAt:   Timestamp(b.CreatedAt),
	}
}

func NewBidResponses(bids []entity.Bid) []BidResponse {
	res := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		res = append(res, NewBidResponse(b))
	}
	return res
}

func NewBidFeedbackResponses(feedback []entity.BidFeedback) []BidFeedbackResponse {
	res := make([]BidFeedbackResponse, 0, len(feedback))
	for _, f := range feedback {
		res = append(res, BidFeedbackResponse{
			ID:          f.ID,
			Description: f.Description,
			CreatedAt:   Timestamp(f.CreatedAt),
		})
	}
	return res
}
