package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tenders/internal/app/tendermanager/service"
	"tenders/internal/common/dto"
	"tenders/internal/domain/entity"
)

func TestCreateBidHandler(t *testing.T) {
	bid := sampleBid()
	s := newTestServer(t)
	s.bids.On("CreateBid", mock.Anything, dto.CreateBidRequest{
		Name:        "Offer",
		Description: "Cheap",
		TenderID:    bid.TenderID,
		AuthorType:  entity.AuthorUser,
		AuthorID:    bid.AuthorID,
	}).Return(bid, nil)

	rec := s.do(http.MethodPost, "/api/bids/new", `{
		"name": "Offer",
		"description": "Cheap",
		"tenderId": "550e8400-e29b-41d4-a716-446655440000",
		"authorType": "User",
		"authorId": "550e8400-e29b-41d4-a716-446655440003"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"id": "550e8400-e29b-41d4-a716-446655440002",
		"name": "Offer",
		"description": "Cheap",
		"status": "Created",
		"tenderId": "550e8400-e29b-41d4-a716-446655440000",
		"authorType": "User",
		"authorId": "550e8400-e29b-41d4-a716-446655440003",
		"version": 1,
		"createdAt": "2024-08-01T09:30:15Z"
	}`, rec.Body.String())
}

func TestCreateBidHandlerRejectsAuthorType(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/bids/new", `{
		"name": "Offer",
		"description": "Cheap",
		"tenderId": "550e8400-e29b-41d4-a716-446655440000",
		"authorType": "Robot",
		"authorId": "550e8400-e29b-41d4-a716-446655440003"
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBidListHandlers(t *testing.T) {
	bid := sampleBid()

	t.Run("my bids", func(t *testing.T) {
		s := newTestServer(t)
		s.bids.On("ListUserBids", mock.Anything, "author", 3, 1).Return([]entity.Bid{bid}, nil)

		rec := s.do(http.MethodGet, "/api/bids/my?username=author&limit=3&offset=1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var res []dto.BidResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		require.Len(t, res, 1)
		assert.Equal(t, bid.ID, res[0].ID)
	})

	t.Run("tender bids", func(t *testing.T) {
		s := newTestServer(t)
		s.bids.On("ListTenderBids", mock.Anything, bid.TenderID, "reviewer", 5, 0).Return(nil, service.ErrForbidden)

		rec := s.do(http.MethodGet, "/api/bids/"+bid.TenderID.String()+"/list?username=reviewer", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("reviews", func(t *testing.T) {
		s := newTestServer(t)
		s.bids.On("ListReviews", mock.Anything, bid.TenderID, "author", "reviewer", 5, 0).
			Return([]entity.BidFeedback{{ID: bid.ID, Description: "late", CreatedAt: bid.CreatedAt}}, nil)

		rec := s.do(http.MethodGet,
			"/api/bids/"+bid.TenderID.String()+"/reviews?authorUsername=author&requesterUsername=reviewer", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"id":"550e8400-e29b-41d4-a716-446655440002","description":"late","createdAt":"2024-08-01T09:30:15Z"}]`,
			rec.Body.String())
	})
}

func TestBidStatusHandlers(t *testing.T) {
	bid := sampleBid()

	t.Run("get", func(t *testing.T) {
		s := newTestServer(t)
		s.bids.On("GetBidStatus", mock.Anything, bid.ID, "author").Return(entity.BidCreated, nil)

		rec := s.do(http.MethodGet, "/api/bids/"+bid.ID.String()+"/status?username=author", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"Created"}`, rec.Body.String())
	})

	t.Run("put returns the bid", func(t *testing.T) {
		s := newTestServer(t)
		published := bid
		published.Status = entity.BidPublished
		s.bids.On("UpdateBidStatus", mock.Anything, bid.ID, entity.BidPublished, "author").Return(published, nil)

		rec := s.do(http.MethodPut, "/api/bids/"+bid.ID.String()+"/status?status=Published&username=author", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var res dto.BidResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, entity.BidPublished, res.Status)
	})

	t.Run("missing bid", func(t *testing.T) {
		s := newTestServer(t)
		s.bids.On("GetBidStatus", mock.Anything, bid.ID, "author").Return(entity.BidStatus(""), service.ErrBidNotFound)

		rec := s.do(http.MethodGet, "/api/bids/"+bid.ID.String()+"/status?username=author", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, service.ErrBidNotFound.Error(), reason(t, rec))
	})
}

func TestBidMutationHandlers(t *testing.T) {
	bid := sampleBid()

	t.Run("edit", func(t *testing.T) {
		s := newTestServer(t)
		s.bids.On("EditBid", mock.Anything, bid.ID, "author", mock.MatchedBy(func(req dto.EditBidRequest) bool {
			return req.Name == nil && req.Description != nil && *req.Description == "Cheaper"
		})).Return(bid, nil)

		rec := s.do(http.MethodPatch, "/api/bids/"+bid.ID.String()+"/edit?username=author", `{"description":"Cheaper"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rollback", func(t *testing.T) {
		s := newTestServer(t)
		s.bids.On("RollbackBid", mock.Anything, bid.ID, 2, "author").Return(bid, nil)

		rec := s.do(http.MethodPut, "/api/bids/"+bid.ID.String()+"/rollback/2?username=author", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("decision", func(t *testing.T) {
		s := newTestServer(t)
		s.bids.On("SubmitDecision", mock.Anything, bid.ID, entity.DecisionApproved, "reviewer").Return(bid, nil)

		rec := s.do(http.MethodPut, "/api/bids/"+bid.ID.String()+"/submit_decision?decision=Approved&username=reviewer", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown decision", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodPut, "/api/bids/"+bid.ID.String()+"/submit_decision?decision=Maybe&username=reviewer", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("feedback", func(t *testing.T) {
		s := newTestServer(t)
		s.bids.On("SubmitFeedback", mock.Anything, bid.ID, "too slow", "reviewer").Return(bid, nil)

		rec := s.do(http.MethodPut, "/api/bids/"+bid.ID.String()+"/feedback?bidFeedback=too%20slow&username=reviewer", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
