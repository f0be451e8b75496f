package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tenders/internal/app/tendermanager/service"
	"tenders/internal/app/tendermanager/service/mocks"
	"tenders/internal/common/dto"
	"tenders/internal/domain/entity"
	"tenders/internal/repository"
)

type testServer struct {
	echo    *echo.Echo
	tenders *mocks.ITenderService
	bids    *mocks.IBidService
}

func newTestServer(t *testing.T) *testServer {
	s := &testServer{
		echo:    echo.New(),
		tenders: mocks.NewITenderService(t),
		bids:    mocks.NewIBidService(t),
	}
	s.echo.Validator = NewRequestValidator()
	s.echo.HTTPErrorHandler = ErrorHandler
	NewTenderManagerHandler(s.tenders, s.bids).RegisterRoutes(s.echo)
	return s
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func reason(t *testing.T, rec *httptest.ResponseRecorder) string {
	var res dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res.Reason
}

func sampleTender() entity.Tender {
	return entity.Tender{
		ID:             uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		Name:           "Road",
		Description:    "Road repair",
		Status:         entity.TenderCreated,
		ServiceType:    entity.ServiceConstruction,
		Version:        1,
		OrganizationID: uuid.MustParse("550e8400-e29b-41d4-a716-446655440001"),
		CreatedAt:      time.Date(2024, 8, 1, 12, 30, 15, 123456, time.FixedZone("MSK", 3*3600)),
	}
}

func sampleBid() entity.Bid {
	return entity.Bid{
		ID:          uuid.MustParse("550e8400-e29b-41d4-a716-446655440002"),
		Name:        "Offer",
		Description: "Cheap",
		Status:      entity.BidCreated,
		TenderID:    sampleTender().ID,
		AuthorType:  entity.AuthorUser,
		AuthorID:    uuid.MustParse("550e8400-e29b-41d4-a716-446655440003"),
		Version:     1,
		CreatedAt:   time.Date(2024, 8, 1, 9, 30, 15, 0, time.UTC),
	}
}

func TestPing(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/ping", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestListTendersHandler(t *testing.T) {
	t.Run("filters and paginates", func(t *testing.T) {
		s := newTestServer(t)
		want := repository.TenderFilter{
			ServiceTypes: []entity.ServiceType{entity.ServiceConstruction, entity.ServiceDelivery},
			Limit:        10,
			Offset:       2,
		}
		s.tenders.On("ListTenders", mock.Anything, want).Return([]entity.Tender{sampleTender()}, nil)

		rec := s.do(http.MethodGet, "/api/tenders?limit=10&offset=2&service_type=Construction&service_type=Delivery", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{
			"id": "550e8400-e29b-41d4-a716-446655440000",
			"name": "Road",
			"description": "Road repair",
			"status": "Created",
			"serviceType": "Construction",
			"organizationId": "550e8400-e29b-41d4-a716-446655440001",
			"version": 1,
			"createdAt": "2024-08-01T09:30:15Z"
		}]`, rec.Body.String())
	})

	t.Run("default page", func(t *testing.T) {
		s := newTestServer(t)
		s.tenders.On("ListTenders", mock.Anything, repository.TenderFilter{Limit: 5}).
			Return(nil, service.ErrTenderNotFound)

		rec := s.do(http.MethodGet, "/api/tenders", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, service.ErrTenderNotFound.Error(), reason(t, rec))
	})

	for _, query := range []string{"limit=51", "limit=-1", "offset=-1", "limit=abc"} {
		t.Run("rejects "+query, func(t *testing.T) {
			s := newTestServer(t)

			rec := s.do(http.MethodGet, "/api/tenders?"+query, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, reason(t, rec))
		})
	}
}

func TestCreateTenderHandler(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		s := newTestServer(t)
		tender := sampleTender()
		s.tenders.On("CreateTender", mock.Anything, dto.CreateTenderRequest{
			Name:            "Road",
			Description:     "Road repair",
			ServiceType:     entity.ServiceConstruction,
			OrganizationID:  tender.OrganizationID,
			CreatorUsername: "user1",
		}).Return(tender, nil)

		rec := s.do(http.MethodPost, "/api/tenders/new", `{
			"name": "Road",
			"description": "Road repair",
			"serviceType": "Construction",
			"organizationId": "550e8400-e29b-41d4-a716-446655440001",
			"creatorUsername": "user1"
		}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var res dto.TenderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, tender.ID, res.ID)
		assert.Equal(t, entity.TenderCreated, res.Status)
	})

	bad := map[string]string{
		"unknown service type": `{"name":"a","description":"b","serviceType":"Gardening","organizationId":"550e8400-e29b-41d4-a716-446655440001","creatorUsername":"u"}`,
		"missing name":         `{"description":"b","serviceType":"Delivery","organizationId":"550e8400-e29b-41d4-a716-446655440001","creatorUsername":"u"}`,
		"name too long":        `{"name":"` + strings.Repeat("x", 101) + `","description":"b","serviceType":"Delivery","organizationId":"550e8400-e29b-41d4-a716-446655440001","creatorUsername":"u"}`,
		"broken uuid":          `{"name":"a","description":"b","serviceType":"Delivery","organizationId":"nope","creatorUsername":"u"}`,
		"not json":             `{"name":`,
	}
	for name, body := range bad {
		t.Run(name, func(t *testing.T) {
			s := newTestServer(t)

			rec := s.do(http.MethodPost, "/api/tenders/new", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	t.Run("service errors map to status codes", func(t *testing.T) {
		cases := map[error]int{
			service.ErrUserNotFound:  http.StatusUnauthorized,
			service.ErrForbidden:     http.StatusForbidden,
			errors.New("db is down"): http.StatusInternalServerError,
		}
		for err, code := range cases {
			s := newTestServer(t)
			s.tenders.On("CreateTender", mock.Anything, mock.Anything).Return(entity.Tender{}, err)

			rec := s.do(http.MethodPost, "/api/tenders/new",
				`{"name":"a","description":"b","serviceType":"Delivery","organizationId":"550e8400-e29b-41d4-a716-446655440001","creatorUsername":"u"}`)

			assert.Equal(t, code, rec.Code, err.Error())
			assert.NotContains(t, reason(t, rec), "db is down")
		}
	})
}

func TestTenderStatusHandlers(t *testing.T) {
	tender := sampleTender()

	t.Run("get", func(t *testing.T) {
		s := newTestServer(t)
		s.tenders.On("GetTenderStatus", mock.Anything, tender.ID, "user1").Return(entity.TenderPublished, nil)

		rec := s.do(http.MethodGet, "/api/tenders/"+tender.ID.String()+"/status?username=user1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"Published"}`, rec.Body.String())
	})

	t.Run("put", func(t *testing.T) {
		s := newTestServer(t)
		closed := tender
		closed.Status = entity.TenderClosed
		s.tenders.On("UpdateTenderStatus", mock.Anything, tender.ID, entity.TenderClosed, "user1").Return(closed, nil)

		rec := s.do(http.MethodPut, "/api/tenders/"+tender.ID.String()+"/status?status=Closed&username=user1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"Closed"}`, rec.Body.String())
	})

	t.Run("put unknown status", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodPut, "/api/tenders/"+tender.ID.String()+"/status?status=Archived&username=user1", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodGet, "/api/tenders/42/status?username=user1", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEditAndRollbackTenderHandlers(t *testing.T) {
	tender := sampleTender()

	t.Run("edit passes only provided fields", func(t *testing.T) {
		s := newTestServer(t)
		edited := tender
		edited.Name = "Bridge"
		edited.Version = 2
		s.tenders.On("EditTender", mock.Anything, tender.ID, "user1", mock.MatchedBy(func(req dto.EditTenderRequest) bool {
			return req.Name != nil && *req.Name == "Bridge" && req.Description == nil && req.ServiceType == nil
		})).Return(edited, nil)

		rec := s.do(http.MethodPatch, "/api/tenders/"+tender.ID.String()+"/edit?username=user1", `{"name":"Bridge"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var res dto.TenderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, 2, res.Version)
		assert.Equal(t, "Bridge", res.Name)
	})

	t.Run("concurrent edit is a conflict", func(t *testing.T) {
		s := newTestServer(t)
		s.tenders.On("EditTender", mock.Anything, tender.ID, "user1", mock.Anything).Return(entity.Tender{}, service.ErrConflict)

		rec := s.do(http.MethodPatch, "/api/tenders/"+tender.ID.String()+"/edit?username=user1", `{"name":"Bridge"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, service.ErrConflict.Error(), reason(t, rec))
	})

	t.Run("rollback", func(t *testing.T) {
		s := newTestServer(t)
		s.tenders.On("RollbackTender", mock.Anything, tender.ID, 1, "user1").Return(entity.Tender{}, service.ErrVersionNotFound)

		rec := s.do(http.MethodPut, "/api/tenders/"+tender.ID.String()+"/rollback/1?username=user1", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, service.ErrVersionNotFound.Error(), reason(t, rec))
	})

	t.Run("rollback to a non-numeric version", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodPut, "/api/tenders/"+tender.ID.String()+"/rollback/latest?username=user1", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserTendersHandler(t *testing.T) {
	s := newTestServer(t)
	s.tenders.On("ListUserTenders", mock.Anything, "", 5, 0).Return(nil, service.ErrUserNotFound)

	rec := s.do(http.MethodGet, "/api/tenders/my", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
