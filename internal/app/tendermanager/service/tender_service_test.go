package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tenders/internal/cache"
	"tenders/internal/common/dto"
	"tenders/internal/domain/entity"
	"tenders/internal/repository"
	"tenders/internal/repository/mocks"
)

type fakeCache struct {
	gen         cache.Generation
	stored      map[string][]entity.Tender
	invalidated int
}

func newFakeCache() *fakeCache {
	return &fakeCache{stored: map[string][]entity.Tender{}}
}

func (c *fakeCache) key(gen cache.Generation, filter repository.TenderFilter) string {
	return fmt.Sprintf("%d:%s", gen, cache.ListKey(filter))
}

func (c *fakeCache) Get(_ context.Context, filter repository.TenderFilter) ([]entity.Tender, cache.Generation, bool) {
	t, ok := c.stored[c.key(c.gen, filter)]
	return t, c.gen, ok
}

func (c *fakeCache) Set(_ context.Context, gen cache.Generation, filter repository.TenderFilter, tenders []entity.Tender) {
	c.stored[c.key(gen, filter)] = tenders
}

func (c *fakeCache) Invalidate(context.Context) {
	c.invalidated++
	c.gen++
}

type tenderFixture struct {
	tenders   *mocks.ITenderRepository
	employees *mocks.IEmployeeRepository
	cache     *fakeCache
	service   *TenderService

	user   entity.Employee
	org    uuid.UUID
	tender entity.Tender
}

func newTenderFixture(t *testing.T) *tenderFixture {
	f := &tenderFixture{
		tenders:   mocks.NewITenderRepository(t),
		employees: mocks.NewIEmployeeRepository(t),
		cache:     newFakeCache(),
		user:      entity.Employee{ID: uuid.New(), Username: "user1"},
		org:       uuid.New(),
	}
	f.tender = entity.Tender{
		ID:              uuid.New(),
		Name:            "Road",
		Description:     "Road repair",
		Status:          entity.TenderCreated,
		ServiceType:     entity.ServiceConstruction,
		Version:         1,
		OrganizationID:  f.org,
		CreatorUsername: "someone-else",
		CreatedAt:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	f.service = NewTenderService(f.tenders, f.employees, f.cache, nil)
	return f
}

func (f *tenderFixture) knownUser() {
	f.employees.On("FindByUsername", mock.Anything, f.user.Username).Return(f.user, nil)
}

func (f *tenderFixture) responsible(ok bool) {
	if ok {
		f.employees.On("FindResponsible", mock.Anything, f.user.ID, f.org).
			Return(entity.OrganizationResponsible{ID: uuid.New(), UserID: f.user.ID, OrganizationID: f.org}, nil)
		return
	}
	f.employees.On("FindResponsible", mock.Anything, f.user.ID, f.org).
		Return(entity.OrganizationResponsible{}, repository.ErrNotFound)
}

func TestListTenders(t *testing.T) {
	t.Run("caches the first page", func(t *testing.T) {
		f := newTenderFixture(t)
		filter := repository.TenderFilter{Limit: 5}
		f.tenders.On("List", mock.Anything, filter).Return([]entity.Tender{f.tender}, nil).Once()

		first, err := f.service.ListTenders(context.Background(), filter)
		require.NoError(t, err)
		second, err := f.service.ListTenders(context.Background(), filter)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		f.tenders.AssertNumberOfCalls(t, "List", 1)
	})

	t.Run("write during a miss is not cached", func(t *testing.T) {
		f := newTenderFixture(t)
		filter := repository.TenderFilter{Limit: 5}
		f.tenders.On("List", mock.Anything, filter).
			Run(func(args mock.Arguments) { f.cache.Invalidate(args.Get(0).(context.Context)) }).
			Return([]entity.Tender{f.tender}, nil).Once()
		f.tenders.On("List", mock.Anything, filter).Return([]entity.Tender{f.tender}, nil).Once()

		_, err := f.service.ListTenders(context.Background(), filter)
		require.NoError(t, err)
		_, err = f.service.ListTenders(context.Background(), filter)
		require.NoError(t, err)

		f.tenders.AssertNumberOfCalls(t, "List", 2)
	})

	t.Run("empty result is not found", func(t *testing.T) {
		f := newTenderFixture(t)
		f.tenders.On("List", mock.Anything, mock.Anything).Return(nil, nil)

		_, err := f.service.ListTenders(context.Background(), repository.TenderFilter{Limit: 5})
		assert.ErrorIs(t, err, ErrTenderNotFound)
	})

	t.Run("unknown service type", func(t *testing.T) {
		f := newTenderFixture(t)

		_, err := f.service.ListTenders(context.Background(), repository.TenderFilter{
			ServiceTypes: []entity.ServiceType{"Gardening"},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCreateTender(t *testing.T) {
	req := func(f *tenderFixture) dto.CreateTenderRequest {
		return dto.CreateTenderRequest{
			Name:            "Bridge",
			Description:     "Bridge repair",
			ServiceType:     entity.ServiceConstruction,
			OrganizationID:  f.org,
			CreatorUsername: f.user.Username,
		}
	}

	t.Run("responsible creates a tender", func(t *testing.T) {
		f := newTenderFixture(t)
		f.knownUser()
		f.responsible(true)
		f.tenders.On("Create", mock.Anything, mock.MatchedBy(func(tender *entity.Tender) bool {
			return tender.Status == entity.TenderCreated && tender.Version == 1 && tender.CreatorUsername == "user1"
		})).Return(nil)

		tender, err := f.service.CreateTender(context.Background(), req(f))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, tender.ID)
		assert.Equal(t, "Bridge", tender.Name)
		assert.Equal(t, f.org, tender.OrganizationID)
		assert.Equal(t, 1, f.cache.invalidated)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newTenderFixture(t)
		f.employees.On("FindByUsername", mock.Anything, "user1").Return(entity.Employee{}, repository.ErrNotFound)

		_, err := f.service.CreateTender(context.Background(), req(f))
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("not responsible", func(t *testing.T) {
		f := newTenderFixture(t)
		f.knownUser()
		f.responsible(false)

		_, err := f.service.CreateTender(context.Background(), req(f))
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("database failure is not a domain error", func(t *testing.T) {
		f := newTenderFixture(t)
		f.knownUser()
		f.responsible(true)
		f.tenders.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

		_, err := f.service.CreateTender(context.Background(), req(f))
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidInput)
		assert.Zero(t, f.cache.invalidated)
	})
}

func TestListUserTenders(t *testing.T) {
	f := newTenderFixture(t)
	f.knownUser()
	f.tenders.On("ListByResponsible", mock.Anything, f.user.ID, 5, 0).Return([]entity.Tender{f.tender}, nil)

	tenders, err := f.service.ListUserTenders(context.Background(), "user1", 5, 0)
	require.NoError(t, err)
	assert.Len(t, tenders, 1)

	_, err = f.service.ListUserTenders(context.Background(), "", 5, 0)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetTenderStatus(t *testing.T) {
	t.Run("creator may read", func(t *testing.T) {
		f := newTenderFixture(t)
		f.tender.CreatorUsername = f.user.Username
		f.knownUser()
		f.tenders.On("FindByID", mock.Anything, f.tender.ID).Return(f.tender, nil)

		status, err := f.service.GetTenderStatus(context.Background(), f.tender.ID, "user1")
		require.NoError(t, err)
		assert.Equal(t, entity.TenderCreated, status)
	})

	t.Run("stranger may not", func(t *testing.T) {
		f := newTenderFixture(t)
		f.knownUser()
		f.responsible(false)
		f.tenders.On("FindByID", mock.Anything, f.tender.ID).Return(f.tender, nil)

		_, err := f.service.GetTenderStatus(context.Background(), f.tender.ID, "user1")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("missing tender", func(t *testing.T) {
		f := newTenderFixture(t)
		f.knownUser()
		f.tenders.On("FindByID", mock.Anything, mock.Anything).Return(entity.Tender{}, repository.ErrNotFound)

		_, err := f.service.GetTenderStatus(context.Background(), uuid.New(), "user1")
		assert.ErrorIs(t, err, ErrTenderNotFound)
	})
}

func TestUpdateTenderStatus(t *testing.T) {
	f := newTenderFixture(t)
	f.knownUser()
	f.responsible(true)
	f.tenders.On("FindByID", mock.Anything, f.tender.ID).Return(f.tender, nil)
	f.tenders.On("UpdateStatus", mock.Anything, f.tender.ID, entity.TenderPublished).Return(nil)

	tender, err := f.service.UpdateTenderStatus(context.Background(), f.tender.ID, entity.TenderPublished, "user1")
	require.NoError(t, err)
	assert.Equal(t, entity.TenderPublished, tender.Status)
	assert.Equal(t, 1, tender.Version, "status changes do not create versions")
	assert.Equal(t, 1, f.cache.invalidated)

	_, err = f.service.UpdateTenderStatus(context.Background(), f.tender.ID, "Archived", "user1")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEditTender(t *testing.T) {
	f := newTenderFixture(t)
	f.knownUser()
	f.responsible(true)
	f.tenders.On("FindByID", mock.Anything, f.tender.ID).Return(f.tender, nil)

	var snapshot *entity.TenderVersion
	f.tenders.On("UpdateWithSnapshot", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { snapshot = args.Get(2).(*entity.TenderVersion) }).
		Return(nil)

	name := "Bridge"
	delivery := entity.ServiceDelivery
	tender, err := f.service.EditTender(context.Background(), f.tender.ID, "user1", dto.EditTenderRequest{
		Name:        &name,
		ServiceType: &delivery,
	})
	require.NoError(t, err)

	assert.Equal(t, "Bridge", tender.Name)
	assert.Equal(t, "Road repair", tender.Description)
	assert.Equal(t, entity.ServiceDelivery, tender.ServiceType)
	assert.Equal(t, 2, tender.Version)

	require.NotNil(t, snapshot)
	assert.Equal(t, f.tender.ID, snapshot.TenderID)
	assert.NotEqual(t, f.tender.ID, snapshot.ID)
	assert.Equal(t, "Road", snapshot.Name)
	assert.Equal(t, entity.ServiceConstruction, snapshot.ServiceType)
	assert.Equal(t, 1, snapshot.Version)
	assert.Equal(t, f.tender.CreatedAt, snapshot.CreatedAt)
}

func TestEditTenderConflict(t *testing.T) {
	f := newTenderFixture(t)
	f.knownUser()
	f.responsible(true)
	f.tenders.On("FindByID", mock.Anything, f.tender.ID).Return(f.tender, nil)
	f.tenders.On("UpdateWithSnapshot", mock.Anything, mock.Anything, mock.Anything).Return(repository.ErrConflict)

	name := "Bridge"
	_, err := f.service.EditTender(context.Background(), f.tender.ID, "user1", dto.EditTenderRequest{Name: &name})

	assert.ErrorIs(t, err, ErrConflict)
	assert.Zero(t, f.cache.invalidated)
}

func TestRollbackTender(t *testing.T) {
	t.Run("restores the stored version as a new version", func(t *testing.T) {
		f := newTenderFixture(t)
		f.tender.Version = 3
		f.tender.Name = "Bridge v3"
		f.knownUser()
		f.responsible(true)
		f.tenders.On("FindByID", mock.Anything, f.tender.ID).Return(f.tender, nil)
		f.tenders.On("FindVersion", mock.Anything, f.tender.ID, 1).Return(entity.TenderVersion{
			TenderID:    f.tender.ID,
			Name:        "Bridge v1",
			Description: "first",
			Status:      entity.TenderCreated,
			ServiceType: entity.ServiceManufacture,
			Version:     1,
		}, nil)
		f.tenders.On("UpdateWithSnapshot", mock.Anything,
			mock.MatchedBy(func(tender *entity.Tender) bool { return tender.Version == 4 }),
			mock.MatchedBy(func(v *entity.TenderVersion) bool { return v.Version == 3 && v.Name == "Bridge v3" }),
		).Return(nil)

		tender, err := f.service.RollbackTender(context.Background(), f.tender.ID, 1, "user1")
		require.NoError(t, err)
		assert.Equal(t, "Bridge v1", tender.Name)
		assert.Equal(t, "first", tender.Description)
		assert.Equal(t, entity.ServiceManufacture, tender.ServiceType)
		assert.Equal(t, 4, tender.Version)
		assert.Equal(t, f.tender.CreatedAt, tender.CreatedAt)
	})

	t.Run("unknown version", func(t *testing.T) {
		f := newTenderFixture(t)
		f.knownUser()
		f.responsible(true)
		f.tenders.On("FindByID", mock.Anything, f.tender.ID).Return(f.tender, nil)
		f.tenders.On("FindVersion", mock.Anything, f.tender.ID, 7).Return(entity.TenderVersion{}, repository.ErrNotFound)

		_, err := f.service.RollbackTender(context.Background(), f.tender.ID, 7, "user1")
		assert.ErrorIs(t, err, ErrVersionNotFound)
	})

	t.Run("version must be positive", func(t *testing.T) {
		f := newTenderFixture(t)

		_, err := f.service.RollbackTender(context.Background(), f.tender.ID, 0, "user1")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
