package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ironman-fitness/gym-manager/internal/models"
	services "github.com/ironman-fitness/gym-manager/internal/services/plan"
)

type PlanRepositoryMock struct {
	mock.Mock
}

func (m *PlanRepositoryMock) CreatePlan(ctx context.Context, plan models.Plan) (int, error) {
	args := m.Called(ctx, plan)
	return args.Int(0), args.Error(1)
}

func (m *PlanRepositoryMock) ListPlans(ctx context.Context) ([]*models.Plan, error) {
	args := m.Called(ctx)
	plans, _ := args.Get(0).([]*models.Plan)
	return plans, args.Error(1)
}

func (m *PlanRepositoryMock) UpdatePlan(ctx context.Context, id int, plan models.Plan) (int, error) {
	args := m.Called(ctx, id, plan)
	return args.Int(0), args.Error(1)
}

func (m *PlanRepositoryMock) DeletePlan(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *PlanRepositoryMock) LastPlanID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type CacheMock struct {
	mock.Mock
}

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *CacheMock) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestCreate(t *testing.T) {
	t.Run("план получает следующий SUB и сбрасывает кеш", func(t *testing.T) {
		repo := new(PlanRepositoryMock)
		cache := new(CacheMock)
		repo.On("LastPlanID", mock.Anything).Return("SUB04", nil).Once()
		repo.On("CreatePlan", mock.Anything, mock.MatchedBy(func(p models.Plan) bool {
			return p.PlanID == "SUB05"
		})).Return(5, nil).Once()
		cache.On("Invalidate", "plans:all").Return(nil).Once()

		svc := services.NewPlanService(repo, cache, newNoopLogger())
		planID, err := svc.Create(context.Background(), models.DummyPlan{
			Name: "Gold", Duration: 3, Price: 99.9, Status: models.StatusActive,
		})

		require.NoError(t, err)
		assert.Equal(t, "SUB05", planID)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})
}

func TestList(t *testing.T) {
	t.Run("промах кеша читает хранилище и кеширует", func(t *testing.T) {
		repo := new(PlanRepositoryMock)
		cache := new(CacheMock)
		plans := []*models.Plan{{ID: 1, PlanID: "SUB01", Name: "Basic", Duration: 1}}
		cache.On("Get", "plans:all", mock.Anything).Return(false, nil).Once()
		repo.On("ListPlans", mock.Anything).Return(plans, nil).Once()
		cache.On("Set", "plans:all", plans, time.Hour).Return(nil).Once()

		svc := services.NewPlanService(repo, cache, newNoopLogger())
		got, err := svc.List(context.Background())

		require.NoError(t, err)
		assert.Equal(t, plans, got)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("попадание в кеш не обращается к хранилищу", func(t *testing.T) {
		repo := new(PlanRepositoryMock)
		cache := new(CacheMock)
		cache.On("Get", "plans:all", mock.Anything).Return(true, nil).Once()

		svc := services.NewPlanService(repo, cache, newNoopLogger())
		_, err := svc.List(context.Background())

		require.NoError(t, err)
		repo.AssertNotCalled(t, "ListPlans", mock.Anything)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("отсутствующий план", func(t *testing.T) {
		repo := new(PlanRepositoryMock)
		cache := new(CacheMock)
		repo.On("UpdatePlan", mock.Anything, 42, mock.Anything).Return(0, nil).Once()

		svc := services.NewPlanService(repo, cache, newNoopLogger())
		err := svc.Update(context.Background(), 42, models.DummyPlan{Name: "Gold", Duration: 1})

		require.ErrorIs(t, err, models.ErrNotFound)
		cache.AssertNotCalled(t, "Invalidate", mock.Anything)
	})
}

func TestDelete(t *testing.T) {
	t.Run("удаление сбрасывает кеш", func(t *testing.T) {
		repo := new(PlanRepositoryMock)
		cache := new(CacheMock)
		repo.On("DeletePlan", mock.Anything, 2).Return(1, nil).Once()
		cache.On("Invalidate", "plans:all").Return(nil).Once()

		svc := services.NewPlanService(repo, cache, newNoopLogger())
		err := svc.Delete(context.Background(), 2)

		require.NoError(t, err)
		cache.AssertExpectations(t)
	})
}
