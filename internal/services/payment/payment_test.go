package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ironman-fitness/gym-manager/internal/models"
	services "github.com/ironman-fitness/gym-manager/internal/services/payment"
)

type PaymentRepositoryMock struct {
	mock.Mock
}

func (m *PaymentRepositoryMock) CreatePayment(ctx context.Context, payment models.Payment) (int, error) {
	args := m.Called(ctx, payment)
	return args.Int(0), args.Error(1)
}

func (m *PaymentRepositoryMock) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	args := m.Called(ctx)
	payments, _ := args.Get(0).([]*models.Payment)
	return payments, args.Error(1)
}

func (m *PaymentRepositoryMock) ListPaymentsByUser(ctx context.Context, userID int) ([]*models.Payment, error) {
	args := m.Called(ctx, userID)
	payments, _ := args.Get(0).([]*models.Payment)
	return payments, args.Error(1)
}

func (m *PaymentRepositoryMock) LastTransactionID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type PlanReaderMock struct {
	mock.Mock
}

func (m *PlanReaderMock) GetPlan(ctx context.Context, id int) (*models.Plan, error) {
	args := m.Called(ctx, id)
	plan, _ := args.Get(0).(*models.Plan)
	return plan, args.Error(1)
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCreate(t *testing.T) {
	t.Run("дата окончания сдвигается на срок плана", func(t *testing.T) {
		repo := new(PaymentRepositoryMock)
		plans := new(PlanReaderMock)
		plans.On("GetPlan", mock.Anything, 2).
			Return(&models.Plan{ID: 2, PlanID: "SUB02", Duration: 3}, nil).Once()
		repo.On("LastTransactionID", mock.Anything).Return("PAID09", nil).Once()
		repo.On("CreatePayment", mock.Anything, mock.MatchedBy(func(p models.Payment) bool {
			return p.TransactionID == "PAID10" &&
				p.ExpiryDate.Equal(date("2024-04-15"))
		})).Return(1, nil).Once()

		svc := services.NewPaymentService(repo, plans)
		transactionID, err := svc.Create(context.Background(), models.DummyPayment{
			UserID: 1, PlanID: 2, Amount: 50, Date: "2024-01-15",
		})

		require.NoError(t, err)
		assert.Equal(t, "PAID10", transactionID)
		repo.AssertExpectations(t)
	})

	t.Run("отсутствующая дата", func(t *testing.T) {
		svc := services.NewPaymentService(new(PaymentRepositoryMock), new(PlanReaderMock))
		_, err := svc.Create(context.Background(), models.DummyPayment{UserID: 1, PlanID: 2})

		require.ErrorIs(t, err, models.ErrMissingDate)
	})

	t.Run("неразбираемая дата", func(t *testing.T) {
		svc := services.NewPaymentService(new(PaymentRepositoryMock), new(PlanReaderMock))
		_, err := svc.Create(context.Background(), models.DummyPayment{
			UserID: 1, PlanID: 2, Date: "15/01/2024",
		})

		require.ErrorIs(t, err, models.ErrMissingDate)
	})

	t.Run("неизвестный план", func(t *testing.T) {
		repo := new(PaymentRepositoryMock)
		plans := new(PlanReaderMock)
		plans.On("GetPlan", mock.Anything, 77).Return(nil, models.ErrNotFound).Once()

		svc := services.NewPaymentService(repo, plans)
		_, err := svc.Create(context.Background(), models.DummyPayment{
			UserID: 1, PlanID: 77, Date: "2024-01-15",
		})

		require.ErrorIs(t, err, models.ErrMissingPlan)
		repo.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
	})
}

func TestHistoryByUser(t *testing.T) {
	t.Run("история с висящей ссылкой на план", func(t *testing.T) {
		repo := new(PaymentRepositoryMock)
		plans := new(PlanReaderMock)
		repo.On("ListPaymentsByUser", mock.Anything, 1).Return([]*models.Payment{
			{TransactionID: "PAID02", PlanID: 2, Amount: 60,
				Date: date("2024-02-01"), ExpiryDate: date("2024-03-01")},
			{TransactionID: "PAID01", PlanID: 9, Amount: 50,
				Date: date("2024-01-01"), ExpiryDate: date("2024-02-01")},
		}, nil).Once()
		plans.On("GetPlan", mock.Anything, 2).
			Return(&models.Plan{ID: 2, PlanID: "SUB02", Name: "Gold"}, nil).Once()
		plans.On("GetPlan", mock.Anything, 9).Return(nil, models.ErrNotFound).Once()

		svc := services.NewPaymentService(repo, plans)
		history, currentExpiry, err := svc.HistoryByUser(context.Background(), 1)

		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, "Gold", history[0].PlanName)
		assert.Equal(t, "SUB02", history[0].PlanID)
		assert.Equal(t, "No plan", history[1].PlanName)
		assert.Equal(t, models.FieldMissing, history[1].PlanID)
		assert.Equal(t, "2024-03-01", currentExpiry)
	})

	t.Run("пустая история даёт N/A", func(t *testing.T) {
		repo := new(PaymentRepositoryMock)
		repo.On("ListPaymentsByUser", mock.Anything, 5).Return(nil, nil).Once()

		svc := services.NewPaymentService(repo, new(PlanReaderMock))
		history, currentExpiry, err := svc.HistoryByUser(context.Background(), 5)

		require.NoError(t, err)
		assert.Empty(t, history)
		assert.Equal(t, models.FieldMissing, currentExpiry)
	})
}
