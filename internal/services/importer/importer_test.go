package services_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ironman-fitness/gym-manager/internal/models"
	services "github.com/ironman-fitness/gym-manager/internal/services/importer"
)

type UserRepositoryMock struct {
	mock.Mock
}

func (m *UserRepositoryMock) CreateUser(ctx context.Context, user models.User) (int, error) {
	args := m.Called(ctx, user)
	return args.Int(0), args.Error(1)
}

func (m *UserRepositoryMock) FindUserConflict(ctx context.Context, name, email, mobileNumber string) (bool, error) {
	args := m.Called(ctx, name, email, mobileNumber)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepositoryMock) LastMemberID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestImportUsers(t *testing.T) {
	t.Run("строки с дефолтами и отклонённая строка без имени", func(t *testing.T) {
		csv := strings.Join([]string{
			"name,email,mobile_number,role,status",
			"Alice,alice@example.com,+70000000001,,",
			",missing@example.com,+70000000002,,",
			"Bob,bob@example.com,+70000000003,staff,inactive",
		}, "\n")

		repo := new(UserRepositoryMock)
		repo.On("FindUserConflict", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(false, nil).Twice()
		repo.On("LastMemberID", mock.Anything).Return("", nil).Once()
		repo.On("LastMemberID", mock.Anything).Return("MEM01", nil).Once()
		repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
			return u.Name == "alice" && u.MemberID == "MEM01" &&
				u.Role == models.RoleCustomer && u.Status == models.StatusActive &&
				u.PasswordHash != ""
		})).Return(1, nil).Once()
		repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
			return u.Name == "bob" && u.MemberID == "MEM02" &&
				u.Role == models.RoleStaff && u.Status == models.StatusInactive
		})).Return(2, nil).Once()

		svc := services.NewImportService(repo, newNoopLogger())
		res, err := svc.ImportUsers(context.Background(), "users.csv", strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, 2, res.Success)
		assert.Equal(t, 1, res.Failed)
		repo.AssertExpectations(t)
	})

	t.Run("дубликат считается отклонённой строкой, прогон не прерывается", func(t *testing.T) {
		csv := strings.Join([]string{
			"name",
			"alice",
			"carol",
		}, "\n")

		repo := new(UserRepositoryMock)
		repo.On("FindUserConflict", mock.Anything, "alice", "", "").Return(true, nil).Once()
		repo.On("FindUserConflict", mock.Anything, "carol", "", "").Return(false, nil).Once()
		repo.On("LastMemberID", mock.Anything).Return("MEM05", nil).Once()
		repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
			return u.Name == "carol" && u.MemberID == "MEM06"
		})).Return(7, nil).Once()

		svc := services.NewImportService(repo, newNoopLogger())
		res, err := svc.ImportUsers(context.Background(), "users.csv", strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, 1, res.Success)
		assert.Equal(t, 1, res.Failed)
	})

	t.Run("нечитаемый файл", func(t *testing.T) {
		svc := services.NewImportService(new(UserRepositoryMock), newNoopLogger())
		_, err := svc.ImportUsers(context.Background(), "users.xlsx", strings.NewReader("not an xlsx"))

		require.Error(t, err)
	})
}
