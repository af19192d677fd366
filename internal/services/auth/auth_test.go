package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ironman-fitness/gym-manager/internal/lib/jwt"
	"github.com/ironman-fitness/gym-manager/internal/lib/password"
	"github.com/ironman-fitness/gym-manager/internal/models"
	services "github.com/ironman-fitness/gym-manager/internal/services/auth"
)

type UserRepositoryMock struct {
	mock.Mock
}

func (m *UserRepositoryMock) CreateUser(ctx context.Context, user models.User) (int, error) {
	args := m.Called(ctx, user)
	return args.Int(0), args.Error(1)
}

func (m *UserRepositoryMock) GetUserByName(ctx context.Context, name string) (*models.User, error) {
	args := m.Called(ctx, name)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepositoryMock) LastMemberID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func newService(repo *UserRepositoryMock) *services.AuthService {
	maker := jwt.NewMaker("test-secret", time.Hour)
	return services.NewAuthService(repo, maker)
}

func TestLogin(t *testing.T) {
	hash, err := password.GetHash("correct-password")
	require.NoError(t, err)

	activeUser := &models.User{
		Name:         "alice",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Status:       models.StatusActive,
	}
	inactiveUser := &models.User{
		Name:         "bob",
		PasswordHash: hash,
		Role:         models.RoleCustomer,
		Status:       models.StatusInactive,
	}

	tests := []struct {
		name        string
		username    string
		rawPassword string
		mockUser    *models.User
		mockErr     error
		wantRole    string
		wantErr     error
	}{
		{
			name:        "успешный вход возвращает роль из хранилища",
			username:    "alice",
			rawPassword: "correct-password",
			mockUser:    activeUser,
			wantRole:    models.RoleAdmin,
		},
		{
			name:        "неизвестное имя",
			username:    "ghost",
			rawPassword: "correct-password",
			mockErr:     models.ErrNotFound,
			wantErr:     models.ErrInvalidCredentials,
		},
		{
			name:        "неверный пароль",
			username:    "alice",
			rawPassword: "wrong-password",
			mockUser:    activeUser,
			wantErr:     models.ErrInvalidCredentials,
		},
		{
			name:        "неактивная учётная запись при верном пароле",
			username:    "bob",
			rawPassword: "correct-password",
			mockUser:    inactiveUser,
			wantErr:     models.ErrAccountInactive,
		},
		{
			name:        "неверный пароль скрывает неактивность",
			username:    "bob",
			rawPassword: "wrong-password",
			mockUser:    inactiveUser,
			wantErr:     models.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepositoryMock)
			repo.On("GetUserByName", mock.Anything, tt.username).
				Return(tt.mockUser, tt.mockErr).Once()

			token, role, err := newService(repo).Login(context.Background(), tt.username, tt.rawPassword)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Equal(t, tt.wantRole, role)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestRegister(t *testing.T) {
	t.Run("повторная регистрация имени в любом регистре", func(t *testing.T) {
		repo := new(UserRepositoryMock)
		repo.On("GetUserByName", mock.Anything, "alice").
			Return(&models.User{Name: "alice"}, nil).Once()

		_, err := newService(repo).Register(context.Background(), "Alice", "secret")

		require.ErrorIs(t, err, models.ErrDuplicate)
		repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("новому пользователю выдаётся следующий членский номер", func(t *testing.T) {
		repo := new(UserRepositoryMock)
		repo.On("GetUserByName", mock.Anything, "carol").
			Return(nil, models.ErrNotFound).Once()
		repo.On("LastMemberID", mock.Anything).Return("MEM07", nil).Once()
		repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
			return u.MemberID == "MEM08" &&
				u.Name == "carol" &&
				u.Role == models.RoleCustomer &&
				u.Status == models.StatusActive &&
				u.PasswordHash != "" &&
				u.PasswordHash != "secret"
		})).Return(1, nil).Once()

		memberID, err := newService(repo).Register(context.Background(), "Carol", "secret")

		require.NoError(t, err)
		assert.Equal(t, "MEM08", memberID)
		repo.AssertExpectations(t)
	})
}

func TestLandingRoute(t *testing.T) {
	assert.Equal(t, "/dashboard/admin", services.LandingRoute("admin"))
	assert.Equal(t, "/dashboard/customer", services.LandingRoute("customer"))
}
