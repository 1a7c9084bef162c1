package service_test

import (
	"context"
	"testing"
	"time"

	"raffle-manager/config"
	"raffle-manager/internal/model"
	repoMocks "raffle-manager/internal/repository/mocks"
	"raffle-manager/internal/service"
	apperrors "raffle-manager/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}
}

func TestAuthService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - stores bcrypt hash, never the password", func(t *testing.T) {
		users := repoMocks.NewUserRepositoryMock()
		authService := service.NewAuthService(users, testAuthConfig())

		users.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
			if u.ID == "" || u.PasswordHash == "hunter2hunter2" {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2hunter2")) == nil
		})).Return(&model.User{ID: "u1", Email: "alice@example.com", Role: model.RoleUser}, nil).Once()

		user, err := authService.CreateUser(ctx, "Alice", "alice@example.com", "hunter2hunter2", model.RoleUser)

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		users.AssertExpectations(t)
	})

	t.Run("Failed - unknown role", func(t *testing.T) {
		users := repoMocks.NewUserRepositoryMock()
		authService := service.NewAuthService(users, testAuthConfig())

		_, err := authService.CreateUser(ctx, "Alice", "alice@example.com", "hunter2hunter2", "owner")

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Failed - ErrEmailExists bubbles up", func(t *testing.T) {
		users := repoMocks.NewUserRepositoryMock()
		authService := service.NewAuthService(users, testAuthConfig())

		users.On("Create", ctx, mock.Anything).Return(nil, apperrors.ErrEmailExists).Once()

		_, err := authService.CreateUser(ctx, "Alice", "alice@example.com", "hunter2hunter2", model.RoleUser)

		assert.ErrorIs(t, err, apperrors.ErrEmailExists)
	})
}

func TestAuthService_LoginAndVerify(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	storedUser := &model.User{
		ID:           "u1",
		Name:         "Alice",
		Email:        "alice@example.com",
		Role:         model.RoleAdmin,
		PasswordHash: string(hash),
	}

	t.Run("Success - token round-trips to the same identity", func(t *testing.T) {
		users := repoMocks.NewUserRepositoryMock()
		authService := service.NewAuthService(users, testAuthConfig())

		users.On("FindByEmail", ctx, "alice@example.com").Return(storedUser, nil).Once()

		user, token, err := authService.Login(ctx, "alice@example.com", "hunter2hunter2")
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.NotEmpty(t, token)

		identity, err := authService.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, "u1", identity.UserID)
		assert.Equal(t, model.RoleAdmin, identity.Role)
		assert.True(t, identity.IsAdmin())
	})

	t.Run("Failed - ErrWrongPassword", func(t *testing.T) {
		users := repoMocks.NewUserRepositoryMock()
		authService := service.NewAuthService(users, testAuthConfig())

		users.On("FindByEmail", ctx, "alice@example.com").Return(storedUser, nil).Once()

		_, _, err := authService.Login(ctx, "alice@example.com", "wrong")

		assert.ErrorIs(t, err, apperrors.ErrWrongPassword)
	})

	t.Run("Failed - unknown email", func(t *testing.T) {
		users := repoMocks.NewUserRepositoryMock()
		authService := service.NewAuthService(users, testAuthConfig())

		users.On("FindByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrUserNotFound).Once()

		_, _, err := authService.Login(ctx, "nobody@example.com", "hunter2hunter2")

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("Failed - garbage token", func(t *testing.T) {
		users := repoMocks.NewUserRepositoryMock()
		authService := service.NewAuthService(users, testAuthConfig())

		_, err := authService.VerifyToken("not.a.jwt")

		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("Failed - token signed with a different secret", func(t *testing.T) {
		users := repoMocks.NewUserRepositoryMock()
		authService := service.NewAuthService(users, testAuthConfig())

		otherService := service.NewAuthService(users, config.AuthConfig{JWTSecret: "other-secret", TokenTTL: time.Hour})
		users.On("FindByEmail", ctx, "alice@example.com").Return(storedUser, nil).Once()
		_, token, err := otherService.Login(ctx, "alice@example.com", "hunter2hunter2")
		require.NoError(t, err)

		_, err = authService.VerifyToken(token)

		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}
