package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"posteet/internal/posteet/app"
	"posteet/internal/posteet/domain/entities"
	"posteet/internal/posteet/domain/services"
	"posteet/internal/posteet/ports/api"
)

func TestUserUseCase_Profile(t *testing.T) {
	ctx := context.Background()

	t.Run("Профиль найден", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByID", ctx, "user-1").Return(activeUser(), nil)

		uc := app.NewUserUseCase(userRepo, new(mockPasswordService))
		user, err := uc.Profile(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, "user@example.com", user.Email)
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByID", ctx, "ghost").Return(nil, entities.ErrUserNotFound)

		uc := app.NewUserUseCase(userRepo, new(mockPasswordService))
		user, err := uc.Profile(ctx, "ghost")

		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestUserUseCase_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Смена email сбрасывает верификацию", func(t *testing.T) {
		verified := activeUser()
		verified.IsVerified = true

		userRepo := new(mockUserRepository)
		userRepo.On("FindByID", ctx, "user-1").Return(verified, nil)
		userRepo.On("FindByEmail", ctx, "next@example.com").Return(nil, entities.ErrUserNotFound)
		userRepo.On("Update", ctx, mock.MatchedBy(func(u *entities.User) bool {
			return u.Email == "next@example.com" && !u.IsVerified
		})).Return(&entities.User{ID: "user-1", Email: "next@example.com", IsActive: true}, nil)

		newEmail := "next@example.com"
		uc := app.NewUserUseCase(userRepo, new(mockPasswordService))
		user, err := uc.UpdateProfile(ctx, "user-1", &api.UserUpdate{Email: &newEmail})

		require.NoError(t, err)
		assert.Equal(t, "next@example.com", user.Email)
		userRepo.AssertExpectations(t)
	})

	t.Run("Новый email уже занят", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByID", ctx, "user-1").Return(activeUser(), nil)
		userRepo.On("FindByEmail", ctx, "taken@example.com").Return(&entities.User{ID: "user-2"}, nil)

		taken := "taken@example.com"
		uc := app.NewUserUseCase(userRepo, new(mockPasswordService))
		user, err := uc.UpdateProfile(ctx, "user-1", &api.UserUpdate{Email: &taken})

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrEmailAlreadyExists)
		assert.Nil(t, user)
	})

	t.Run("Смена пароля", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		passwordSvc := new(mockPasswordService)

		userRepo.On("FindByID", ctx, "user-1").Return(activeUser(), nil)
		passwordSvc.On("Hash", ctx, "new-long-password").Return("new-hash", nil)
		userRepo.On("Update", ctx, mock.MatchedBy(func(u *entities.User) bool {
			return u.HashedPassword == "new-hash"
		})).Return(activeUser(), nil)

		newPassword := "new-long-password"
		uc := app.NewUserUseCase(userRepo, passwordSvc)
		_, err := uc.UpdateProfile(ctx, "user-1", &api.UserUpdate{Password: &newPassword})

		require.NoError(t, err)
		passwordSvc.AssertExpectations(t)
	})

	t.Run("Короткий новый пароль", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByID", ctx, "user-1").Return(activeUser(), nil)

		short := "short"
		uc := app.NewUserUseCase(userRepo, new(mockPasswordService))
		user, err := uc.UpdateProfile(ctx, "user-1", &api.UserUpdate{Password: &short})

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidPassword)
		assert.Nil(t, user)
	})
}
