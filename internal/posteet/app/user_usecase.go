package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"posteet/internal/posteet/domain/entities"
	"posteet/internal/posteet/domain/services"
	"posteet/internal/posteet/ports/api"
	"posteet/internal/posteet/ports/repositories"
	svc "posteet/internal/posteet/ports/services"
	"posteet/pkg/logger"
)

const (
	methodProfile       = "Profile"
	methodUpdateProfile = "UpdateProfile"

	msgGettingProfile  = "getting user profile"
	msgUpdatingProfile = "updating user profile"
	msgProfileUpdated  = "user profile updated"
)

// UserUseCaseImpl реализует интерфейс api.UserUseCase.
type UserUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
}

// NewUserUseCase создает новый экземпляр сервиса профилей.
func NewUserUseCase(userRepo repositories.UserRepository, passwordSvc svc.PasswordService) api.UserUseCase {
	return &UserUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
	}
}

// Profile возвращает учетную запись по идентификатору.
func (u *UserUseCaseImpl) Profile(ctx context.Context, userID string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodProfile), zap.String("userID", userID))
	log.Debug(ctx, msgGettingProfile)

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Debug(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}
	return user, nil
}

// UpdateProfile применяет частичное обновление учетной записи.
func (u *UserUseCaseImpl) UpdateProfile(ctx context.Context, userID string, update *api.UserUpdate) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateProfile), zap.String("userID", userID))
	log.Debug(ctx, msgUpdatingProfile)

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Debug(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	if update.Email != nil && *update.Email != user.Email {
		if err := validateEmail(*update.Email); err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxValidatingEmail, err)
		}
		existing, err := u.userRepo.FindByEmail(ctx, *update.Email)
		if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
			return nil, fmt.Errorf("%s: %w", errCtxCheckingUser, err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%s: %w", errCtxEmailRegistered, services.ErrEmailAlreadyExists)
		}
		user.Email = *update.Email
		// Смена email требует повторной верификации.
		user.IsVerified = false
	}

	if update.Password != nil {
		if err := validatePassword(*update.Password); err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxValidatingPassword, err)
		}
		hashedPassword, err := u.passwordSvc.Hash(ctx, *update.Password)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
		}
		user.HashedPassword = hashedPassword
	}

	updatedUser, err := u.userRepo.Update(ctx, user)
	if err != nil {
		log.Error(ctx, msgErrUpdateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingUser, err)
	}

	log.Info(ctx, msgProfileUpdated, zap.String("userID", userID))
	return updatedUser, nil
}
