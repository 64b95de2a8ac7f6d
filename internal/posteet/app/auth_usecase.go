// Package app реализует бизнес-логику сервиса posteet.
package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"posteet/internal/posteet/domain/entities"
	"posteet/internal/posteet/domain/services"
	"posteet/internal/posteet/ports/api"
	"posteet/internal/posteet/ports/repositories"
	svc "posteet/internal/posteet/ports/services"
	"posteet/pkg/logger"
)

const (
	methodRegister           = "Register"
	methodLogin              = "Login"
	methodForgotPassword     = "ForgotPassword"
	methodResetPassword      = "ResetPassword"
	methodRequestVerifyToken = "RequestVerifyToken"
	methodVerify             = "Verify"

	msgStartRegistration  = "starting user registration"
	msgInvalidEmailFormat = "invalid email format"
	msgInvalidPassword    = "invalid password"
	msgEmailExists        = "user with this email already exists"
	msgUserRegistered     = "user registered successfully"
	msgLoginAttempt       = "login attempt"
	msgLoginNonExistent   = "login attempt with non-existent email"
	msgLoginInactive      = "login attempt for inactive user"
	msgUserLoggedIn       = "user logged in successfully"
	msgResetRequested     = "password reset requested"
	msgResetUnknownEmail  = "password reset requested for unknown email"
	msgPasswordReset      = "password reset completed"
	msgVerifyRequested    = "verification token requested"
	msgVerifyUnknownEmail = "verification requested for unknown email"
	msgUserVerified       = "user verified successfully"

	// Токены сброса и верификации логируются вместо отправки почты:
	// почтовый транспорт в развертывании отсутствует.
	msgResetTokenIssued  = "password reset token issued"
	msgVerifyTokenIssued = "verification token issued"

	msgErrCheckExistingUser = "failed to check existing user"
	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrFindingUser       = "error finding user by email"
	msgErrVerifyingPassword = "error verifying password"
	msgErrGenerateToken     = "failed to generate token"
	msgErrUpdateUser        = "failed to update user"

	errCtxValidatingEmail    = "validating email"
	errCtxValidatingPassword = "validating password"
	errCtxCheckingUser       = "checking existing user"
	errCtxEmailRegistered    = "email already registered"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxInvalidCredentials = "invalid credentials"
	errCtxInactiveUser       = "inactive user"
	errCtxFindingUser        = "finding user"
	errCtxVerifyingPassword  = "verifying password"
	errCtxGeneratingToken    = "generating token"
	errCtxValidatingToken    = "validating token"
	errCtxUpdatingUser       = "updating user"
)

// TokenTypeBearer - тип выдаваемого токена доступа.
const TokenTypeBearer = "bearer"

// AuthUseCaseImpl реализует интерфейс api.AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) error {
	if email == "" {
		return entities.ErrEmptyEmail
	}
	if !emailRegexp.MatchString(email) {
		return fmt.Errorf("malformed email %q: %w", email, entities.ErrEmptyEmail)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < services.MinPasswordLength {
		return services.ErrInvalidPassword
	}
	return nil
}

// Register создает нового пользователя с предоставленными учетными данными.
func (a *AuthUseCaseImpl) Register(ctx context.Context, email, password string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("email", email))
	log.Debug(ctx, msgStartRegistration)

	if err := validateEmail(email); err != nil {
		log.Debug(ctx, msgInvalidEmailFormat, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingEmail, err)
	}
	if err := validatePassword(password); err != nil {
		log.Debug(ctx, msgInvalidPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingPassword, err)
	}

	existingUser, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUser, err)
	}
	if existingUser != nil {
		log.Debug(ctx, msgEmailExists)
		return nil, fmt.Errorf("%s: %w", errCtxEmailRegistered, services.ErrEmailAlreadyExists)
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	newUser := &entities.User{
		Email:          email,
		HashedPassword: hashedPassword,
		IsActive:       true,
	}

	createdUser, err := a.userRepo.Create(ctx, newUser)
	if err != nil {
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", createdUser.ID))
	return createdUser, nil
}

// Login аутентифицирует пользователя и выдает токен доступа.
func (a *AuthUseCaseImpl) Login(ctx context.Context, email, password string) (*services.AccessGrant, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.HashedPassword)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPassword)
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	if !user.IsActive {
		log.Debug(ctx, msgLoginInactive)
		return nil, fmt.Errorf("%s: %w", errCtxInactiveUser, services.ErrInactiveUser)
	}

	token, expiresAt, err := a.tokenSvc.GenerateToken(ctx, user.ID, user.Email, services.PurposeAuth)
	if err != nil {
		log.Error(ctx, msgErrGenerateToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingToken, err)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID))
	return &services.AccessGrant{
		UserID:      user.ID,
		Email:       user.Email,
		AccessToken: token,
		TokenType:   TokenTypeBearer,
		ExpiresAt:   expiresAt,
	}, nil
}

// ForgotPassword выдает токен сброса пароля.
// Существование учетной записи не раскрывается вызывающему.
func (a *AuthUseCaseImpl) ForgotPassword(ctx context.Context, email string) error {
	log := logger.Log(ctx).With(zap.String("method", methodForgotPassword), zap.String("email", email))
	log.Debug(ctx, msgResetRequested)

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgResetUnknownEmail)
			return nil
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	token, _, err := a.tokenSvc.GenerateToken(ctx, user.ID, user.Email, services.PurposeReset)
	if err != nil {
		log.Error(ctx, msgErrGenerateToken, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxGeneratingToken, err)
	}

	log.Info(ctx, msgResetTokenIssued, zap.String("userID", user.ID), zap.String("reset_token", token))
	return nil
}

// ResetPassword устанавливает новый пароль по токену сброса.
func (a *AuthUseCaseImpl) ResetPassword(ctx context.Context, token, password string) error {
	log := logger.Log(ctx).With(zap.String("method", methodResetPassword))

	claims, err := a.tokenSvc.ValidateToken(ctx, token, services.PurposeReset)
	if err != nil {
		log.Debug(ctx, "invalid reset token", zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxValidatingToken, err)
	}

	if err := validatePassword(password); err != nil {
		log.Debug(ctx, msgInvalidPassword, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxValidatingPassword, err)
	}

	user, err := a.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	user.HashedPassword = hashedPassword
	if _, err := a.userRepo.Update(ctx, user); err != nil {
		log.Error(ctx, msgErrUpdateUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxUpdatingUser, err)
	}

	log.Info(ctx, msgPasswordReset, zap.String("userID", user.ID))
	return nil
}

// RequestVerifyToken выдает токен верификации email.
// Существование учетной записи не раскрывается вызывающему.
func (a *AuthUseCaseImpl) RequestVerifyToken(ctx context.Context, email string) error {
	log := logger.Log(ctx).With(zap.String("method", methodRequestVerifyToken), zap.String("email", email))
	log.Debug(ctx, msgVerifyRequested)

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgVerifyUnknownEmail)
			return nil
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	if user.IsVerified {
		log.Debug(ctx, "user already verified")
		return nil
	}

	token, _, err := a.tokenSvc.GenerateToken(ctx, user.ID, user.Email, services.PurposeVerify)
	if err != nil {
		log.Error(ctx, msgErrGenerateToken, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxGeneratingToken, err)
	}

	log.Info(ctx, msgVerifyTokenIssued, zap.String("userID", user.ID), zap.String("verify_token", token))
	return nil
}

// Verify помечает учетную запись как верифицированную по токену.
func (a *AuthUseCaseImpl) Verify(ctx context.Context, token string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodVerify))

	claims, err := a.tokenSvc.ValidateToken(ctx, token, services.PurposeVerify)
	if err != nil {
		log.Debug(ctx, "invalid verification token", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, err)
	}

	user, err := a.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	if user.IsVerified {
		log.Debug(ctx, "user already verified")
		return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, services.ErrAlreadyVerified)
	}

	user.IsVerified = true
	updatedUser, err := a.userRepo.Update(ctx, user)
	if err != nil {
		log.Error(ctx, msgErrUpdateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingUser, err)
	}

	log.Info(ctx, msgUserVerified, zap.String("userID", user.ID))
	return updatedUser, nil
}
