// Package api определяет порты уровня приложения сервиса posteet.
package api

import (
	"context"

	"posteet/internal/posteet/domain/entities"
	"posteet/internal/posteet/domain/services"
)

// AuthUseCase определяет основной порт для операций аутентификации.
type AuthUseCase interface {
	Register(ctx context.Context, email, password string) (*entities.User, error)

	Login(ctx context.Context, email, password string) (*services.AccessGrant, error)

	// ForgotPassword не сообщает, существует ли учетная запись.
	ForgotPassword(ctx context.Context, email string) error

	ResetPassword(ctx context.Context, token, password string) error

	// RequestVerifyToken не сообщает, существует ли учетная запись.
	RequestVerifyToken(ctx context.Context, email string) error

	Verify(ctx context.Context, token string) (*entities.User, error)
}
