// Package services определяет интерфейсы вспомогательных сервисов.
package services

import (
	"context"
	"time"

	domain "posteet/internal/posteet/domain/services"
)

// TokenService определяет интерфейс для операций с токенами JWT.
type TokenService interface {
	GenerateToken(ctx context.Context, userID, email string, purpose domain.TokenPurpose) (string, time.Time, error)

	// ValidateToken проверяет подпись, срок действия и назначение токена
	// и возвращает claims.
	ValidateToken(ctx context.Context, token string, purpose domain.TokenPurpose) (*domain.JWTClaims, error)
}
