// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	domain "posteet/internal/posteet/domain/services"
	"posteet/internal/posteet/ports/services"
	"posteet/pkg/logger"
)

// Ключи Locals, выставляемые после успешной аутентификации.
const (
	UserIDKey    = "userID"
	UserEmailKey = "userEmail"
)

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid or expired token"
)

const bearerPrefix = "Bearer "

// NewAuthMiddleware создает промежуточное ПО, проверяющее токен доступа.
// Идентификатор и email пользователя кладутся в Locals для обработчиков.
func NewAuthMiddleware(tokenSvc services.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return unauthorized(ctx, ErrorNoAuthHeader)
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return unauthorized(ctx, ErrorInvalidTokenFormat)
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)
		claims, err := tokenSvc.ValidateToken(requestCtx, token, domain.PurposeAuth)
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidToken, zap.Error(err))
			return unauthorized(ctx, ErrorInvalidToken)
		}

		ctx.Locals(UserIDKey, claims.UserID)
		ctx.Locals(UserEmailKey, claims.Email)

		return ctx.Next()
	}
}

func unauthorized(ctx fiber.Ctx, msg string) error {
	if err := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": msg,
	}); err != nil {
		return fmt.Errorf("failed to send unauthorized response: %w", err)
	}
	return nil
}
