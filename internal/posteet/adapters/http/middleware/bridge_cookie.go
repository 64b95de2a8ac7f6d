// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"posteet/pkg/logger"
)

const logCookieBridged = "authorization header synthesized from cookie"

// NewCookieToHeader создает входящий мост cookie -> заголовок.
// Если заголовок Authorization отсутствует, но присутствует cookie с токеном,
// заголовок синтезируется до выполнения аутентификации. Уже присутствующий
// заголовок имеет приоритет, cookie при этом игнорируется. Ответ мост
// не модифицирует, отсутствие и заголовка и cookie ошибкой не является.
func NewCookieToHeader(cookieName string) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		if ctx.Get(fiber.HeaderAuthorization) != "" {
			return ctx.Next()
		}

		token := ctx.Cookies(cookieName)
		if token == "" {
			return ctx.Next()
		}

		ctx.Request().Header.Set(fiber.HeaderAuthorization, bearerPrefix+token)

		requestCtx := ctx.Context()
		logger.Log(requestCtx).Debug(requestCtx, logCookieBridged, zap.String("cookie", cookieName))

		return ctx.Next()
	}
}
