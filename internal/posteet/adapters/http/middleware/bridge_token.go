package middleware

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"posteet/internal/posteet/config"
	"posteet/pkg/logger"
)

const (
	logTokenBridged     = "access token moved from response body to cookie"
	logBridgeMarshalErr = "failed to re-serialize bridged response body"
)

var jsonContentType = []byte(fiber.MIMEApplicationJSON)

// NewTokenToCookie создает исходящий мост токен -> cookie.
// После выполнения нижестоящей цепочки тело JSON-ответа классифицируется;
// если это выдача токена, токен убирается из тела и выставляется HttpOnly
// cookie с тем же статусом ответа. Любое другое тело, не-JSON ответ и
// невалидный JSON проходят без изменений, байт-в-байт.
func NewTokenToCookie(cfg *config.CookieConfig) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		if err := ctx.Next(); err != nil {
			return err
		}

		contentType := ctx.Response().Header.ContentType()
		if !bytes.HasPrefix(contentType, jsonContentType) {
			return nil
		}

		grant, ok := classifyPayload(ctx.Response().Body()).(authGrant)
		if !ok {
			return nil
		}

		requestCtx := ctx.Context()
		newBody, err := json.Marshal(grant.fields)
		if err != nil {
			// Не должно происходить: поля уже были валидным JSON.
			// Отдаем исходное тело нетронутым.
			logger.Log(requestCtx).Error(requestCtx, logBridgeMarshalErr, zap.Error(err))
			return nil
		}

		ctx.Response().SetBodyRaw(newBody)
		ctx.Cookie(&fiber.Cookie{
			Name:     cfg.Name,
			Value:    grant.token,
			Path:     "/",
			MaxAge:   cfg.MaxAge,
			Secure:   cfg.IsSecure(),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		logger.Log(requestCtx).Debug(requestCtx, logTokenBridged,
			zap.Int("status", ctx.Response().StatusCode()))

		return nil
	}
}
