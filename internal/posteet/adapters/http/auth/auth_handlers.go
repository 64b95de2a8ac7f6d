// Package auth содержит HTTP-обработчики аутентификации.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"posteet/internal/posteet/adapters/http/middleware"
	"posteet/internal/posteet/app/dto"
	"posteet/internal/posteet/config"
	"posteet/internal/posteet/domain/entities"
	domain "posteet/internal/posteet/domain/services"
	"posteet/internal/posteet/ports/api"
	"posteet/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerRegister       = "handling register request"
	LogHandlerLogin          = "handling login request"
	LogHandlerLogout         = "handling logout request"
	LogHandlerForgotPassword = "handling forgot password request"
	LogHandlerResetPassword  = "handling reset password request"
	LogHandlerRequestVerify  = "handling request verify token"
	LogHandlerVerify         = "handling verify request"

	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgMissingToken       = "missing token"
)

// Handler обработчик HTTP-запросов аутентификации.
type Handler struct {
	authUC    api.AuthUseCase
	cookieCfg *config.CookieConfig
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(authUC api.AuthUseCase, cookieCfg *config.CookieConfig) *Handler {
	return &Handler{
		authUC:    authUC,
		cookieCfg: cookieCfg,
	}
}

func requestContext(ctx fiber.Ctx) context.Context {
	if userCtx, ok := ctx.Locals(middleware.UserContextKey).(context.Context); ok {
		return userCtx
	}
	return ctx.Context()
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	userCtx := requestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.Register"))
	log.Debug(userCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return badRequest(ctx, ErrMsgInvalidRequestBody)
	}

	user, err := h.authUC.Register(userCtx, req.Email, req.Password)
	if err != nil {
		log.Debug(userCtx, "registration failed", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(dto.NewUserResponse(user)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход и возвращает токен доступа.
// Исходящий мост переносит access_token из тела в cookie.
func (h *Handler) Login(ctx fiber.Ctx) error {
	userCtx := requestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.Login"))
	log.Debug(userCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return badRequest(ctx, ErrMsgInvalidRequestBody)
	}

	grant, err := h.authUC.Login(userCtx, req.Email, req.Password)
	if err != nil {
		log.Debug(userCtx, "login failed", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(&dto.LoginResponse{
		AccessToken: grant.AccessToken,
		TokenType:   grant.TokenType,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Logout сбрасывает cookie с токеном доступа.
// Сам токен не отзывается: состояние сессии на сервере отсутствует.
func (h *Handler) Logout(ctx fiber.Ctx) error {
	userCtx := requestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.Logout"))
	log.Debug(userCtx, LogHandlerLogout)

	ctx.Cookie(&fiber.Cookie{
		Name:     h.cookieCfg.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   h.cookieCfg.IsSecure(),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	if err := ctx.SendStatus(fiber.StatusOK); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// ForgotPassword обрабатывает запрос на сброс пароля.
// Ответ всегда 202, существование учетной записи не раскрывается.
func (h *Handler) ForgotPassword(ctx fiber.Ctx) error {
	userCtx := requestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.ForgotPassword"))
	log.Debug(userCtx, LogHandlerForgotPassword)

	var req dto.ForgotPasswordRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return badRequest(ctx, ErrMsgInvalidRequestBody)
	}

	if err := h.authUC.ForgotPassword(userCtx, req.Email); err != nil {
		log.Error(userCtx, "forgot password failed", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusAccepted); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// ResetPassword устанавливает новый пароль по токену сброса.
func (h *Handler) ResetPassword(ctx fiber.Ctx) error {
	userCtx := requestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.ResetPassword"))
	log.Debug(userCtx, LogHandlerResetPassword)

	var req dto.ResetPasswordRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return badRequest(ctx, ErrMsgInvalidRequestBody)
	}

	if err := h.authUC.ResetPassword(userCtx, req.Token, req.Password); err != nil {
		log.Debug(userCtx, "reset password failed", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusOK); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// RequestVerifyToken обрабатывает запрос токена верификации email.
// Ответ всегда 202, существование учетной записи не раскрывается.
func (h *Handler) RequestVerifyToken(ctx fiber.Ctx) error {
	userCtx := requestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.RequestVerifyToken"))
	log.Debug(userCtx, LogHandlerRequestVerify)

	var req dto.RequestVerifyTokenRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return badRequest(ctx, ErrMsgInvalidRequestBody)
	}

	if err := h.authUC.RequestVerifyToken(userCtx, req.Email); err != nil {
		log.Error(userCtx, "request verify token failed", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusAccepted); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Verify помечает учетную запись как верифицированную по токену из запроса.
func (h *Handler) Verify(ctx fiber.Ctx) error {
	userCtx := requestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.Verify"))
	log.Debug(userCtx, LogHandlerVerify)

	token := ctx.Query("token")
	if token == "" {
		log.Debug(userCtx, ErrMsgMissingToken)
		return badRequest(ctx, ErrMsgMissingToken)
	}

	user, err := h.authUC.Verify(userCtx, token)
	if err != nil {
		log.Debug(userCtx, "verification failed", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.NewUserResponse(user)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

func badRequest(ctx fiber.Ctx, msg string) error {
	if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
	}); err != nil {
		return fmt.Errorf("failed to send bad request response: %w", err)
	}
	return nil
}

// handleError сопоставляет доменные ошибки с HTTP-статусами.
func handleError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInactiveUser),
		errors.Is(err, domain.ErrAlreadyVerified),
		errors.Is(err, domain.ErrInvalidJWTToken),
		errors.Is(err, domain.ErrExpiredJWTToken),
		errors.Is(err, domain.ErrInvalidPassword),
		errors.Is(err, entities.ErrEmptyEmail):
		return badRequest(ctx, err.Error())
	}

	if err := ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	}); err != nil {
		return fmt.Errorf("error sending 500 response: %w", err)
	}
	return nil
}
