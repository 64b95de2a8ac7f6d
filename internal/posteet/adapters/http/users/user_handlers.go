// Package users содержит HTTP-обработчики профиля пользователя.
package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"posteet/internal/posteet/adapters/http/middleware"
	"posteet/internal/posteet/app/dto"
	"posteet/internal/posteet/domain/entities"
	domain "posteet/internal/posteet/domain/services"
	"posteet/internal/posteet/ports/api"
	"posteet/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerMe       = "handling get profile request"
	LogHandlerUpdateMe = "handling update profile request"

	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgMissingIdentity    = "missing user identity"
)

// Handler обработчик HTTP-запросов профиля.
type Handler struct {
	userUC api.UserUseCase
}

// NewHandler создает новый экземпляр обработчика профиля.
func NewHandler(userUC api.UserUseCase) *Handler {
	return &Handler{userUC: userUC}
}

func requestContext(ctx fiber.Ctx) context.Context {
	if userCtx, ok := ctx.Locals(middleware.UserContextKey).(context.Context); ok {
		return userCtx
	}
	return ctx.Context()
}

// Me возвращает профиль аутентифицированного пользователя.
func (h *Handler) Me(ctx fiber.Ctx) error {
	userCtx := requestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.Me"))
	log.Debug(userCtx, LogHandlerMe)

	userID, ok := ctx.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		log.Error(userCtx, ErrMsgMissingIdentity)
		return handleError(ctx, entities.ErrUserNotFound)
	}

	user, err := h.userUC.Profile(userCtx, userID)
	if err != nil {
		log.Debug(userCtx, "failed to get profile", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.NewUserResponse(user)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateMe частично обновляет профиль аутентифицированного пользователя.
func (h *Handler) UpdateMe(ctx fiber.Ctx) error {
	userCtx := requestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.UpdateMe"))
	log.Debug(userCtx, LogHandlerUpdateMe)

	userID, ok := ctx.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		log.Error(userCtx, ErrMsgMissingIdentity)
		return handleError(ctx, entities.ErrUserNotFound)
	}

	var req dto.UpdateUserRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrMsgInvalidRequestBody,
		}); err != nil {
			return fmt.Errorf("failed to send bad request response: %w", err)
		}
		return nil
	}

	user, err := h.userUC.UpdateProfile(userCtx, userID, &api.UserUpdate{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		log.Debug(userCtx, "failed to update profile", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.NewUserResponse(user)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// handleError сопоставляет доменные ошибки с HTTP-статусами.
func handleError(ctx fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	msg := "Internal server error"

	switch {
	case errors.Is(err, entities.ErrUserNotFound):
		status = fiber.StatusNotFound
		msg = err.Error()
	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrInvalidPassword),
		errors.Is(err, entities.ErrEmptyEmail):
		status = fiber.StatusBadRequest
		msg = err.Error()
	}

	if err := ctx.Status(status).JSON(fiber.Map{
		"error": msg,
	}); err != nil {
		return fmt.Errorf("error sending error response: %w", err)
	}
	return nil
}
