// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"posteet/internal/posteet/adapters/http/middleware"
	"posteet/internal/posteet/app"
	"posteet/internal/posteet/app/dto"
	"posteet/internal/posteet/ports/api"
	"posteet/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerCreate = "handling create posteet request"
	LogHandlerList   = "handling list posteets request"
	LogHandlerGet    = "handling get posteet request"
	LogHandlerUpdate = "handling update posteet request"
	LogHandlerDelete = "handling delete posteet request"

	ErrMsgInvalidPosteetID   = "invalid posteet id"
	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgMissingIdentity    = "missing user identity"
)

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	posteetUC api.PosteetUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(posteetUC api.PosteetUseCase) *Handler {
	return &Handler{posteetUC: posteetUC}
}

func requestContext(ctx fiber.Ctx) context.Context {
	if userCtx, ok := ctx.Locals(middleware.UserContextKey).(context.Context); ok {
		return userCtx
	}
	return ctx.Context()
}

func ownerID(ctx fiber.Ctx) (string, bool) {
	id, ok := ctx.Locals(middleware.UserIDKey).(string)
	return id, ok && id != ""
}

// Create обрабатывает запрос на создание новой заметки.
func (h *Handler) Create(ctx fiber.Ctx) error {
	userCtx := requestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.Create"))
	log.Debug(userCtx, LogHandlerCreate)

	owner, ok := ownerID(ctx)
	if !ok {
		log.Error(userCtx, ErrMsgMissingIdentity)
		return unauthorized(ctx)
	}

	var req dto.PosteetContentRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return badRequest(ctx, ErrMsgInvalidRequestBody)
	}

	posteet, err := h.posteetUC.Create(userCtx, owner, req.ToEntity())
	if err != nil {
		log.Debug(userCtx, "failed to create posteet", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(dto.NewPosteetResponse(posteet)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// List возвращает все заметки владельца в порядке возрастания id.
func (h *Handler) List(ctx fiber.Ctx) error {
	userCtx := requestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.List"))
	log.Debug(userCtx, LogHandlerList)

	owner, ok := ownerID(ctx)
	if !ok {
		log.Error(userCtx, ErrMsgMissingIdentity)
		return unauthorized(ctx)
	}

	posteets, err := h.posteetUC.List(userCtx, owner)
	if err != nil {
		log.Error(userCtx, "failed to list posteets", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.NewPosteetListResponse(posteets)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Get возвращает заметку по id в коллекции владельца.
func (h *Handler) Get(ctx fiber.Ctx) error {
	userCtx := requestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.Get"))
	log.Debug(userCtx, LogHandlerGet)

	owner, ok := ownerID(ctx)
	if !ok {
		log.Error(userCtx, ErrMsgMissingIdentity)
		return unauthorized(ctx)
	}

	postitID, err := parsePosteetID(ctx)
	if err != nil {
		log.Debug(userCtx, ErrMsgInvalidPosteetID, zap.Error(err))
		return badRequest(ctx, ErrMsgInvalidPosteetID)
	}

	posteet, err := h.posteetUC.Get(userCtx, owner, postitID)
	if err != nil {
		log.Debug(userCtx, "failed to get posteet", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.NewPosteetResponse(posteet)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Update заменяет содержимое существующей заметки.
func (h *Handler) Update(ctx fiber.Ctx) error {
	userCtx := requestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.Update"))
	log.Debug(userCtx, LogHandlerUpdate)

	owner, ok := ownerID(ctx)
	if !ok {
		log.Error(userCtx, ErrMsgMissingIdentity)
		return unauthorized(ctx)
	}

	postitID, err := parsePosteetID(ctx)
	if err != nil {
		log.Debug(userCtx, ErrMsgInvalidPosteetID, zap.Error(err))
		return badRequest(ctx, ErrMsgInvalidPosteetID)
	}

	var req dto.PosteetContentRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return badRequest(ctx, ErrMsgInvalidRequestBody)
	}

	posteet := req.ToEntity()
	posteet.PostitID = postitID

	updated, err := h.posteetUC.Update(userCtx, owner, posteet)
	if err != nil {
		log.Debug(userCtx, "failed to update posteet", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.NewPosteetResponse(updated)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Delete удаляет заметку из коллекции владельца.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	userCtx := requestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.Delete"))
	log.Debug(userCtx, LogHandlerDelete)

	owner, ok := ownerID(ctx)
	if !ok {
		log.Error(userCtx, ErrMsgMissingIdentity)
		return unauthorized(ctx)
	}

	postitID, err := parsePosteetID(ctx)
	if err != nil {
		log.Debug(userCtx, ErrMsgInvalidPosteetID, zap.Error(err))
		return badRequest(ctx, ErrMsgInvalidPosteetID)
	}

	if err := h.posteetUC.Delete(userCtx, owner, postitID); err != nil {
		log.Debug(userCtx, "failed to delete posteet", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

func parsePosteetID(ctx fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("postit_id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing posteet id: %w", err)
	}
	return id, nil
}

func unauthorized(ctx fiber.Ctx) error {
	if err := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": ErrMsgMissingIdentity,
	}); err != nil {
		return fmt.Errorf("failed to send unauthorized response: %w", err)
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
	status := fiber.StatusInternalServerError
	msg := "Internal server error"

	switch {
	case errors.Is(err, app.ErrNotFound):
		status = fiber.StatusNotFound
		msg = err.Error()
	case errors.Is(err, app.ErrInvalidParams):
		status = fiber.StatusUnprocessableEntity
		msg = err.Error()
	}

	if err := ctx.Status(status).JSON(fiber.Map{
		"error": msg,
	}); err != nil {
		return fmt.Errorf("error sending error response: %w", err)
	}
	return nil
}
