package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"posteet/internal/posteet/domain/entities"
	"posteet/internal/posteet/ports/api"
	"posteet/internal/posteet/ports/repositories"
	"posteet/pkg/logger"
)

// Ошибки уровня бизнес-логики заметок.
var (
	ErrNotFound      = errors.New("posteet not found")
	ErrInvalidParams = errors.New("invalid posteet parameters")
)

// PosteetUseCase реализует интерфейс api.PosteetUseCase.
type PosteetUseCase struct {
	posteetRepo repositories.PosteetRepository
}

// NewPosteetUseCase создает новый экземпляр сервиса заметок.
func NewPosteetUseCase(posteetRepo repositories.PosteetRepository) api.PosteetUseCase {
	return &PosteetUseCase{posteetRepo: posteetRepo}
}

func validatePosteet(p *entities.Posteet) error {
	if strings.TrimSpace(p.Content) == "" {
		return fmt.Errorf("empty content: %w", ErrInvalidParams)
	}
	if strings.TrimSpace(p.Date) == "" {
		return fmt.Errorf("empty date: %w", ErrInvalidParams)
	}
	return nil
}

// Create сохраняет новую заметку в коллекции владельца.
func (uc *PosteetUseCase) Create(ctx context.Context, ownerID string, posteet *entities.Posteet) (*entities.Posteet, error) {
	log := logger.Log(ctx).With(zap.String("method", "PosteetUseCase.Create"), zap.String("ownerID", ownerID))

	if err := validatePosteet(posteet); err != nil {
		log.Debug(ctx, "posteet validation failed", zap.Error(err))
		return nil, err
	}

	created, err := uc.posteetRepo.Insert(ctx, ownerID, posteet)
	if err != nil {
		log.Error(ctx, "failed to create posteet", zap.Error(err))
		return nil, fmt.Errorf("creating posteet: %w", err)
	}

	log.Info(ctx, "posteet created", zap.Int64("postit_id", created.PostitID))
	return created, nil
}

// List возвращает все заметки владельца.
func (uc *PosteetUseCase) List(ctx context.Context, ownerID string) ([]*entities.Posteet, error) {
	log := logger.Log(ctx).With(zap.String("method", "PosteetUseCase.List"), zap.String("ownerID", ownerID))

	posteets, err := uc.posteetRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		log.Error(ctx, "failed to list posteets", zap.Error(err))
		return nil, fmt.Errorf("listing posteets: %w", err)
	}
	return posteets, nil
}

// Get возвращает заметку по id из коллекции владельца.
func (uc *PosteetUseCase) Get(ctx context.Context, ownerID string, postitID int64) (*entities.Posteet, error) {
	log := logger.Log(ctx).With(zap.String("method", "PosteetUseCase.Get"), zap.String("ownerID", ownerID))

	posteet, err := uc.posteetRepo.FindByID(ctx, ownerID, postitID)
	if err != nil {
		if errors.Is(err, entities.ErrPosteetNotFound) {
			return nil, ErrNotFound
		}
		log.Error(ctx, "failed to get posteet", zap.Error(err))
		return nil, fmt.Errorf("getting posteet: %w", err)
	}
	return posteet, nil
}

// Update перезаписывает существующую заметку владельца.
func (uc *PosteetUseCase) Update(ctx context.Context, ownerID string, posteet *entities.Posteet) (*entities.Posteet, error) {
	log := logger.Log(ctx).With(zap.String("method", "PosteetUseCase.Update"), zap.String("ownerID", ownerID))

	if err := validatePosteet(posteet); err != nil {
		log.Debug(ctx, "posteet validation failed", zap.Error(err))
		return nil, err
	}

	updated, err := uc.posteetRepo.Update(ctx, ownerID, posteet)
	if err != nil {
		if errors.Is(err, entities.ErrPosteetNotFound) {
			return nil, ErrNotFound
		}
		log.Error(ctx, "failed to update posteet", zap.Error(err))
		return nil, fmt.Errorf("updating posteet: %w", err)
	}

	log.Info(ctx, "posteet updated", zap.Int64("postit_id", updated.PostitID))
	return updated, nil
}

// Delete удаляет заметку из коллекции владельца.
func (uc *PosteetUseCase) Delete(ctx context.Context, ownerID string, postitID int64) error {
	log := logger.Log(ctx).With(zap.String("method", "PosteetUseCase.Delete"), zap.String("ownerID", ownerID))

	err := uc.posteetRepo.Delete(ctx, ownerID, postitID)
	if err != nil {
		if errors.Is(err, entities.ErrPosteetNotFound) {
			return ErrNotFound
		}
		log.Error(ctx, "failed to delete posteet", zap.Error(err))
		return fmt.Errorf("deleting posteet: %w", err)
	}

	log.Info(ctx, "posteet deleted", zap.Int64("postit_id", postitID))
	return nil
}
