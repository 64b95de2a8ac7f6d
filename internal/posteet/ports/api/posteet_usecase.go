package api

import (
	"context"

	"posteet/internal/posteet/domain/entities"
)

// PosteetUseCase определяет порт для операций над заметками.
// Все операции ограничены коллекцией переданного владельца.
type PosteetUseCase interface {
	Create(ctx context.Context, ownerID string, posteet *entities.Posteet) (*entities.Posteet, error)

	List(ctx context.Context, ownerID string) ([]*entities.Posteet, error)

	Get(ctx context.Context, ownerID string, postitID int64) (*entities.Posteet, error)

	Update(ctx context.Context, ownerID string, posteet *entities.Posteet) (*entities.Posteet, error)

	Delete(ctx context.Context, ownerID string, postitID int64) error
}
