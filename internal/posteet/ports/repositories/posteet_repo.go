package repositories

import (
	"context"

	"posteet/internal/posteet/domain/entities"
)

// PosteetRepository определяет интерфейс хранилища заметок.
// Коллекция каждого владельца изолирована: ownerID является частью ключа,
// и ни одна операция не видит чужие заметки.
type PosteetRepository interface {
	// Insert назначает заметке следующий postit_id владельца и сохраняет ее.
	Insert(ctx context.Context, ownerID string, posteet *entities.Posteet) (*entities.Posteet, error)

	// ListByOwner возвращает все заметки владельца, отсортированные по postit_id.
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Posteet, error)

	// FindByID возвращает entities.ErrPosteetNotFound, если заметки нет.
	FindByID(ctx context.Context, ownerID string, postitID int64) (*entities.Posteet, error)

	// Update возвращает entities.ErrPosteetNotFound, если заметки нет.
	Update(ctx context.Context, ownerID string, posteet *entities.Posteet) (*entities.Posteet, error)

	// Delete возвращает entities.ErrPosteetNotFound, если удалять нечего.
	Delete(ctx context.Context, ownerID string, postitID int64) error
}
