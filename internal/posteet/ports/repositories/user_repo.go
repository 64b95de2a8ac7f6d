// Package repositories определяет интерфейсы хранилищ сервиса posteet.
package repositories

import (
	"context"

	"posteet/internal/posteet/domain/entities"
)

// UserRepository определяет интерфейс для операций над учетными записями.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	Update(ctx context.Context, user *entities.User) (*entities.User, error)
}
