package api

import (
	"context"

	"posteet/internal/posteet/domain/entities"
)

// UserUpdate описывает частичное обновление профиля.
// Нулевые указатели означают "не менять".
type UserUpdate struct {
	Email    *string
	Password *string
}

// UserUseCase определяет порт для операций над профилем пользователя.
type UserUseCase interface {
	Profile(ctx context.Context, userID string) (*entities.User, error)

	UpdateProfile(ctx context.Context, userID string, update *UserUpdate) (*entities.User, error)
}
