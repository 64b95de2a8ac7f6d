// Package entities определяет доменные сущности сервиса posteet.
package entities

import (
	"errors"
	"time"
)

// Ошибки доменного уровня для пользователей.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmptyEmail   = errors.New("email cannot be empty")
)

// User представляет учетную запись пользователя.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	IsActive       bool      `json:"is_active"`
	IsSuperuser    bool      `json:"is_superuser"`
	IsVerified     bool      `json:"is_verified"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
