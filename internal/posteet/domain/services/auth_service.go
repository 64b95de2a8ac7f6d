// Package services определяет доменные типы и ошибки сервиса posteet.
package services

import (
	"errors"
	"time"
)

// Ошибки домена аутентификации.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrInactiveUser       = errors.New("user is inactive")
	ErrAlreadyVerified    = errors.New("user is already verified")
)

// AccessGrant представляет выданный токен доступа.
type AccessGrant struct {
	UserID      string
	Email       string
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}
