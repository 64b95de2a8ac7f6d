package services

import (
	"errors"
	"time"
)

// Ошибки, связанные с JWT токенами.
var (
	ErrInvalidJWTToken    = errors.New("invalid JWT token")
	ErrExpiredJWTToken    = errors.New("JWT token has expired")
	ErrGeneratingJWTToken = errors.New("failed to generate JWT token")
)

// TokenPurpose различает назначение выданного токена.
// Назначение кодируется в audience токена, чтобы токен сброса пароля
// нельзя было предъявить как токен доступа.
type TokenPurpose string

// Поддерживаемые назначения токенов.
const (
	PurposeAuth   TokenPurpose = "posteet:auth"
	PurposeReset  TokenPurpose = "posteet:reset"
	PurposeVerify TokenPurpose = "posteet:verify"
)

// JWTConfig содержит настройки для JWT сервиса.
type JWTConfig struct {
	SecretKey       []byte
	AccessTokenTTL  time.Duration
	ServiceTokenTTL time.Duration
}

// JWTClaims определяет данные, закодированные в токене.
type JWTClaims struct {
	UserID    string
	Email     string
	Purpose   TokenPurpose
	IssuedAt  time.Time
	ExpiresAt time.Time
}
