// Package dto содержит структуры запросов и ответов HTTP API.
package dto

import "posteet/internal/posteet/domain/entities"

// RegisterRequest содержит данные для регистрации.
type RegisterRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// LoginRequest содержит учетные данные для входа.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// LoginResponse содержит выданный токен доступа.
// Поле access_token извлекается исходящим мостом и переносится в cookie.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ForgotPasswordRequest содержит email для запроса сброса пароля.
type ForgotPasswordRequest struct {
	Email string `json:"email" form:"email"`
}

// ResetPasswordRequest содержит токен сброса и новый пароль.
type ResetPasswordRequest struct {
	Token    string `json:"token" form:"token"`
	Password string `json:"password" form:"password"`
}

// RequestVerifyTokenRequest содержит email для запроса токена верификации.
type RequestVerifyTokenRequest struct {
	Email string `json:"email" form:"email"`
}

// VerifyRequest содержит токен верификации.
type VerifyRequest struct {
	Token string `json:"token" form:"token"`
}

// UserResponse содержит публичное представление учетной записи.
type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
	IsVerified  bool   `json:"is_verified"`
}

// NewUserResponse преобразует доменную сущность в ответ API.
func NewUserResponse(user *entities.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		IsActive:    user.IsActive,
		IsSuperuser: user.IsSuperuser,
		IsVerified:  user.IsVerified,
	}
}
