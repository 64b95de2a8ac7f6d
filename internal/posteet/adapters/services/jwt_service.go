// Package services реализует сервисы токенов и паролей.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	domain "posteet/internal/posteet/domain/services"
	svc "posteet/internal/posteet/ports/services"
	"posteet/pkg/logger"
)

// Константы для работы с JWT.
const (
	methodGenerateToken = "GenerateToken"
	methodValidateToken = "ValidateToken"

	msgGeneratingToken = "generating token"
	msgValidatingToken = "validating token"
	msgTokenGenerated  = "token generated successfully"
	msgTokenValidated  = "token validated successfully"
	msgInvalidToken    = "invalid token format"
	msgTokenExpired    = "token has expired"
	msgWrongPurpose    = "token presented for wrong purpose"

	//nolint:gosec
	errSigningToken = "error signing token"
	//nolint:gosec
	errParsingToken       = "error parsing token"
	errCtxGeneratingToken = "generating token"
	errCtxValidatingToken = "validating token"
)

// ErrInvalidAlgorithm представляет статическую ошибку неверного алгоритма подписи.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// Claims используется для адаптации между доменной моделью и библиотекой JWT.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// ServiceJWT реализует интерфейс svc.TokenService.
type ServiceJWT struct {
	config domain.JWTConfig
}

// NewJWT создает новый экземпляр сервиса JWT.
func NewJWT(secretKey string, accessTokenTTL, serviceTokenTTL time.Duration) svc.TokenService {
	return &ServiceJWT{
		config: domain.JWTConfig{
			SecretKey:       []byte(secretKey),
			AccessTokenTTL:  accessTokenTTL,
			ServiceTokenTTL: serviceTokenTTL,
		},
	}
}

func (s *ServiceJWT) ttlFor(purpose domain.TokenPurpose) time.Duration {
	if purpose == domain.PurposeAuth {
		return s.config.AccessTokenTTL
	}
	return s.config.ServiceTokenTTL
}

// GenerateToken генерирует подписанный токен с указанным назначением.
func (s *ServiceJWT) GenerateToken(ctx context.Context, userID, email string, purpose domain.TokenPurpose) (string, time.Time, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGenerateToken),
		zap.String("userID", userID),
		zap.String("purpose", string(purpose)),
	)
	log.Debug(ctx, msgGeneratingToken)

	if len(s.config.SecretKey) == 0 {
		log.Error(ctx, "empty secret key provided")
		return "", time.Time{}, fmt.Errorf("%s: %w: empty secret key", errCtxGeneratingToken, domain.ErrGeneratingJWTToken)
	}

	now := time.Now()
	expiresAt := now.Add(s.ttlFor(purpose))

	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Audience:  jwt.ClaimStrings{string(purpose)},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.config.SecretKey)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w: %w", errCtxGeneratingToken, domain.ErrGeneratingJWTToken, err)
	}

	log.Debug(ctx, msgTokenGenerated, zap.Time("expiresAt", expiresAt))
	return tokenString, expiresAt, nil
}

// ValidateToken проверяет подпись, срок действия и назначение токена.
func (s *ServiceJWT) ValidateToken(ctx context.Context, tokenString string, purpose domain.TokenPurpose) (*domain.JWTClaims, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodValidateToken),
		zap.String("purpose", string(purpose)),
	)
	log.Debug(ctx, msgValidatingToken)

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.config.SecretKey, nil
	}, jwt.WithAudience(string(purpose)))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, domain.ErrExpiredJWTToken)
		}
		if errors.Is(err, jwt.ErrTokenInvalidAudience) {
			log.Debug(ctx, msgWrongPurpose)
			return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, domain.ErrInvalidJWTToken)
		}
		log.Debug(ctx, errParsingToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxValidatingToken, domain.ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		log.Debug(ctx, msgInvalidToken)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, domain.ErrInvalidJWTToken)
	}

	if claims.Subject == "" {
		log.Debug(ctx, "subject claim is empty")
		return nil, fmt.Errorf("%s: %w: empty subject", errCtxValidatingToken, domain.ErrInvalidJWTToken)
	}

	result := &domain.JWTClaims{
		UserID:  claims.Subject,
		Email:   claims.Email,
		Purpose: purpose,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	log.Debug(ctx, msgTokenValidated, zap.String("userID", result.UserID))
	return result, nil
}
