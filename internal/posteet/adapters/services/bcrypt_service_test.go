package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posteet/internal/posteet/adapters/services"
	domain "posteet/internal/posteet/domain/services"
)

func TestServiceBcrypt_Hash(t *testing.T) {
	ctx := context.Background()
	svc := services.NewBcrypt(4)

	t.Run("Успешное хэширование", func(t *testing.T) {
		hash, err := svc.Hash(ctx, "correct-horse-battery")
		require.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "correct-horse-battery", hash)
	})

	t.Run("Пустой пароль", func(t *testing.T) {
		_, err := svc.Hash(ctx, "")
		assert.ErrorIs(t, err, domain.ErrInvalidPassword)
	})

	t.Run("Слишком короткий пароль", func(t *testing.T) {
		_, err := svc.Hash(ctx, "short")
		assert.ErrorIs(t, err, domain.ErrInvalidPassword)
	})
}

func TestServiceBcrypt_Verify(t *testing.T) {
	ctx := context.Background()
	svc := services.NewBcrypt(4)

	hash, err := svc.Hash(ctx, "correct-horse-battery")
	require.NoError(t, err)

	t.Run("Правильный пароль", func(t *testing.T) {
		ok, err := svc.Verify(ctx, "correct-horse-battery", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Неправильный пароль", func(t *testing.T) {
		ok, err := svc.Verify(ctx, "wrong-password-here", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Пустой хэш", func(t *testing.T) {
		_, err := svc.Verify(ctx, "whatever-password", "")
		assert.ErrorIs(t, err, domain.ErrInvalidPassword)
	})
}
