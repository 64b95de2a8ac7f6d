package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posteet/internal/posteet/adapters/postgres"
	"posteet/internal/posteet/domain/entities"
	"posteet/pkg/logger"
)

var userColumns = []string{"id", "email", "hashed_password", "is_active", "is_superuser", "is_verified", "created_at", "updated_at"}

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func TestUserRepository_Create(t *testing.T) {
	ctx := testContext(t)

	inputUser := &entities.User{
		Email:          "new@example.com",
		HashedPassword: "hashed_new_password",
		IsActive:       true,
	}

	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешное создание пользователя", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(inputUser.Email, inputUser.HashedPassword, inputUser.IsActive, false, false).
			WillReturnRows(
				pgxmock.NewRows(userColumns).
					AddRow("generated-uuid", inputUser.Email, inputUser.HashedPassword, true, false, false, now, now),
			)

		repo := postgres.NewUserRepository(mock)
		createdUser, err := repo.Create(ctx, inputUser)

		require.NoError(t, err)
		require.NotNil(t, createdUser)
		assert.Equal(t, "generated-uuid", createdUser.ID)
		assert.Equal(t, inputUser.Email, createdUser.Email)
		assert.True(t, createdUser.IsActive)
		assert.False(t, createdUser.IsVerified)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(inputUser.Email, inputUser.HashedPassword, inputUser.IsActive, false, false).
			WillReturnError(errors.New("duplicate key value"))

		repo := postgres.NewUserRepository(mock)
		createdUser, err := repo.Create(ctx, inputUser)

		require.Error(t, err)
		assert.Nil(t, createdUser)
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Пользователь найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT .+ FROM users .+").
			WithArgs("user@example.com").
			WillReturnRows(
				pgxmock.NewRows(userColumns).
					AddRow("uuid-1", "user@example.com", "hash", true, false, true, now, now),
			)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByEmail(ctx, "user@example.com")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "uuid-1", user.ID)
		assert.True(t, user.IsVerified)
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT .+ FROM users .+").
			WithArgs("ghost@example.com").
			WillReturnRows(pgxmock.NewRows(userColumns))

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByEmail(ctx, "ghost@example.com")

		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestUserRepository_FindByID(t *testing.T) {
	ctx := testContext(t)

	t.Run("Пользователь не найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT .+ FROM users .+").
			WithArgs("missing-id").
			WillReturnRows(pgxmock.NewRows(userColumns))

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByID(ctx, "missing-id")

		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestUserRepository_Update(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	existing := &entities.User{
		ID:             "uuid-1",
		Email:          "user@example.com",
		HashedPassword: "new-hash",
		IsActive:       true,
		IsVerified:     true,
	}

	t.Run("Успешное обновление", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE users .+").
			WithArgs(existing.ID, existing.Email, existing.HashedPassword, true, false, true, pgxmock.AnyArg()).
			WillReturnRows(
				pgxmock.NewRows(userColumns).
					AddRow(existing.ID, existing.Email, existing.HashedPassword, true, false, true, now, now),
			)

		repo := postgres.NewUserRepository(mock)
		updated, err := repo.Update(ctx, existing)

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, existing.HashedPassword, updated.HashedPassword)
	})

	t.Run("Обновление несуществующего пользователя", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE users .+").
			WithArgs(existing.ID, existing.Email, existing.HashedPassword, true, false, true, pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows(userColumns))

		repo := postgres.NewUserRepository(mock)
		updated, err := repo.Update(ctx, existing)

		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
		assert.Nil(t, updated)
	})
}
