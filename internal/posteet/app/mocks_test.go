package app_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"posteet/internal/posteet/domain/entities"
	"posteet/internal/posteet/domain/services"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Verify(ctx context.Context, password, hash string) (bool, error) {
	args := m.Called(ctx, password, hash)
	return args.Bool(0), args.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateToken(ctx context.Context, userID, email string, purpose services.TokenPurpose) (string, time.Time, error) {
	args := m.Called(ctx, userID, email, purpose)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokenService) ValidateToken(ctx context.Context, token string, purpose services.TokenPurpose) (*services.JWTClaims, error) {
	args := m.Called(ctx, token, purpose)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.JWTClaims), args.Error(1)
}

type mockPosteetRepository struct {
	mock.Mock
}

func (m *mockPosteetRepository) Insert(ctx context.Context, ownerID string, posteet *entities.Posteet) (*entities.Posteet, error) {
	args := m.Called(ctx, ownerID, posteet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Posteet), args.Error(1)
}

func (m *mockPosteetRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Posteet, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Posteet), args.Error(1)
}

func (m *mockPosteetRepository) FindByID(ctx context.Context, ownerID string, postitID int64) (*entities.Posteet, error) {
	args := m.Called(ctx, ownerID, postitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Posteet), args.Error(1)
}

func (m *mockPosteetRepository) Update(ctx context.Context, ownerID string, posteet *entities.Posteet) (*entities.Posteet, error) {
	args := m.Called(ctx, ownerID, posteet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Posteet), args.Error(1)
}

func (m *mockPosteetRepository) Delete(ctx context.Context, ownerID string, postitID int64) error {
	args := m.Called(ctx, ownerID, postitID)
	return args.Error(0)
}
