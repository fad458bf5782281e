package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KD4-Mahesh-92414/RailBooker/internal/domain"
	"github.com/KD4-Mahesh-92414/RailBooker/internal/service/ports/mocks"
)

func TestUserService_Create_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	userRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, user *domain.User) {
			user.ID = 42
			user.Status = domain.UserStatusActive
		}).
		Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Email:    "  Asha@Example.com ",
		FullName: " Asha Rao ",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, "Asha Rao", user.FullName)
}

func TestUserService_Create_InvalidEmail(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Email:    "not-an-email",
		FullName: "Asha Rao",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_MissingName(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Email: "asha@example.com",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_EmailTaken(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Email:    "taken@example.com",
		FullName: "Taken User",
	})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_GetByID(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	userRepo.EXPECT().GetByID(mock.Anything, int64(42)).Return(&domain.User{ID: 42}, nil)

	user, err := svc.GetByID(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
}

func TestUserService_List(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	userRepo.EXPECT().List(mock.Anything).Return([]domain.User{{ID: 42}}, nil)

	users, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, users, 1)
}
