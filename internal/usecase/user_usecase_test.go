package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/VinayNoogler000/RentEase/internal/domain"
	apperrors "github.com/VinayNoogler000/RentEase/internal/pkg/errors"
	"github.com/VinayNoogler000/RentEase/internal/usecase"
	"github.com/VinayNoogler000/RentEase/internal/usecase/dto"
)

func TestUserUseCase_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a bcrypt hash, never the password", func(t *testing.T) {
		userRepo := &MockUserRepository{}
		uc := usecase.NewUserUseCase(userRepo, zap.NewNop())

		userRepo.On("Insert", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Username == "vinay" &&
				u.Email == "vinay@example.com" &&
				u.PasswordHash != "secret123" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")) == nil
		})).Return(nil)

		user, outcome, err := uc.Signup(ctx, dto.SignupInput{
			Username: "vinay",
			Email:    "vinay@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "Welcome to RentEase!", outcome.Success)
		userRepo.AssertExpectations(t)
	})

	t.Run("duplicate identity yields error outcome", func(t *testing.T) {
		userRepo := &MockUserRepository{}
		uc := usecase.NewUserUseCase(userRepo, zap.NewNop())

		userRepo.On("Insert", ctx, mock.Anything).Return(apperrors.ErrEmailTaken)

		user, outcome, err := uc.Signup(ctx, dto.SignupInput{
			Username: "vinay",
			Email:    "vinay@example.com",
			Password: "secret123",
		})
		assert.NoError(t, err)
		assert.Nil(t, user)
		assert.Equal(t, "A User with this Username or Email already Exists!", outcome.Error)
	})
}

func TestUserUseCase_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &domain.User{ID: "user-1", Username: "vinay", PasswordHash: string(hash)}

	t.Run("valid credentials", func(t *testing.T) {
		userRepo := &MockUserRepository{}
		uc := usecase.NewUserUseCase(userRepo, zap.NewNop())

		userRepo.On("FindByUsername", ctx, "vinay").Return(stored, nil)

		user, outcome, err := uc.Login(ctx, dto.LoginInput{Username: "vinay", Password: "secret123"})
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "user-1", user.ID)
		assert.Equal(t, "Welcome back to RentEase!", outcome.Success)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := &MockUserRepository{}
		uc := usecase.NewUserUseCase(userRepo, zap.NewNop())

		userRepo.On("FindByUsername", ctx, "vinay").Return(stored, nil)

		user, outcome, err := uc.Login(ctx, dto.LoginInput{Username: "vinay", Password: "wrong"})
		assert.NoError(t, err)
		assert.Nil(t, user)
		assert.Equal(t, "Invalid Username or Password!", outcome.Error)
	})

	t.Run("unknown username reads the same as wrong password", func(t *testing.T) {
		userRepo := &MockUserRepository{}
		uc := usecase.NewUserUseCase(userRepo, zap.NewNop())

		userRepo.On("FindByUsername", ctx, "ghost").Return(nil, apperrors.ErrUserNotFound)

		user, outcome, err := uc.Login(ctx, dto.LoginInput{Username: "ghost", Password: "secret123"})
		assert.NoError(t, err)
		assert.Nil(t, user)
		assert.Equal(t, "Invalid Username or Password!", outcome.Error)
	})
}
