package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/VinayNoogler000/RentEase/internal/domain"
	"github.com/VinayNoogler000/RentEase/internal/domain/repository"
	apperrors "github.com/VinayNoogler000/RentEase/internal/pkg/errors"
	"github.com/VinayNoogler000/RentEase/internal/usecase/dto"
)

// UserUseCase backs the session-based authentication subsystem: signup,
// login and actor lookup for the auth middleware.
type UserUseCase struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

func NewUserUseCase(userRepo repository.UserRepository, logger *zap.Logger) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Signup registers a new user with a bcrypt password hash.
func (uc *UserUseCase) Signup(ctx context.Context, in dto.SignupInput) (*domain.User, dto.Outcome, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, dto.Outcome{}, err
	}

	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
	}

	if err := uc.userRepo.Insert(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			return nil, dto.Outcome{Error: "A User with this Username or Email already Exists!"}, nil
		}
		uc.logger.Error("Failed to create user", zap.Error(err))
		return nil, dto.Outcome{}, err
	}

	uc.logger.Info("User registered", zap.String("user_id", user.ID), zap.String("username", user.Username))
	return user, dto.Outcome{Success: "Welcome to RentEase!"}, nil
}

// Login verifies the credentials. Unknown usernames and wrong passwords
// produce the same outcome message.
func (uc *UserUseCase) Login(ctx context.Context, in dto.LoginInput) (*domain.User, dto.Outcome, error) {
	user, err := uc.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, dto.Outcome{Error: "Invalid Username or Password!"}, nil
		}
		return nil, dto.Outcome{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, dto.Outcome{Error: "Invalid Username or Password!"}, nil
	}

	uc.logger.Info("User logged in", zap.String("user_id", user.ID))
	return user, dto.Outcome{Success: "Welcome back to RentEase!"}, nil
}

// GetByID resolves the session's user id to the current actor.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return uc.userRepo.FindByID(ctx, id)
}
