package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/VinayNoogler000/RentEase/internal/domain"
	apperrors "github.com/VinayNoogler000/RentEase/internal/pkg/errors"
	"github.com/VinayNoogler000/RentEase/internal/usecase"
	"github.com/VinayNoogler000/RentEase/internal/usecase/dto"
)

func TestReviewUseCase_Create(t *testing.T) {
	ctx := context.Background()
	input := dto.ReviewInput{Comment: "Great stay", Rating: 5}

	t.Run("stores review and links it to the listing", func(t *testing.T) {
		reviewRepo := &MockReviewRepository{}
		listingRepo := &MockListingRepository{}
		uc := usecase.NewReviewUseCase(reviewRepo, listingRepo, zap.NewNop())

		listingRepo.On("FindByID", ctx, "l1").Return(&domain.Listing{ID: "l1", Owner: "user-1"}, nil)
		reviewRepo.On("Insert", ctx, mock.MatchedBy(func(r *domain.Review) bool {
			return r.Comment == "Great stay" && r.Rating == 5 && r.Author == "user-2"
		})).Return(nil)
		listingRepo.On("PushReview", ctx, "l1", mock.AnythingOfType("string")).Return(nil)

		outcome, err := uc.Create(ctx, "l1", "user-2", input)
		require.NoError(t, err)
		assert.Equal(t, "New Review Created Successfully!", outcome.Success)
		reviewRepo.AssertExpectations(t)
		listingRepo.AssertExpectations(t)
	})

	t.Run("missing listing yields error outcome, no insert", func(t *testing.T) {
		reviewRepo := &MockReviewRepository{}
		listingRepo := &MockListingRepository{}
		uc := usecase.NewReviewUseCase(reviewRepo, listingRepo, zap.NewNop())

		listingRepo.On("FindByID", ctx, "missing").Return(nil, apperrors.ErrListingNotFound)

		outcome, err := uc.Create(ctx, "missing", "user-2", input)
		assert.NoError(t, err)
		assert.Equal(t, "Listing which you want to Review Doesn't Exists!", outcome.Error)
		reviewRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		reviewRepo := &MockReviewRepository{}
		listingRepo := &MockListingRepository{}
		uc := usecase.NewReviewUseCase(reviewRepo, listingRepo, zap.NewNop())

		listingRepo.On("FindByID", ctx, "l1").Return(&domain.Listing{ID: "l1"}, nil)
		reviewRepo.On("Insert", ctx, mock.Anything).Return(apperrors.ErrDatabaseError)

		_, err := uc.Create(ctx, "l1", "user-2", input)
		assert.True(t, errors.Is(err, apperrors.ErrDatabaseError))
	})
}

func TestReviewUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("author removes the review and its link", func(t *testing.T) {
		reviewRepo := &MockReviewRepository{}
		listingRepo := &MockListingRepository{}
		uc := usecase.NewReviewUseCase(reviewRepo, listingRepo, zap.NewNop())

		reviewRepo.On("FindByID", ctx, "r1").Return(&domain.Review{ID: "r1", Author: "user-2"}, nil)
		listingRepo.On("PullReview", ctx, "l1", "r1").Return(nil)
		reviewRepo.On("Delete", ctx, "r1").Return(nil)

		outcome, err := uc.Delete(ctx, "l1", "r1", "user-2")
		require.NoError(t, err)
		assert.Equal(t, "Review Deleted Successfully!", outcome.Success)
		reviewRepo.AssertExpectations(t)
		listingRepo.AssertExpectations(t)
	})

	t.Run("non-author is forbidden", func(t *testing.T) {
		reviewRepo := &MockReviewRepository{}
		listingRepo := &MockListingRepository{}
		uc := usecase.NewReviewUseCase(reviewRepo, listingRepo, zap.NewNop())

		reviewRepo.On("FindByID", ctx, "r1").Return(&domain.Review{ID: "r1", Author: "user-2"}, nil)

		_, err := uc.Delete(ctx, "l1", "r1", "intruder")
		assert.True(t, errors.Is(err, apperrors.ErrForbidden))
		reviewRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing review yields error outcome", func(t *testing.T) {
		reviewRepo := &MockReviewRepository{}
		listingRepo := &MockListingRepository{}
		uc := usecase.NewReviewUseCase(reviewRepo, listingRepo, zap.NewNop())

		reviewRepo.On("FindByID", ctx, "missing").Return(nil, apperrors.ErrReviewNotFound)

		outcome, err := uc.Delete(ctx, "l1", "missing", "user-2")
		assert.NoError(t, err)
		assert.NotEmpty(t, outcome.Error)
	})

	t.Run("listing already gone still deletes the review", func(t *testing.T) {
		reviewRepo := &MockReviewRepository{}
		listingRepo := &MockListingRepository{}
		uc := usecase.NewReviewUseCase(reviewRepo, listingRepo, zap.NewNop())

		reviewRepo.On("FindByID", ctx, "r1").Return(&domain.Review{ID: "r1", Author: "user-2"}, nil)
		listingRepo.On("PullReview", ctx, "gone", "r1").Return(apperrors.ErrListingNotFound)
		reviewRepo.On("Delete", ctx, "r1").Return(nil)

		outcome, err := uc.Delete(ctx, "gone", "r1", "user-2")
		require.NoError(t, err)
		assert.Equal(t, "Review Deleted Successfully!", outcome.Success)
	})
}
