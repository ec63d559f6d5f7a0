package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/VinayNoogler000/RentEase/internal/domain"
	"github.com/VinayNoogler000/RentEase/internal/domain/repository"
	apperrors "github.com/VinayNoogler000/RentEase/internal/pkg/errors"
	"github.com/VinayNoogler000/RentEase/internal/usecase/dto"
)

// ReviewUseCase owns review records; listings only reference them.
type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	listingRepo repository.ListingRepository
	logger      *zap.Logger
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	listingRepo repository.ListingRepository,
	logger *zap.Logger,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		listingRepo: listingRepo,
		logger:      logger,
	}
}

// Create stores a review and links it to its listing.
func (uc *ReviewUseCase) Create(ctx context.Context, listingID, authorID string, in dto.ReviewInput) (dto.Outcome, error) {
	if _, err := uc.listingRepo.FindByID(ctx, listingID); err != nil {
		if errors.Is(err, apperrors.ErrListingNotFound) {
			return dto.Outcome{Error: "Listing which you want to Review Doesn't Exists!"}, nil
		}
		return dto.Outcome{}, err
	}

	review := &domain.Review{
		Comment: in.Comment,
		Rating:  in.Rating,
		Author:  authorID,
	}

	if err := uc.reviewRepo.Insert(ctx, review); err != nil {
		uc.logger.Error("Failed to create review", zap.String("listing_id", listingID), zap.Error(err))
		return dto.Outcome{}, err
	}

	if err := uc.listingRepo.PushReview(ctx, listingID, review.ID); err != nil {
		uc.logger.Error("Failed to link review to listing",
			zap.String("listing_id", listingID),
			zap.String("review_id", review.ID),
			zap.Error(err))
		return dto.Outcome{}, err
	}

	uc.logger.Info("Review created",
		zap.String("listing_id", listingID),
		zap.String("review_id", review.ID))
	return dto.Outcome{Success: "New Review Created Successfully!"}, nil
}

// Delete removes a review and unlinks it from its listing. Only the
// review's author may delete it.
func (uc *ReviewUseCase) Delete(ctx context.Context, listingID, reviewID, actorID string) (dto.Outcome, error) {
	review, err := uc.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, apperrors.ErrReviewNotFound) {
			return dto.Outcome{Error: "Review which you want to Delete Doesn't Exists!"}, nil
		}
		return dto.Outcome{}, err
	}

	if review.Author != actorID {
		return dto.Outcome{}, apperrors.ErrForbidden
	}

	if err := uc.listingRepo.PullReview(ctx, listingID, reviewID); err != nil &&
		!errors.Is(err, apperrors.ErrListingNotFound) {
		return dto.Outcome{}, err
	}

	if err := uc.reviewRepo.Delete(ctx, reviewID); err != nil {
		uc.logger.Error("Failed to delete review", zap.String("review_id", reviewID), zap.Error(err))
		return dto.Outcome{}, err
	}

	uc.logger.Info("Review deleted",
		zap.String("listing_id", listingID),
		zap.String("review_id", reviewID))
	return dto.Outcome{Success: "Review Deleted Successfully!"}, nil
}
