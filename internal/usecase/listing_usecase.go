package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/VinayNoogler000/RentEase/internal/domain"
	"github.com/VinayNoogler000/RentEase/internal/domain/repository"
	apperrors "github.com/VinayNoogler000/RentEase/internal/pkg/errors"
	"github.com/VinayNoogler000/RentEase/internal/pkg/utils"
	"github.com/VinayNoogler000/RentEase/internal/usecase/dto"
)

// ListingUseCase orchestrates the listing lifecycle: validation,
// geocoding, image resolution and store operations. NotFound and
// geocoding failures are converted into Outcome flash messages here;
// validation and store failures propagate as errors to the top-level
// error page.
type ListingUseCase struct {
	listingRepo repository.ListingRepository
	reviewRepo  repository.ReviewRepository
	userRepo    repository.UserRepository
	geocoder    repository.Geocoder
	logger      *zap.Logger
}

func NewListingUseCase(
	listingRepo repository.ListingRepository,
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	geocoder repository.Geocoder,
	logger *zap.Logger,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
		geocoder:    geocoder,
		logger:      logger,
	}
}

// List returns every listing for the index page.
func (uc *ListingUseCase) List(ctx context.Context) ([]domain.Listing, error) {
	listings, err := uc.listingRepo.FindAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to list listings", zap.Error(err))
		return nil, err
	}
	return listings, nil
}

// Get returns the bare listing; used by handlers that need the record
// without relation expansion.
func (uc *ListingUseCase) Get(ctx context.Context, id string) (*domain.Listing, error) {
	return uc.listingRepo.FindByID(ctx, id)
}

// View fetches a listing with its owner and reviews (with authors)
// expanded. A missing id yields an error Outcome, not a failure.
func (uc *ListingUseCase) View(ctx context.Context, id string) (*dto.ListingDetail, dto.Outcome, error) {
	listing, err := uc.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrListingNotFound) {
			return nil, dto.Outcome{Error: "Listing which you want to view Doesn't Exists!"}, nil
		}
		return nil, dto.Outcome{}, err
	}

	detail := &dto.ListingDetail{Listing: *listing}

	owner, err := uc.userRepo.FindByID(ctx, listing.Owner)
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, dto.Outcome{}, err
		}
		uc.logger.Warn("Listing owner missing",
			zap.String("listing_id", id),
			zap.String("owner_id", listing.Owner))
	}
	detail.Owner = owner

	reviews, err := uc.reviewRepo.FindByIDs(ctx, listing.Reviews)
	if err != nil {
		return nil, dto.Outcome{}, err
	}
	for _, review := range reviews {
		author, err := uc.userRepo.FindByID(ctx, review.Author)
		if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, dto.Outcome{}, err
		}
		detail.Reviews = append(detail.Reviews, dto.ReviewWithAuthor{
			Review: review,
			Author: author,
		})
	}

	return detail, dto.Outcome{}, nil
}

// Create geocodes the location (blocking), resolves the image and
// inserts the record with the authenticated actor as its owner.
func (uc *ListingUseCase) Create(ctx context.Context, in dto.ListingInput, ownerID string) (*domain.Listing, dto.Outcome, error) {
	geometry, err := uc.geocoder.Forward(ctx, in.Location, in.Country)
	if err != nil {
		if errors.Is(err, apperrors.ErrGeocodingFailed) {
			uc.logger.Warn("Geocoding failed on create",
				zap.String("location", in.Location),
				zap.String("country", in.Country),
				zap.Error(err))
			return nil, dto.Outcome{Error: geocodingErrorMessage(in.Location, in.Country)}, nil
		}
		return nil, dto.Outcome{}, err
	}

	image := domain.PlaceholderImage(in.Title)
	if in.Image != nil {
		image = domain.Image{Filename: in.Image.Filename, URL: in.Image.URL}
	}

	listing := &domain.Listing{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Location:    in.Location,
		Country:     in.Country,
		Category:    in.Category,
		Geometry:    *geometry,
		Image:       image,
		Owner:       ownerID,
	}

	if err := uc.listingRepo.Insert(ctx, listing); err != nil {
		uc.logger.Error("Failed to create listing", zap.Error(err))
		return nil, dto.Outcome{}, err
	}

	uc.logger.Info("Listing created",
		zap.String("listing_id", listing.ID),
		zap.String("owner_id", ownerID))
	return listing, dto.Outcome{Success: "New Listing Created Successfully!"}, nil
}

// FilterByCategory returns listings with an exact category match. An
// empty result is reported as an error Outcome naming the category.
func (uc *ListingUseCase) FilterByCategory(ctx context.Context, category string) ([]domain.Listing, dto.Outcome, error) {
	listings, err := uc.listingRepo.FindByCategory(ctx, category)
	if err != nil {
		uc.logger.Error("Failed to filter listings", zap.String("category", category), zap.Error(err))
		return nil, dto.Outcome{}, err
	}

	if len(listings) == 0 {
		return nil, dto.Outcome{
			Error: fmt.Sprintf("No Listings Found of Category: %s!", utils.CategoryLabel(category)),
		}, nil
	}

	return listings, dto.Outcome{}, nil
}

// Search matches listings whose location or country equals the user's
// destination. "Paris, France" matches location == "Paris" OR
// country == "France"; "Paris" matches either field against "Paris".
func (uc *ListingUseCase) Search(ctx context.Context, dest string) ([]domain.Listing, dto.Outcome, error) {
	dest = strings.TrimSpace(dest)
	location, country := utils.SplitDestination(dest)

	listings, err := uc.listingRepo.FindByDestination(ctx, location, country)
	if err != nil {
		uc.logger.Error("Failed to search listings", zap.String("dest", dest), zap.Error(err))
		return nil, dto.Outcome{}, err
	}

	if len(listings) == 0 {
		return nil, dto.Outcome{Error: fmt.Sprintf("No Listings Found in %s!", dest)}, nil
	}

	return listings, dto.Outcome{}, nil
}

// EditData fetches the listing for the edit form together with a
// thumbnail URL derived from the stored image. Only the owner may edit.
func (uc *ListingUseCase) EditData(ctx context.Context, id, actorID string) (*dto.EditFormData, dto.Outcome, error) {
	listing, err := uc.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrListingNotFound) {
			return nil, dto.Outcome{Error: "Listing which you want to Edit Doesn't Exists!"}, nil
		}
		return nil, dto.Outcome{}, err
	}

	if listing.Owner != actorID {
		return nil, dto.Outcome{}, apperrors.ErrForbidden
	}

	return &dto.EditFormData{
		Listing:         *listing,
		OptimizedImgURL: domain.OptimizedImageURL(listing.Image.URL),
	}, dto.Outcome{}, nil
}

// Update re-derives the geometry (blocking), carries the stored image
// forward when the request has no new one and persists the result. The
// owner is taken from the stored record and never changes.
func (uc *ListingUseCase) Update(ctx context.Context, id, actorID string, in dto.ListingInput) (*domain.Listing, dto.Outcome, error) {
	current, err := uc.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrListingNotFound) {
			return nil, dto.Outcome{Error: "Listing which you want to Update Doesn't Exists!"}, nil
		}
		return nil, dto.Outcome{}, err
	}

	if current.Owner != actorID {
		return nil, dto.Outcome{}, apperrors.ErrForbidden
	}

	geometry, err := uc.geocoder.Forward(ctx, in.Location, in.Country)
	if err != nil {
		if errors.Is(err, apperrors.ErrGeocodingFailed) {
			uc.logger.Warn("Geocoding failed on update",
				zap.String("listing_id", id),
				zap.String("location", in.Location),
				zap.String("country", in.Country),
				zap.Error(err))
			return nil, dto.Outcome{Error: geocodingErrorMessage(in.Location, in.Country)}, nil
		}
		return nil, dto.Outcome{}, err
	}

	var incoming *domain.Image
	if in.Image != nil {
		incoming = &domain.Image{Filename: in.Image.Filename, URL: in.Image.URL}
	}

	updated := &domain.Listing{
		ID:          current.ID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Location:    in.Location,
		Country:     in.Country,
		Category:    in.Category,
		Geometry:    *geometry,
		Image:       domain.MergeImage(current.Image, incoming),
		Owner:       current.Owner,
		Reviews:     current.Reviews,
		CreatedAt:   current.CreatedAt,
	}

	if err := uc.listingRepo.Update(ctx, id, updated); err != nil {
		if errors.Is(err, apperrors.ErrListingNotFound) {
			return nil, dto.Outcome{Error: "Listing which you want to Update Doesn't Exists!"}, nil
		}
		uc.logger.Error("Failed to update listing", zap.String("listing_id", id), zap.Error(err))
		return nil, dto.Outcome{}, err
	}

	uc.logger.Info("Listing updated", zap.String("listing_id", id))
	return updated, dto.Outcome{Success: "Listing Updated Successfully!"}, nil
}

// Delete removes the listing and cascades deletion of its reviews.
// Only the owner may delete.
func (uc *ListingUseCase) Delete(ctx context.Context, id, actorID string) (dto.Outcome, error) {
	listing, err := uc.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrListingNotFound) {
			return dto.Outcome{Error: "Listing which you want to Delete Doesn't Exists!"}, nil
		}
		return dto.Outcome{}, err
	}

	if listing.Owner != actorID {
		return dto.Outcome{}, apperrors.ErrForbidden
	}

	if err := uc.reviewRepo.DeleteMany(ctx, listing.Reviews); err != nil {
		uc.logger.Error("Failed to delete dependent reviews", zap.String("listing_id", id), zap.Error(err))
		return dto.Outcome{}, err
	}

	if err := uc.listingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrListingNotFound) {
			return dto.Outcome{Error: "Listing which you want to Delete Doesn't Exists!"}, nil
		}
		uc.logger.Error("Failed to delete listing", zap.String("listing_id", id), zap.Error(err))
		return dto.Outcome{}, err
	}

	uc.logger.Info("Listing deleted", zap.String("listing_id", id))
	return dto.Outcome{Success: "Listing Deleted Successfully!"}, nil
}

func geocodingErrorMessage(location, country string) string {
	return fmt.Sprintf("Couldn't find the Location: %s, %s! Please enter a Valid Location.", location, country)
}
