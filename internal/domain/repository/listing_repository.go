package repository

import (
	"context"

	"github.com/VinayNoogler000/RentEase/internal/domain"
)

// ListingRepository is the persistent listing collection. Writes run full
// schema validation; a failed validation surfaces as ErrValidationFailed,
// distinct from ErrListingNotFound.
type ListingRepository interface {
	// Insert assigns an identifier and persists the record.
	Insert(ctx context.Context, listing *domain.Listing) error

	// FindByID returns ErrListingNotFound when the id has no record.
	FindByID(ctx context.Context, id string) (*domain.Listing, error)

	FindAll(ctx context.Context) ([]domain.Listing, error)

	// FindByCategory filters by exact category match.
	FindByCategory(ctx context.Context, category string) ([]domain.Listing, error)

	// FindByDestination matches listings whose location equals location
	// OR whose country equals country.
	FindByDestination(ctx context.Context, location, country string) ([]domain.Listing, error)

	// Update persists the record under id, validating on write.
	Update(ctx context.Context, id string, listing *domain.Listing) error

	Delete(ctx context.Context, id string) error

	// PushReview and PullReview maintain the listing's review-id list on
	// behalf of the review subsystem.
	PushReview(ctx context.Context, listingID, reviewID string) error
	PullReview(ctx context.Context, listingID, reviewID string) error
}
