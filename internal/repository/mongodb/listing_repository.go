package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/VinayNoogler000/RentEase/internal/domain"
	apperrors "github.com/VinayNoogler000/RentEase/internal/pkg/errors"
	"github.com/VinayNoogler000/RentEase/internal/pkg/validator"
)

type ListingRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewListingRepository(db *Mongo, logger *zap.Logger) *ListingRepository {
	return &ListingRepository{
		collection: db.Database().Collection("listings"),
		logger:     logger,
	}
}

// Insert validates the record, assigns an identifier and persists it.
func (r *ListingRepository) Insert(ctx context.Context, listing *domain.Listing) error {
	if err := validator.Validate(listing); err != nil {
		return err
	}

	listing.ID = primitive.NewObjectID().Hex()
	if listing.Reviews == nil {
		listing.Reviews = []string{}
	}
	listing.CreatedAt = time.Now()
	listing.UpdatedAt = listing.CreatedAt

	if _, err := r.collection.InsertOne(ctx, listing); err != nil {
		r.logger.Error("Failed to insert listing", zap.Error(err))
		return apperrors.ErrDatabaseError
	}
	return nil
}

func (r *ListingRepository) FindByID(ctx context.Context, id string) (*domain.Listing, error) {
	var listing domain.Listing
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&listing)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrListingNotFound
		}
		r.logger.Error("Failed to find listing", zap.String("listing_id", id), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}
	return &listing, nil
}

func (r *ListingRepository) FindAll(ctx context.Context) ([]domain.Listing, error) {
	return r.find(ctx, bson.M{})
}

func (r *ListingRepository) FindByCategory(ctx context.Context, category string) ([]domain.Listing, error) {
	return r.find(ctx, bson.M{"category": category})
}

func (r *ListingRepository) FindByDestination(ctx context.Context, location, country string) ([]domain.Listing, error) {
	return r.find(ctx, bson.M{"$or": bson.A{
		bson.M{"location": location},
		bson.M{"country": country},
	}})
}

func (r *ListingRepository) find(ctx context.Context, filter bson.M) ([]domain.Listing, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		r.logger.Error("Failed to query listings", zap.Any("filter", filter), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	listings := []domain.Listing{}
	if err := cursor.All(ctx, &listings); err != nil {
		r.logger.Error("Failed to decode listings", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}
	return listings, nil
}

// Update validates on write and rewrites the mutable fields. The _id,
// owner, reviews and created_at are never part of the update document,
// so they stay immutable at the store boundary too.
func (r *ListingRepository) Update(ctx context.Context, id string, listing *domain.Listing) error {
	if err := validator.Validate(listing); err != nil {
		return err
	}

	listing.ID = id
	listing.UpdatedAt = time.Now()

	result, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"title":       listing.Title,
		"description": listing.Description,
		"price":       listing.Price,
		"location":    listing.Location,
		"country":     listing.Country,
		"category":    listing.Category,
		"geometry":    listing.Geometry,
		"image":       listing.Image,
		"updated_at":  listing.UpdatedAt,
	}})
	if err != nil {
		r.logger.Error("Failed to update listing", zap.String("listing_id", id), zap.Error(err))
		return apperrors.ErrDatabaseError
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrListingNotFound
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("Failed to delete listing", zap.String("listing_id", id), zap.Error(err))
		return apperrors.ErrDatabaseError
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrListingNotFound
	}
	return nil
}

func (r *ListingRepository) PushReview(ctx context.Context, listingID, reviewID string) error {
	result, err := r.collection.UpdateByID(ctx, listingID, bson.M{
		"$push": bson.M{"reviews": reviewID},
	})
	if err != nil {
		r.logger.Error("Failed to push review", zap.String("listing_id", listingID), zap.Error(err))
		return apperrors.ErrDatabaseError
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrListingNotFound
	}
	return nil
}

func (r *ListingRepository) PullReview(ctx context.Context, listingID, reviewID string) error {
	result, err := r.collection.UpdateByID(ctx, listingID, bson.M{
		"$pull": bson.M{"reviews": reviewID},
	})
	if err != nil {
		r.logger.Error("Failed to pull review", zap.String("listing_id", listingID), zap.Error(err))
		return apperrors.ErrDatabaseError
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrListingNotFound
	}
	return nil
}
