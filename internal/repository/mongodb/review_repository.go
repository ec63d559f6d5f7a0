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

type ReviewRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewReviewRepository(db *Mongo, logger *zap.Logger) *ReviewRepository {
	return &ReviewRepository{
		collection: db.Database().Collection("reviews"),
		logger:     logger,
	}
}

func (r *ReviewRepository) Insert(ctx context.Context, review *domain.Review) error {
	if err := validator.Validate(review); err != nil {
		return err
	}

	review.ID = primitive.NewObjectID().Hex()
	review.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, review); err != nil {
		r.logger.Error("Failed to insert review", zap.Error(err))
		return apperrors.ErrDatabaseError
	}
	return nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id string) (*domain.Review, error) {
	var review domain.Review
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrReviewNotFound
		}
		r.logger.Error("Failed to find review", zap.String("review_id", id), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}
	return &review, nil
}

// FindByIDs returns the reviews in ids, oldest first, matching the order
// reviews were left on a listing.
func (r *ReviewRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Review, error) {
	if len(ids) == 0 {
		return []domain.Review{}, nil
	}

	opts := options.Find().SetSort(bson.M{"created_at": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		r.logger.Error("Failed to query reviews", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	reviews := []domain.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		r.logger.Error("Failed to decode reviews", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}
	return reviews, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("Failed to delete review", zap.String("review_id", id), zap.Error(err))
		return apperrors.ErrDatabaseError
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepository) DeleteMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}}); err != nil {
		r.logger.Error("Failed to delete reviews", zap.Int("count", len(ids)), zap.Error(err))
		return apperrors.ErrDatabaseError
	}
	return nil
}
