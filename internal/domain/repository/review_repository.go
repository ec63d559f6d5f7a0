package repository

import (
	"context"

	"github.com/VinayNoogler000/RentEase/internal/domain"
)

// ReviewRepository stores review records owned by the review subsystem.
type ReviewRepository interface {
	Insert(ctx context.Context, review *domain.Review) error
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Review, error)
	Delete(ctx context.Context, id string) error

	// DeleteMany removes all reviews in ids; used for cascading cleanup
	// when a listing is deleted.
	DeleteMany(ctx context.Context, ids []string) error
}
