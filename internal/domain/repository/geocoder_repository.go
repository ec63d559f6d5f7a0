package repository

import (
	"context"

	"github.com/VinayNoogler000/RentEase/internal/domain"
)

// Geocoder resolves a free-text location and country to geographic
// coordinates. Resolution failure is blocking for listing writes.
type Geocoder interface {
	Forward(ctx context.Context, location, country string) (*domain.Geometry, error)
}
