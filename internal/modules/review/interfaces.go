package review

import (
	"context"

	"github.com/iansaccar7/casasbr-rental/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByPropertyID(ctx context.Context, propertyID int64) ([]domain.Review, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Review, error)
	RatingsByProperty(ctx context.Context, propertyID int64) ([]int, error)
}

// PropertyRatingWriter is the slice of the property repository reviews need
// to keep the listing aggregate in sync.
type PropertyRatingWriter interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	UpdateRating(ctx context.Context, id int64, rating, reviewCount int) error
}
