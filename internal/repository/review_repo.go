package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/iansaccar7/casasbr-rental/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *ReviewRepository) GetByPropertyID(ctx context.Context, propertyID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// RatingsByProperty returns the bare rating values for every review of the
// property, for the full aggregate recomputation.
func (r *ReviewRepository) RatingsByProperty(ctx context.Context, propertyID int64) ([]int, error) {
	var ratings []int
	err := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("property_id = ?", propertyID).
		Pluck("rating", &ratings).Error
	return ratings, err
}
