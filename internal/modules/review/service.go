package review

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"

	"github.com/iansaccar7/casasbr-rental/internal/domain"
)

type Service struct {
	reviews    ReviewRepository
	properties PropertyRatingWriter
}

func NewService(reviews ReviewRepository, properties PropertyRatingWriter) *Service {
	return &Service{
		reviews:    reviews,
		properties: properties,
	}
}

// CreateReview inserts the review and recomputes the property's aggregate
// from the full review set. A failed recompute does not roll back the
// review; the aggregate heals on the next write.
func (s *Service) CreateReview(ctx context.Context, userID int64, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrValidation
	}
	for _, sub := range []*int{req.Cleanliness, req.Accuracy, req.Communication, req.Location, req.Value} {
		if sub != nil && (*sub < 1 || *sub > 5) {
			return nil, ErrValidation
		}
	}

	if _, err := s.properties.GetByID(ctx, req.PropertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	review := &domain.Review{
		PropertyID:    req.PropertyID,
		UserID:        userID,
		BookingID:     req.BookingID,
		Rating:        req.Rating,
		Comment:       req.Comment,
		Cleanliness:   req.Cleanliness,
		Accuracy:      req.Accuracy,
		Communication: req.Communication,
		Location:      req.Location,
		Value:         req.Value,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	if err := s.recomputeRating(ctx, req.PropertyID); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *Service) GetByProperty(ctx context.Context, propertyID int64) ([]domain.Review, error) {
	return s.reviews.GetByPropertyID(ctx, propertyID)
}

func (s *Service) GetMyReviews(ctx context.Context, userID int64) ([]domain.Review, error) {
	return s.reviews.GetByUserID(ctx, userID)
}

func (s *Service) recomputeRating(ctx context.Context, propertyID int64) error {
	ratings, err := s.reviews.RatingsByProperty(ctx, propertyID)
	if err != nil {
		return err
	}
	rating := aggregateRating(ratings)
	return s.properties.UpdateRating(ctx, propertyID, rating, len(ratings))
}

// aggregateRating is the review mean scaled by 100 and rounded, so 4.5
// stars stores as 450. No reviews means 0.
func aggregateRating(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}
	var sum int
	for _, r := range ratings {
		sum += r
	}
	mean := float64(sum) / float64(len(ratings))
	return int(math.Round(mean * 100))
}
