package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/iansaccar7/casasbr-rental/internal/domain"
)

// PropertyFilters narrows the catalog listing. Zero values mean "no filter";
// Featured uses a pointer so false can be filtered explicitly.
type PropertyFilters struct {
	City         string
	State        string
	PropertyType string
	MinPrice     int64
	MaxPrice     int64
	Bedrooms     int
	MaxGuests    int
	Featured     *bool
	Limit        int
	Offset       int
}

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) GetAll(ctx context.Context, f PropertyFilters) ([]domain.Property, int64, error) {
	var properties []domain.Property
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.Property{})

	if f.City != "" {
		q = q.Where("city LIKE ?", "%"+f.City+"%")
	}
	if f.State != "" {
		q = q.Where("state = ?", f.State)
	}
	if f.PropertyType != "" {
		q = q.Where("property_type = ?", f.PropertyType)
	}
	if f.MinPrice > 0 {
		q = q.Where("price_per_night >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("price_per_night <= ?", f.MaxPrice)
	}
	if f.Bedrooms > 0 {
		q = q.Where("bedrooms >= ?", f.Bedrooms)
	}
	if f.MaxGuests > 0 {
		q = q.Where("max_guests >= ?", f.MaxGuests)
	}
	if f.Featured != nil {
		q = q.Where("featured = ?", *f.Featured)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.
		Order("featured DESC").
		Order("rating DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&properties).Error

	return properties, total, err
}

// Search does substring matching on title, city and description.
func (r *PropertyRepository) Search(ctx context.Context, term string) ([]domain.Property, error) {
	var properties []domain.Property
	pattern := "%" + term + "%"

	err := r.db.WithContext(ctx).
		Where("title LIKE ? OR city LIKE ? OR description LIKE ?", pattern, pattern, pattern).
		Limit(50).
		Find(&properties).Error

	return properties, err
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	var property domain.Property
	err := r.db.WithContext(ctx).First(&property, id).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *PropertyRepository) GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Property, error) {
	var properties []domain.Property
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&properties).Error
	return properties, err
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PropertyRepository) Update(ctx context.Context, p *domain.Property) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PropertyRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Property{}, id).Error
}

// UpdateRating writes the aggregate computed from the property's reviews.
func (r *PropertyRepository) UpdateRating(ctx context.Context, id int64, rating, reviewCount int) error {
	return r.db.WithContext(ctx).
		Model(&domain.Property{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"rating":       rating,
			"review_count": reviewCount,
		}).Error
}
