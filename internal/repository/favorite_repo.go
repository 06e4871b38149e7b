package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/iansaccar7/casasbr-rental/internal/domain"
)

var (
	ErrDuplicateFavorite = errors.New("property already in favorites")
	ErrFavoriteNotFound  = errors.New("favorite not found")
)

// FavoriteRepository is the favorites association table.
type FavoriteRepository interface {
	Add(ctx context.Context, userID, propertyID int64) (*domain.Favorite, error)
	Remove(ctx context.Context, userID, propertyID int64) error
	GetByUserID(ctx context.Context, userID int64) ([]domain.Favorite, error)
	Exists(ctx context.Context, userID, propertyID int64) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add inserts the pair. The unique index on (user_id, property_id) is the
// real guard; the Exists pre-check just gives a cleaner error on the common
// path.
func (r *favoriteRepository) Add(ctx context.Context, userID, propertyID int64) (*domain.Favorite, error) {
	exists, err := r.Exists(ctx, userID, propertyID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateFavorite
	}

	favorite := &domain.Favorite{
		UserID:     userID,
		PropertyID: propertyID,
	}

	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		return nil, err
	}

	return favorite, nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, propertyID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&domain.Favorite{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (r *favoriteRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	var favorites []domain.Favorite

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Property").
		Order("created_at DESC").
		Find(&favorites).Error

	return favorites, err
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, propertyID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Count(&count).Error

	if err != nil {
		return false, err
	}
	return count > 0, nil
}
