package favorite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/iansaccar7/casasbr-rental/internal/domain"
	"github.com/iansaccar7/casasbr-rental/internal/repository"
)

// PropertyReader confirms the target listing exists before favoriting.
type PropertyReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

type Service struct {
	favorites  repository.FavoriteRepository
	properties PropertyReader
}

func NewService(favorites repository.FavoriteRepository, properties PropertyReader) *Service {
	return &Service{
		favorites:  favorites,
		properties: properties,
	}
}

func (s *Service) Add(ctx context.Context, userID, propertyID int64) (*domain.Favorite, error) {
	if _, err := s.properties.GetByID(ctx, propertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoProperty
		}
		return nil, err
	}

	favorite, err := s.favorites.Add(ctx, userID, propertyID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return favorite, nil
}

func (s *Service) Remove(ctx context.Context, userID, propertyID int64) error {
	err := s.favorites.Remove(ctx, userID, propertyID)
	if errors.Is(err, repository.ErrFavoriteNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) GetMyFavorites(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	return s.favorites.GetByUserID(ctx, userID)
}

func (s *Service) IsFavorite(ctx context.Context, userID, propertyID int64) (bool, error) {
	return s.favorites.Exists(ctx, userID, propertyID)
}
