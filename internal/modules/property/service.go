package property

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/iansaccar7/casasbr-rental/internal/domain"
	"github.com/iansaccar7/casasbr-rental/internal/pkg/authz"
	"github.com/iansaccar7/casasbr-rental/internal/pkg/validator"
	"github.com/iansaccar7/casasbr-rental/internal/repository"
)

const (
	defaultPageSize  = 20
	maxPageSize      = 100
	featuredPageSize = 8
)

type Service struct {
	properties PropertyRepository
}

func NewService(properties PropertyRepository) *Service {
	return &Service{properties: properties}
}

func (s *Service) List(ctx context.Context, f repository.PropertyFilters) ([]domain.Property, int64, error) {
	if f.Limit <= 0 {
		f.Limit = defaultPageSize
	}
	if f.Limit > maxPageSize {
		f.Limit = maxPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return s.properties.GetAll(ctx, f)
}

func (s *Service) Search(ctx context.Context, term string) ([]domain.Property, error) {
	if term == "" {
		return []domain.Property{}, nil
	}
	return s.properties.Search(ctx, term)
}

// Featured returns up to 8 featured listings for the home page.
func (s *Service) Featured(ctx context.Context) ([]domain.Property, error) {
	featured := true
	properties, _, err := s.properties.GetAll(ctx, repository.PropertyFilters{
		Featured: &featured,
		Limit:    featuredPageSize,
	})
	return properties, err
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) GetMyProperties(ctx context.Context, ownerID int64) ([]domain.Property, error) {
	return s.properties.GetByOwnerID(ctx, ownerID)
}

// Create inserts a new listing. New listings always start available,
// not featured, with an empty rating.
func (s *Service) Create(ctx context.Context, ownerID int64, req CreatePropertyRequest) (*domain.Property, error) {
	propertyType, ok := domain.ParsePropertyType(req.PropertyType)
	if !ok {
		return nil, ErrValidation
	}

	p := &domain.Property{
		OwnerID:       ownerID,
		Title:         req.Title,
		Description:   req.Description,
		PropertyType:  propertyType,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		PricePerNight: req.PricePerNight,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		MaxGuests:     req.MaxGuests,
		AreaSqm:       req.AreaSqm,
		Amenities:     req.Amenities,
		Images:        req.Images,
		MainImage:     req.MainImage,
		Status:        domain.PropertyAvailable,
		Featured:      false,
		Rating:        0,
		ReviewCount:   0,
	}

	if errs := validator.Validate(p); errs != nil {
		return nil, ErrValidation
	}

	if err := s.properties.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id, callerID int64, callerRole string, req UpdatePropertyRequest) (*domain.Property, error) {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !authz.OwnerOrAdmin(p.OwnerID, callerID, callerRole) {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.PricePerNight != nil {
		if *req.PricePerNight <= 0 {
			return nil, ErrValidation
		}
		p.PricePerNight = *req.PricePerNight
	}
	if req.Status != nil {
		if !domain.ValidPropertyStatus(*req.Status) {
			return nil, ErrValidation
		}
		p.Status = domain.PropertyStatus(*req.Status)
	}

	if err := s.properties.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id, callerID int64, callerRole string) error {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !authz.OwnerOrAdmin(p.OwnerID, callerID, callerRole) {
		return ErrForbidden
	}

	return s.properties.Delete(ctx, id)
}
