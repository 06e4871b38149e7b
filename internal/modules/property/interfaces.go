package property

import (
	"context"

	"github.com/iansaccar7/casasbr-rental/internal/domain"
	"github.com/iansaccar7/casasbr-rental/internal/repository"
)

type PropertyRepository interface {
	GetAll(ctx context.Context, f repository.PropertyFilters) ([]domain.Property, int64, error)
	Search(ctx context.Context, term string) ([]domain.Property, error)
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Property, error)
	Create(ctx context.Context, p *domain.Property) error
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id int64) error
}
