package booking

import (
	"context"
	"time"

	"github.com/iansaccar7/casasbr-rental/internal/domain"
)

// BookingRepository defines the persistence operations the service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	CheckAvailability(ctx context.Context, propertyID int64, checkIn, checkOut time.Time) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus, method string) error
}

// PropertyReader is the slice of the property repository bookings need.
type PropertyReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}
