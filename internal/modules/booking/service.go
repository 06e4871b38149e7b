package booking

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/iansaccar7/casasbr-rental/internal/domain"
	"github.com/iansaccar7/casasbr-rental/internal/pkg/authz"
	"github.com/iansaccar7/casasbr-rental/internal/pkg/validator"
	"github.com/iansaccar7/casasbr-rental/internal/repository"
)

type Service struct {
	bookings   BookingRepository
	properties PropertyReader
}

func NewService(bookings BookingRepository, properties PropertyReader) *Service {
	return &Service{
		bookings:   bookings,
		properties: properties,
	}
}

// CreateBooking validates the date range, checks availability and inserts
// the booking as pending/pending. The total price is always recomputed from
// the property's nightly price; whatever the client sent is ignored.
func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	if !req.CheckIn.Before(req.CheckOut) {
		return nil, ErrValidation
	}

	property, err := s.properties.GetByID(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ok, err := s.bookings.CheckAvailability(ctx, req.PropertyID, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAvailable
	}

	total := property.PricePerNight * nightsBetween(req.CheckIn, req.CheckOut)

	b := &domain.Booking{
		PropertyID:      req.PropertyID,
		UserID:          userID,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Guests:          req.Guests,
		TotalPrice:      total,
		Status:          domain.BookingPending,
		PaymentStatus:   domain.PaymentPending,
		SpecialRequests: req.SpecialRequests,
	}

	if errs := validator.Validate(b); errs != nil {
		return nil, ErrValidation
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrOverlap) {
			return nil, ErrNotAvailable
		}
		// 23P01 is the exclusion constraint backing the overlap check on
		// Postgres; 23505 covers older schemas that used a unique index.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == "23P01" || pgErr.Code == "23505") && pgErr.ConstraintName == "idx_bookings_no_overlap" {
			return nil, ErrNotAvailable
		}
		return nil, err
	}

	return b, nil
}

// CheckAvailability is the public read-only predicate behind
// GET /bookings/availability. Repository errors propagate instead of
// degrading to "available".
func (s *Service) CheckAvailability(ctx context.Context, propertyID int64, checkIn, checkOut time.Time) (bool, error) {
	if !checkIn.Before(checkOut) {
		return false, ErrValidation
	}
	return s.bookings.CheckAvailability(ctx, propertyID, checkIn, checkOut)
}

func (s *Service) GetMyBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.GetByUserID(ctx, userID)
}

func (s *Service) GetByID(ctx context.Context, bookingID, callerID int64, callerRole string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !authz.OwnerOrAdmin(b.UserID, callerID, callerRole) {
		return nil, ErrForbidden
	}
	return b, nil
}

// UpdateStatus sets the booking status. Any valid status value is accepted
// from any current status; there is deliberately no transition table.
func (s *Service) UpdateStatus(ctx context.Context, bookingID, callerID int64, callerRole, status string) (*domain.Booking, error) {
	if !domain.ValidBookingStatus(status) {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !authz.OwnerOrAdmin(b.UserID, callerID, callerRole) {
		return nil, ErrForbidden
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingStatus(status)); err != nil {
		return nil, err
	}

	b.Status = domain.BookingStatus(status)
	return b, nil
}

func (s *Service) UpdatePaymentStatus(ctx context.Context, bookingID, callerID int64, callerRole, status, method string) (*domain.Booking, error) {
	if !domain.ValidPaymentStatus(status) {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !authz.OwnerOrAdmin(b.UserID, callerID, callerRole) {
		return nil, ErrForbidden
	}

	if err := s.bookings.UpdatePaymentStatus(ctx, bookingID, domain.PaymentStatus(status), method); err != nil {
		return nil, err
	}

	b.PaymentStatus = domain.PaymentStatus(status)
	if method != "" {
		b.PaymentMethod = method
	}
	return b, nil
}

// nightsBetween counts billable nights. Partial days round up so a late
// check-out still pays for the night.
func nightsBetween(checkIn, checkOut time.Time) int64 {
	nights := int64(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights
}
