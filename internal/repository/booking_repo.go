package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/iansaccar7/casasbr-rental/internal/domain"
)

// ErrOverlap is returned when a booking insert loses the race against a
// conflicting reservation inside the create transaction.
var ErrOverlap = errors.New("booking dates overlap an existing reservation")

var blockingStatuses = []string{
	string(domain.BookingPending),
	string(domain.BookingConfirmed),
}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	PropertyID      int64     `gorm:"column:property_id"`
	UserID          int64     `gorm:"column:user_id"`
	CheckIn         time.Time `gorm:"column:check_in"`
	CheckOut        time.Time `gorm:"column:check_out"`
	Guests          int       `gorm:"column:guests"`
	TotalPrice      int64     `gorm:"column:total_price"`
	Status          string    `gorm:"column:status"`
	PaymentStatus   string    `gorm:"column:payment_status"`
	PaymentMethod   *string   `gorm:"column:payment_method"`
	SpecialRequests *string   `gorm:"column:special_requests"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var method, requests string
	if m.PaymentMethod != nil {
		method = *m.PaymentMethod
	}
	if m.SpecialRequests != nil {
		requests = *m.SpecialRequests
	}

	return &domain.Booking{
		ID:              m.ID,
		PropertyID:      m.PropertyID,
		UserID:          m.UserID,
		CheckIn:         m.CheckIn,
		CheckOut:        m.CheckOut,
		Guests:          m.Guests,
		TotalPrice:      m.TotalPrice,
		Status:          domain.BookingStatus(m.Status),
		PaymentStatus:   domain.PaymentStatus(m.PaymentStatus),
		PaymentMethod:   method,
		SpecialRequests: requests,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var method, requests *string
	if b.PaymentMethod != "" {
		v := b.PaymentMethod
		method = &v
	}
	if b.SpecialRequests != "" {
		v := b.SpecialRequests
		requests = &v
	}

	return bookingModel{
		ID:              b.ID,
		PropertyID:      b.PropertyID,
		UserID:          b.UserID,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Guests:          b.Guests,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		PaymentMethod:   method,
		SpecialRequests: requests,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// Create inserts the booking after re-checking availability inside one
// transaction, so two concurrent requests for overlapping dates cannot
// both commit. Returns ErrOverlap when the re-check finds a conflict.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&bookingModel{}).
			Where("property_id = ?", m.PropertyID).
			Where("status IN ?", blockingStatuses).
			Where("check_in < ? AND ? < check_out", m.CheckOut, m.CheckIn).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrOverlap
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return err
	}

	*b = *toDomainBooking(m)
	return nil
}

// CheckAvailability reports whether [checkIn, checkOut) is free of pending
// or confirmed bookings for the property. Half-open intervals: a stay that
// starts exactly when another ends is not a conflict.
func (r *BookingRepository) CheckAvailability(ctx context.Context, propertyID int64, checkIn, checkOut time.Time) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("property_id = ?", propertyID).
		Where("status IN ?", blockingStatuses).
		Where("check_in < ? AND ? < check_out", checkOut, checkIn).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt == 0, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus, method string) error {
	updates := map[string]interface{}{
		"payment_status": string(status),
	}
	if method != "" {
		updates["payment_method"] = method
	}

	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(updates).Error
}
