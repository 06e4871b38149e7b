package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

func ValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// Booking reserves a property for [CheckIn, CheckOut). TotalPrice is in
// centavos and is computed server-side from the nightly price.
type Booking struct {
	ID              int64         `json:"id"`
	PropertyID      int64         `json:"property_id" validate:"required"`
	UserID          int64         `json:"user_id" validate:"required"`
	CheckIn         time.Time     `json:"check_in" validate:"required"`
	CheckOut        time.Time     `json:"check_out" validate:"required"`
	Guests          int           `json:"guests" validate:"gt=0"`
	TotalPrice      int64         `json:"total_price" validate:"gte=0"`
	Status          BookingStatus `json:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	PaymentMethod   string        `json:"payment_method,omitempty"`
	SpecialRequests string        `json:"special_requests,omitempty" gorm:"type:text"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
