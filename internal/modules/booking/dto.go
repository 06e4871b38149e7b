package booking

import "time"

type CreateBookingRequest struct {
	PropertyID      int64     `json:"property_id" binding:"required"`
	CheckIn         time.Time `json:"check_in" binding:"required"`
	CheckOut        time.Time `json:"check_out" binding:"required"`
	Guests          int       `json:"guests" binding:"required,gt=0"`
	SpecialRequests string    `json:"special_requests"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
	PaymentMethod string `json:"payment_method"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}
