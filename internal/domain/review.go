package domain

import "time"

type Review struct {
	ID            int64     `json:"id"`
	PropertyID    int64     `json:"property_id"`
	UserID        int64     `json:"user_id"`
	BookingID     *int64    `json:"booking_id,omitempty"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	Cleanliness   *int      `json:"cleanliness,omitempty"`
	Accuracy      *int      `json:"accuracy,omitempty"`
	Communication *int      `json:"communication,omitempty"`
	Location      *int      `json:"location,omitempty"`
	Value         *int      `json:"value,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
