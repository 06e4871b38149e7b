package domain

import "time"

// Message is a direct message between two users, optionally about a
// property. IsRead only ever flips from false to true.
type Message struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID int64     `json:"receiver_id"`
	PropertyID *int64    `json:"property_id,omitempty"`
	Subject    string    `json:"subject,omitempty"`
	Body       string    `json:"body" gorm:"column:body;type:text"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}
