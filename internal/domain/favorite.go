package domain

import "time"

// Favorite links a user to a property. One row per (UserID, PropertyID).
type Favorite struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id" gorm:"uniqueIndex:idx_favorites_user_property"`
	PropertyID int64     `json:"property_id" gorm:"uniqueIndex:idx_favorites_user_property"`
	CreatedAt  time.Time `json:"created_at"`

	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
}
