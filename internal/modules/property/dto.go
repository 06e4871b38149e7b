package property

import "github.com/iansaccar7/casasbr-rental/internal/domain"

type CreatePropertyRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	PropertyType  string `json:"property_type" binding:"required"`
	Address       string `json:"address" binding:"required"`
	City          string `json:"city" binding:"required"`
	State         string `json:"state" binding:"required"`
	ZipCode       string `json:"zip_code"`
	Latitude      string `json:"latitude"`
	Longitude     string `json:"longitude"`
	PricePerNight int64  `json:"price_per_night" binding:"required,gt=0"`
	Bedrooms      int    `json:"bedrooms" binding:"gte=0"`
	Bathrooms     int    `json:"bathrooms" binding:"gte=0"`
	MaxGuests     int    `json:"max_guests" binding:"required,gt=0"`
	AreaSqm       int    `json:"area_sqm"`
	Amenities     string `json:"amenities"`
	Images        string `json:"images"`
	MainImage     string `json:"main_image"`
}

// UpdatePropertyRequest uses pointers so absent fields stay untouched.
type UpdatePropertyRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	PricePerNight *int64  `json:"price_per_night"`
	Status        *string `json:"status"`
}

type ListResponse struct {
	Properties []domain.Property `json:"properties"`
	Total      int64             `json:"total"`
	Limit      int               `json:"limit"`
	Offset     int               `json:"offset"`
}
