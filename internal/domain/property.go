package domain

import "time"

type PropertyType string

const (
	PropertyCasa        PropertyType = "casa"
	PropertyApartamento PropertyType = "apartamento"
	PropertyKitnet      PropertyType = "kitnet"
	PropertySobrado     PropertyType = "sobrado"
	PropertyChacara     PropertyType = "chacara"
)

func ValidPropertyTypes() []PropertyType {
	return []PropertyType{
		PropertyCasa,
		PropertyApartamento,
		PropertyKitnet,
		PropertySobrado,
		PropertyChacara,
	}
}

func ParsePropertyType(s string) (PropertyType, bool) {
	for _, t := range ValidPropertyTypes() {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

type PropertyStatus string

const (
	PropertyAvailable   PropertyStatus = "available"
	PropertyOccupied    PropertyStatus = "occupied"
	PropertyMaintenance PropertyStatus = "maintenance"
)

func ValidPropertyStatus(s string) bool {
	switch PropertyStatus(s) {
	case PropertyAvailable, PropertyOccupied, PropertyMaintenance:
		return true
	}
	return false
}

// Property is a rental listing. PricePerNight is stored in centavos and
// Rating is the review average multiplied by 100, so both stay integral.
type Property struct {
	ID            int64          `json:"id"`
	OwnerID       int64          `json:"owner_id"`
	Title         string         `json:"title" validate:"required"`
	Description   string         `json:"description"`
	PropertyType  PropertyType   `json:"property_type"`
	Address       string         `json:"address"`
	City          string         `json:"city"`
	State         string         `json:"state"`
	ZipCode       string         `json:"zip_code"`
	Latitude      string         `json:"latitude,omitempty"`
	Longitude     string         `json:"longitude,omitempty"`
	PricePerNight int64          `json:"price_per_night" validate:"gte=0"`
	Bedrooms      int            `json:"bedrooms"`
	Bathrooms     int            `json:"bathrooms"`
	MaxGuests     int            `json:"max_guests"`
	AreaSqm       int            `json:"area_sqm,omitempty"`
	Amenities     string         `json:"amenities,omitempty"`
	Images        string         `json:"images"`
	MainImage     string         `json:"main_image"`
	Status        PropertyStatus `json:"status"`
	Featured      bool           `json:"featured"`
	Rating        int            `json:"rating"`
	ReviewCount   int            `json:"review_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
