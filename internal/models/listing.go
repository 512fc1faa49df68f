package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyType is a closed set; anything else is rejected on save.
type PropertyType string

const (
	PropertyApartment PropertyType = "apartment"
	PropertyHouse     PropertyType = "house"
	PropertyVilla     PropertyType = "villa"
	PropertyCondo     PropertyType = "condo"
	PropertyCabin     PropertyType = "cabin"
	PropertyStudio    PropertyType = "studio"
)

func (p PropertyType) IsValid() bool {
	switch p {
	case PropertyApartment, PropertyHouse, PropertyVilla, PropertyCondo, PropertyCabin, PropertyStudio:
		return true
	}
	return false
}

// Listing is a bookable property with nightly pricing and capacity.
// Coordinates are optional and filled in by the geocoding backfill.
type Listing struct {
	ID               string       `gorm:"type:varchar(36);primaryKey" json:"listing_id"`
	HostID           string       `gorm:"type:varchar(36);index;not null" json:"host_id"`
	Title            string       `gorm:"size:200;not null" json:"title"`
	Description      string       `gorm:"type:text" json:"description"`
	Location         string       `gorm:"size:100;index" json:"location"`
	Latitude         *float64     `json:"latitude,omitempty"`
	Longitude        *float64     `json:"longitude,omitempty"`
	GeocodeAttempted bool         `gorm:"default:false" json:"-"`
	PricePerNight    float64      `gorm:"index;not null" json:"price_per_night"`
	Bedrooms         int          `gorm:"not null" json:"bedrooms"`
	Bathrooms        int          `gorm:"not null" json:"bathrooms"`
	MaxGuests        int          `gorm:"not null" json:"max_guests"`
	PropertyType     PropertyType `gorm:"size:20;index" json:"property_type"`
	Amenities        string       `gorm:"type:text" json:"amenities"`
	Available        bool         `gorm:"index" json:"available"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`

	Host     User      `gorm:"foreignKey:HostID" json:"-"`
	Reviews  []Review  `gorm:"foreignKey:ListingID" json:"-"`
	Bookings []Booking `gorm:"foreignKey:ListingID" json:"-"`
}

func (Listing) TableName() string {
	return "listings"
}

func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// BeforeSave runs on every create and update, whichever code path issued
// the write.
func (l *Listing) BeforeSave(tx *gorm.DB) error {
	if l.PropertyType == "" {
		l.PropertyType = PropertyApartment
	}
	return l.validate()
}

func (l *Listing) validate() error {
	if l.HostID == "" {
		return NewValidationError(ErrMissingReference.Code, "listing host is required")
	}
	if l.PricePerNight <= 0 {
		return ErrInvalidPrice
	}
	if l.Bedrooms < 1 || l.Bathrooms < 1 || l.MaxGuests < 1 {
		return ErrInvalidCapacity
	}
	if !l.PropertyType.IsValid() {
		return ErrInvalidPropertyType
	}
	return nil
}

// AverageRating is the mean of the loaded reviews' ratings, 0 when there
// are none. It is a view over persisted rows, never stored.
func (l *Listing) AverageRating() float64 {
	if len(l.Reviews) == 0 {
		return 0
	}
	var sum int
	for _, r := range l.Reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(l.Reviews))
}

// AmenitiesList splits the stored comma-separated amenities string into
// trimmed tags. A blank source yields an empty slice.
func (l *Listing) AmenitiesList() []string {
	if strings.TrimSpace(l.Amenities) == "" {
		return []string{}
	}
	parts := strings.Split(l.Amenities, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
