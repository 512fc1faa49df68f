package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validListing() *Listing {
	return &Listing{
		HostID:        "host-1",
		Title:         "Cozy Apartment",
		Location:      "New York, NY",
		PricePerNight: 100,
		Bedrooms:      2,
		Bathrooms:     1,
		MaxGuests:     4,
		PropertyType:  PropertyApartment,
	}
}

func TestListingValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Listing)
		wantErr error
	}{
		{
			name:   "valid listing",
			mutate: func(l *Listing) {},
		},
		{
			name:    "missing host",
			mutate:  func(l *Listing) { l.HostID = "" },
			wantErr: ErrMissingReference,
		},
		{
			name:    "zero price",
			mutate:  func(l *Listing) { l.PricePerNight = 0 },
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "negative price",
			mutate:  func(l *Listing) { l.PricePerNight = -50 },
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "zero bedrooms",
			mutate:  func(l *Listing) { l.Bedrooms = 0 },
			wantErr: ErrInvalidCapacity,
		},
		{
			name:    "zero bathrooms",
			mutate:  func(l *Listing) { l.Bathrooms = 0 },
			wantErr: ErrInvalidCapacity,
		},
		{
			name:    "zero max guests",
			mutate:  func(l *Listing) { l.MaxGuests = 0 },
			wantErr: ErrInvalidCapacity,
		},
		{
			name:    "unknown property type",
			mutate:  func(l *Listing) { l.PropertyType = "castle" },
			wantErr: ErrInvalidPropertyType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing := validListing()
			tt.mutate(listing)

			err := listing.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
		})
	}
}

func TestPropertyTypeIsValid(t *testing.T) {
	for _, p := range []PropertyType{
		PropertyApartment, PropertyHouse, PropertyVilla,
		PropertyCondo, PropertyCabin, PropertyStudio,
	} {
		assert.True(t, p.IsValid(), "%s should be valid", p)
	}
	assert.False(t, PropertyType("").IsValid())
	assert.False(t, PropertyType("castle").IsValid())
}

func TestAmenitiesList(t *testing.T) {
	tests := []struct {
		name      string
		amenities string
		want      []string
	}{
		{"empty", "", []string{}},
		{"blank", "   ", []string{}},
		{"single", "WiFi", []string{"WiFi"}},
		{"multiple", "WiFi,Kitchen,Parking", []string{"WiFi", "Kitchen", "Parking"}},
		{"whitespace around tags", " WiFi , Kitchen ", []string{"WiFi", "Kitchen"}},
		{"empty segments skipped", "WiFi,,Kitchen,", []string{"WiFi", "Kitchen"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &Listing{Amenities: tt.amenities}
			assert.Equal(t, tt.want, l.AmenitiesList())
		})
	}
}

func TestAverageRating(t *testing.T) {
	l := &Listing{}
	assert.Equal(t, 0.0, l.AverageRating())

	l.Reviews = []Review{{Rating: 4}}
	assert.Equal(t, 4.0, l.AverageRating())

	l.Reviews = []Review{{Rating: 3}, {Rating: 4}, {Rating: 5}}
	assert.Equal(t, 4.0, l.AverageRating())

	l.Reviews = []Review{{Rating: 4}, {Rating: 5}}
	assert.Equal(t, 4.5, l.AverageRating())
}
