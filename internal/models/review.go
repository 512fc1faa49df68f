package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a 1-5 rating plus comment tied one-to-one to a completed
// booking. The unique index on BookingID is the storage backstop against
// two concurrent submissions for the same booking.
type Review struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"review_id"`
	BookingID string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"booking_id"`
	ListingID string    `gorm:"type:varchar(36);index;not null" json:"listing_id"`
	GuestID   string    `gorm:"type:varchar(36);index;not null" json:"guest_id"`
	Rating    int       `gorm:"index;not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`
	Listing Listing `gorm:"foreignKey:ListingID" json:"-"`
	Guest   User    `gorm:"foreignKey:GuestID" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// BeforeSave runs the integrity checks unconditionally on create and
// update. An update that would leave the row in a violating state is
// rejected even when the row already violates from legacy data.
func (r *Review) BeforeSave(tx *gorm.DB) error {
	if r.BookingID == "" {
		return NewValidationError(ErrMissingReference.Code, "review booking is required")
	}
	if r.ListingID == "" {
		return NewValidationError(ErrMissingReference.Code, "review listing is required")
	}
	if r.GuestID == "" {
		return NewValidationError(ErrMissingReference.Code, "review guest is required")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return ErrInvalidRating
	}

	var booking Booking
	if err := tx.Where("id = ?", r.BookingID).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownBooking
		}
		return err
	}
	if booking.ListingID != r.ListingID {
		return ErrListingMismatch
	}
	if booking.GuestID != r.GuestID {
		return ErrGuestMismatch
	}
	if booking.Status != BookingCompleted {
		return ErrBookingNotCompleted
	}
	return nil
}
