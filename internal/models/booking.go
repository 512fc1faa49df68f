package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingStatus is a closed set. No transition rules are enforced between
// statuses; progression is driven by callers and the completion sweep.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCanceled  BookingStatus = "canceled"
	BookingCompleted BookingStatus = "completed"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCanceled, BookingCompleted:
		return true
	}
	return false
}

// Booking is a guest's reservation of a listing for a date range.
type Booking struct {
	ID              string        `gorm:"type:varchar(36);primaryKey" json:"booking_id"`
	GuestID         string        `gorm:"type:varchar(36);index;not null" json:"guest_id"`
	ListingID       string        `gorm:"type:varchar(36);index;not null" json:"listing_id"`
	CheckInDate     time.Time     `gorm:"index" json:"check_in_date"`
	CheckOutDate    time.Time     `gorm:"index" json:"check_out_date"`
	NumberOfGuests  int           `gorm:"not null" json:"number_of_guests"`
	TotalPrice      float64       `json:"total_price"`
	Status          BookingStatus `gorm:"size:20;index" json:"status"`
	SpecialRequests string        `gorm:"type:text" json:"special_requests"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	Guest   User    `gorm:"foreignKey:GuestID" json:"-"`
	Listing Listing `gorm:"foreignKey:ListingID" json:"-"`
	Review  *Review `gorm:"foreignKey:BookingID" json:"-"`
}

func (Booking) TableName() string {
	return "bookings"
}

// DateOnly truncates a timestamp to its calendar date, keeping the
// location. Booking date checks always compare whole days.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// BeforeSave validates the booking and derives the total price. It runs on
// every persistence write, so bypassing the API layer does not bypass the
// checks. A non-zero total price is never overwritten, which keeps repeated
// saves idempotent.
func (b *Booking) BeforeSave(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = BookingPending
	}
	if err := b.validate(); err != nil {
		return err
	}

	if b.ListingID == "" {
		return nil
	}
	var listing Listing
	if err := tx.Where("id = ?", b.ListingID).First(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownListing
		}
		return err
	}
	if b.NumberOfGuests > listing.MaxGuests {
		return NewValidationError(ErrCapacityExceeded.Code,
			fmt.Sprintf("number of guests (%d) exceeds listing capacity (%d)", b.NumberOfGuests, listing.MaxGuests))
	}
	if b.TotalPrice == 0 && !b.CheckInDate.IsZero() && !b.CheckOutDate.IsZero() {
		b.TotalPrice = listing.PricePerNight * float64(b.DurationNights())
	}
	return nil
}

func (b *Booking) validate() error {
	if b.GuestID == "" {
		return NewValidationError(ErrMissingReference.Code, "booking guest is required")
	}
	if b.ListingID == "" {
		return NewValidationError(ErrMissingReference.Code, "booking listing is required")
	}
	if b.NumberOfGuests < 1 {
		return NewValidationError(ErrInvalidCapacity.Code, "number of guests must be at least 1")
	}
	if !b.Status.IsValid() {
		return ErrInvalidStatus
	}
	if !b.CheckInDate.IsZero() && !b.CheckOutDate.IsZero() {
		checkIn := DateOnly(b.CheckInDate)
		checkOut := DateOnly(b.CheckOutDate)
		if !checkOut.After(checkIn) {
			return ErrInvalidDateRange
		}
		// Evaluated at validation time: stored past bookings are only
		// re-checked when something writes them again.
		if checkIn.Before(DateOnly(time.Now())) {
			return ErrPastCheckIn
		}
	}
	return nil
}

// DurationNights is the whole-day span between check-in and check-out,
// 0 when either date is unset.
func (b *Booking) DurationNights() int {
	if b.CheckInDate.IsZero() || b.CheckOutDate.IsZero() {
		return 0
	}
	return int(DateOnly(b.CheckOutDate).Sub(DateOnly(b.CheckInDate)).Hours() / 24)
}
