package database

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"staybook/server/internal/models"
)

type BookingFilter struct {
	Status string
	From   time.Time
	To     time.Time
}

func (d *Database) CreateBooking(b *models.Booking) error {
	return d.db.Omit(clause.Associations).Create(b).Error
}

func (d *Database) GetBooking(id string) (*models.Booking, error) {
	var b models.Booking
	err := d.db.Preload("Guest").Preload("Listing").Preload("Review").Where("id = ?", id).First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (d *Database) UpdateBooking(b *models.Booking) error {
	return d.db.Omit(clause.Associations).Save(b).Error
}

// DeleteBooking cascades the booking's review before removing the row.
func (d *Database) DeleteBooking(id string) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Booking{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ListBookings returns bookings newest-first, optionally narrowed by
// status and by a date window over the stay itself.
func (d *Database) ListBookings(filter BookingFilter) ([]models.Booking, error) {
	q := d.db.Preload("Review").Order("created_at DESC")

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if !filter.From.IsZero() {
		q = q.Where("check_in_date >= ?", models.DateOnly(filter.From))
	}
	if !filter.To.IsZero() {
		q = q.Where("check_out_date <= ?", models.DateOnly(filter.To))
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// CompleteElapsedBookings flips confirmed bookings whose stay has ended to
// completed. This is the external actor the core model expects for status
// progression; it is a column-level sweep, so historical check-in dates are
// not re-validated.
func (d *Database) CompleteElapsedBookings(now time.Time) (int64, error) {
	res := d.db.Session(&gorm.Session{SkipHooks: true}).
		Model(&models.Booking{}).
		Where("status = ? AND check_out_date < ?", models.BookingConfirmed, models.DateOnly(now)).
		Update("status", models.BookingCompleted)
	return res.RowsAffected, res.Error
}
