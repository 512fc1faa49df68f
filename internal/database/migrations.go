package database

import (
	"fmt"

	"staybook/server/internal/models"
)

func (d *Database) RunMigrations() error {
	if err := d.db.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Booking{},
		&models.Review{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	// One review per booking, enforced at the storage level as a backstop
	// against concurrent submissions.
	if err := d.db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uniq_reviews_booking ON reviews(booking_id)`).Error; err != nil {
		return err
	}

	// Query-surface indexes: listings by location/price/type/availability,
	// bookings by status and date range, reviews by rating.
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_listings_location ON listings(location)`,
		`CREATE INDEX IF NOT EXISTS idx_listings_price ON listings(price_per_night)`,
		`CREATE INDEX IF NOT EXISTS idx_listings_property_type ON listings(property_type)`,
		`CREATE INDEX IF NOT EXISTS idx_listings_available ON listings(available)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings(status)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_check_in ON bookings(check_in_date)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_check_out ON bookings(check_out_date)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_rating ON reviews(rating)`,
	}
	for _, stmt := range indexes {
		if err := d.db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
