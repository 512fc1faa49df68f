package database

import "staybook/server/internal/models"

// GetListingStats aggregates the catalogue in one round trip. COALESCE
// keeps the averages at 0 for an empty table instead of NULL.
func (d *Database) GetListingStats() (models.ListingStats, error) {
	query := `
        SELECT
            (SELECT COUNT(*) FROM listings) AS total_listings,
            (SELECT COUNT(*) FROM listings WHERE available = 1) AS total_available,
            (SELECT COALESCE(AVG(price_per_night), 0) FROM listings) AS average_price_per_night,
            (SELECT COALESCE(AVG(CAST(rating AS FLOAT)), 0) FROM reviews) AS average_rating,
            (SELECT COUNT(*) FROM bookings) AS total_bookings,
            (SELECT COUNT(*) FROM reviews) AS total_reviews
    `

	var stats models.ListingStats
	err := d.db.Raw(query).Row().Scan(
		&stats.TotalListings,
		&stats.TotalAvailable,
		&stats.AveragePricePerNight,
		&stats.AverageRating,
		&stats.TotalBookings,
		&stats.TotalReviews,
	)
	return stats, err
}
