package models

// ListingStats is the aggregate snapshot served by the stats endpoint.
type ListingStats struct {
	TotalListings        int     `json:"total_listings"`
	TotalAvailable       int     `json:"total_available"`
	AveragePricePerNight float64 `json:"average_price_per_night"`
	AverageRating        float64 `json:"average_rating"`
	TotalBookings        int     `json:"total_bookings"`
	TotalReviews         int     `json:"total_reviews"`
}
