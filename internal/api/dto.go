package api

import (
	"time"

	"staybook/server/internal/models"
)

const dateLayout = "2006-01-02"

// Write payloads carry only client-owned fields. Identifiers, timestamps,
// computed fields and the derived booking total are server-assigned and
// have no place here.

type ListingRequest struct {
	HostID        string   `json:"host_id" binding:"required"`
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	Location      string   `json:"location" binding:"required"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	PricePerNight float64  `json:"price_per_night" binding:"required"`
	Bedrooms      int      `json:"bedrooms" binding:"required"`
	Bathrooms     int      `json:"bathrooms" binding:"required"`
	MaxGuests     int      `json:"max_guests" binding:"required"`
	PropertyType  string   `json:"property_type"`
	Amenities     string   `json:"amenities"`
	Available     *bool    `json:"available"`
}

func (r *ListingRequest) apply(l *models.Listing) {
	l.HostID = r.HostID
	l.Title = r.Title
	l.Description = r.Description
	l.Location = r.Location
	l.Latitude = r.Latitude
	l.Longitude = r.Longitude
	l.PricePerNight = r.PricePerNight
	l.Bedrooms = r.Bedrooms
	l.Bathrooms = r.Bathrooms
	l.MaxGuests = r.MaxGuests
	l.PropertyType = models.PropertyType(r.PropertyType)
	l.Amenities = r.Amenities
	if r.Available != nil {
		l.Available = *r.Available
	}
}

type BookingRequest struct {
	GuestID         string `json:"guest_id" binding:"required"`
	ListingID       string `json:"listing_id" binding:"required"`
	CheckInDate     string `json:"check_in_date" binding:"required"`
	CheckOutDate    string `json:"check_out_date" binding:"required"`
	NumberOfGuests  int    `json:"number_of_guests" binding:"required"`
	Status          string `json:"status"`
	SpecialRequests string `json:"special_requests"`
}

func (r *BookingRequest) apply(b *models.Booking) error {
	checkIn, err := time.Parse(dateLayout, r.CheckInDate)
	if err != nil {
		return models.NewValidationError("invalid_date", "check_in_date must be formatted as YYYY-MM-DD")
	}
	checkOut, err := time.Parse(dateLayout, r.CheckOutDate)
	if err != nil {
		return models.NewValidationError("invalid_date", "check_out_date must be formatted as YYYY-MM-DD")
	}

	b.GuestID = r.GuestID
	b.ListingID = r.ListingID
	b.CheckInDate = checkIn
	b.CheckOutDate = checkOut
	b.NumberOfGuests = r.NumberOfGuests
	b.Status = models.BookingStatus(r.Status)
	b.SpecialRequests = r.SpecialRequests
	return nil
}

type ReviewRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
	ListingID string `json:"listing_id" binding:"required"`
	GuestID   string `json:"guest_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

func (r *ReviewRequest) apply(rev *models.Review) {
	rev.BookingID = r.BookingID
	rev.ListingID = r.ListingID
	rev.GuestID = r.GuestID
	rev.Rating = r.Rating
	rev.Comment = r.Comment
}

// Read responses expose the derived views alongside the stored fields.

type ReviewResponse struct {
	ReviewID  string    `json:"review_id"`
	BookingID string    `json:"booking_id"`
	ListingID string    `json:"listing_id"`
	GuestID   string    `json:"guest_id"`
	GuestName string    `json:"guest_name,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newReviewResponse(r *models.Review) ReviewResponse {
	return ReviewResponse{
		ReviewID:  r.ID,
		BookingID: r.BookingID,
		ListingID: r.ListingID,
		GuestID:   r.GuestID,
		GuestName: r.Guest.Username,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type ListingResponse struct {
	ListingID     string           `json:"listing_id"`
	HostID        string           `json:"host_id"`
	HostName      string           `json:"host_name,omitempty"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Location      string           `json:"location"`
	Latitude      *float64         `json:"latitude,omitempty"`
	Longitude     *float64         `json:"longitude,omitempty"`
	PricePerNight float64          `json:"price_per_night"`
	Bedrooms      int              `json:"bedrooms"`
	Bathrooms     int              `json:"bathrooms"`
	MaxGuests     int              `json:"max_guests"`
	PropertyType  string           `json:"property_type"`
	Amenities     string           `json:"amenities"`
	AmenitiesList []string         `json:"amenities_list"`
	Available     bool             `json:"available"`
	AverageRating float64          `json:"average_rating"`
	ReviewsCount  int              `json:"reviews_count"`
	Reviews       []ReviewResponse `json:"reviews"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func newListingResponse(l *models.Listing) ListingResponse {
	reviews := make([]ReviewResponse, 0, len(l.Reviews))
	for i := range l.Reviews {
		reviews = append(reviews, newReviewResponse(&l.Reviews[i]))
	}

	return ListingResponse{
		ListingID:     l.ID,
		HostID:        l.HostID,
		HostName:      l.Host.Username,
		Title:         l.Title,
		Description:   l.Description,
		Location:      l.Location,
		Latitude:      l.Latitude,
		Longitude:     l.Longitude,
		PricePerNight: l.PricePerNight,
		Bedrooms:      l.Bedrooms,
		Bathrooms:     l.Bathrooms,
		MaxGuests:     l.MaxGuests,
		PropertyType:  string(l.PropertyType),
		Amenities:     l.Amenities,
		AmenitiesList: l.AmenitiesList(),
		Available:     l.Available,
		AverageRating: l.AverageRating(),
		ReviewsCount:  len(l.Reviews),
		Reviews:       reviews,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

type BookingResponse struct {
	BookingID       string          `json:"booking_id"`
	GuestID         string          `json:"guest_id"`
	GuestName       string          `json:"guest_name,omitempty"`
	ListingID       string          `json:"listing_id"`
	ListingTitle    string          `json:"listing_title,omitempty"`
	CheckInDate     string          `json:"check_in_date"`
	CheckOutDate    string          `json:"check_out_date"`
	NumberOfGuests  int             `json:"number_of_guests"`
	TotalPrice      float64         `json:"total_price"`
	Status          string          `json:"status"`
	SpecialRequests string          `json:"special_requests"`
	DurationNights  int             `json:"duration_nights"`
	Review          *ReviewResponse `json:"review,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func newBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		BookingID:       b.ID,
		GuestID:         b.GuestID,
		GuestName:       b.Guest.Username,
		ListingID:       b.ListingID,
		ListingTitle:    b.Listing.Title,
		CheckInDate:     b.CheckInDate.Format(dateLayout),
		CheckOutDate:    b.CheckOutDate.Format(dateLayout),
		NumberOfGuests:  b.NumberOfGuests,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
		SpecialRequests: b.SpecialRequests,
		DurationNights:  b.DurationNights(),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
	if b.Review != nil {
		review := newReviewResponse(b.Review)
		resp.Review = &review
	}
	return resp
}
