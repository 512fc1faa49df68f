package models

// ValidationError is the single taxonomy for every caller-input failure
// raised during a write. The Code identifies the rule that failed; the
// Reason is safe to return to the caller verbatim.
type ValidationError struct {
	Code   string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Is matches by code so errors.Is works against the sentinels below even
// when a check produces a per-instance message.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Code == e.Code
}

// NewValidationError builds a ValidationError sharing a sentinel's code but
// carrying a more specific reason.
func NewValidationError(code, reason string) *ValidationError {
	return &ValidationError{Code: code, Reason: reason}
}

var (
	ErrInvalidDateRange    = &ValidationError{Code: "invalid_date_range", Reason: "check-out date must be after check-in date"}
	ErrPastCheckIn         = &ValidationError{Code: "past_check_in", Reason: "check-in date cannot be in the past"}
	ErrCapacityExceeded    = &ValidationError{Code: "capacity_exceeded", Reason: "number of guests exceeds listing capacity"}
	ErrListingMismatch     = &ValidationError{Code: "listing_mismatch", Reason: "review listing must match the booking listing"}
	ErrGuestMismatch       = &ValidationError{Code: "guest_mismatch", Reason: "review guest must match the booking guest"}
	ErrBookingNotCompleted = &ValidationError{Code: "booking_not_completed", Reason: "reviews can only be created for completed bookings"}
	ErrDuplicateReview     = &ValidationError{Code: "duplicate_review", Reason: "booking already has a review"}
	ErrInvalidRating       = &ValidationError{Code: "invalid_rating", Reason: "rating must be between 1 and 5"}
	ErrInvalidPrice        = &ValidationError{Code: "invalid_price", Reason: "price per night must be greater than zero"}
	ErrInvalidCapacity     = &ValidationError{Code: "invalid_capacity", Reason: "bedrooms, bathrooms and max guests must be at least 1"}
	ErrInvalidPropertyType = &ValidationError{Code: "invalid_property_type", Reason: "unknown property type"}
	ErrInvalidStatus       = &ValidationError{Code: "invalid_status", Reason: "unknown booking status"}
	ErrMissingReference    = &ValidationError{Code: "missing_reference", Reason: "required reference is missing"}
	ErrUnknownListing      = &ValidationError{Code: "unknown_listing", Reason: "referenced listing does not exist"}
	ErrUnknownBooking      = &ValidationError{Code: "unknown_booking", Reason: "referenced booking does not exist"}
)
