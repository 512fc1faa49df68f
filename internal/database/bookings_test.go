package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"staybook/server/internal/models"
)

func TestCreateBookingDerivesTotalPrice(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host")
	guest := createTestUser(t, db, "guest")
	listing := createTestListing(t, db, host.ID) // 100 per night

	booking := createTestBooking(t, db, guest.ID, listing.ID) // 3 nights

	assert.Equal(t, 300.0, booking.TotalPrice)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.NotEmpty(t, booking.ID)
}

func TestCreateBookingKeepsSuppliedTotalPrice(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host")
	guest := createTestUser(t, db, "guest")
	listing := createTestListing(t, db, host.ID)

	booking := createTestBooking(t, db, guest.ID, listing.ID, func(b *models.Booking) {
		b.TotalPrice = 250
	})

	assert.Equal(t, 250.0, booking.TotalPrice)
}

func TestUpdateBookingPreservesTotalPrice(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host")
	guest := createTestUser(t, db, "guest")
	listing := createTestListing(t, db, host.ID)
	booking := createTestBooking(t, db, guest.ID, listing.ID)
	require.Equal(t, 300.0, booking.TotalPrice)

	// A later price change on the listing must not reprice the booking.
	listing.PricePerNight = 500
	require.NoError(t, db.UpdateListing(listing))

	booking.SpecialRequests = "late arrival"
	require.NoError(t, db.UpdateBooking(booking))

	got, err := db.GetBooking(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, got.TotalPrice)
	assert.Equal(t, "late arrival", got.SpecialRequests)
}

func TestCreateBookingCapacityExceeded(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host")
	guest := createTestUser(t, db, "guest")
	listing := createTestListing(t, db, host.ID) // capacity 4

	booking := &models.Booking{
		GuestID:        guest.ID,
		ListingID:      listing.ID,
		CheckInDate:    testDate(7),
		CheckOutDate:   testDate(10),
		NumberOfGuests: 5,
	}
	err := db.CreateBooking(booking)
	assert.ErrorIs(t, err, models.ErrCapacityExceeded)
}

func TestCreateBookingInvalidDates(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host")
	guest := createTestUser(t, db, "guest")
	listing := createTestListing(t, db, host.ID)

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		wantErr  error
	}{
		{"check-out equals check-in", testDate(7), testDate(7), models.ErrInvalidDateRange},
		{"check-out before check-in", testDate(10), testDate(7), models.ErrInvalidDateRange},
		{"check-in in the past", testDate(-3), testDate(2), models.ErrPastCheckIn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := &models.Booking{
				GuestID:        guest.ID,
				ListingID:      listing.ID,
				CheckInDate:    tt.checkIn,
				CheckOutDate:   tt.checkOut,
				NumberOfGuests: 2,
			}
			assert.ErrorIs(t, db.CreateBooking(booking), tt.wantErr)
		})
	}
}

func TestCreateBookingUnknownListing(t *testing.T) {
	db := setupTestDB(t)
	guest := createTestUser(t, db, "guest")

	booking := &models.Booking{
		GuestID:        guest.ID,
		ListingID:      "no-such-listing",
		CheckInDate:    testDate(7),
		CheckOutDate:   testDate(10),
		NumberOfGuests: 2,
	}
	assert.ErrorIs(t, db.CreateBooking(booking), models.ErrUnknownListing)
}

func TestGetBookingNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetBooking("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListBookingsFilters(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host")
	guest := createTestUser(t, db, "guest")
	listing := createTestListing(t, db, host.ID)

	createTestBooking(t, db, guest.ID, listing.ID, func(b *models.Booking) {
		b.CheckInDate, b.CheckOutDate = testDate(5), testDate(8)
		b.Status = models.BookingConfirmed
	})
	createTestBooking(t, db, guest.ID, listing.ID, func(b *models.Booking) {
		b.CheckInDate, b.CheckOutDate = testDate(20), testDate(25)
		b.Status = models.BookingPending
	})

	all, err := db.ListBookings(BookingFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	confirmed, err := db.ListBookings(BookingFilter{Status: string(models.BookingConfirmed)})
	require.NoError(t, err)
	assert.Len(t, confirmed, 1)

	early, err := db.ListBookings(BookingFilter{To: testDate(10)})
	require.NoError(t, err)
	assert.Len(t, early, 1)

	late, err := db.ListBookings(BookingFilter{From: testDate(10)})
	require.NoError(t, err)
	assert.Len(t, late, 1)
}

func TestDeleteBookingCascadesReview(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host")
	guest := createTestUser(t, db, "guest")
	listing := createTestListing(t, db, host.ID)
	booking := createTestBooking(t, db, guest.ID, listing.ID)
	completeBooking(t, db, booking.ID)

	review := &models.Review{
		BookingID: booking.ID,
		ListingID: listing.ID,
		GuestID:   guest.ID,
		Rating:    5,
	}
	require.NoError(t, db.CreateReview(review))

	require.NoError(t, db.DeleteBooking(booking.ID))

	_, err := db.GetBooking(booking.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = db.GetReview(review.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteBookingNotFound(t *testing.T) {
	db := setupTestDB(t)
	assert.ErrorIs(t, db.DeleteBooking("missing"), gorm.ErrRecordNotFound)
}

func TestCompleteElapsedBookings(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host")
	guest := createTestUser(t, db, "guest")
	listing := createTestListing(t, db, host.ID)

	elapsed := createTestBooking(t, db, guest.ID, listing.ID, func(b *models.Booking) {
		b.Status = models.BookingConfirmed
	})
	ongoing := createTestBooking(t, db, guest.ID, listing.ID, func(b *models.Booking) {
		b.CheckInDate, b.CheckOutDate = testDate(20), testDate(25)
		b.Status = models.BookingConfirmed
	})
	pendingElapsed := createTestBooking(t, db, guest.ID, listing.ID)

	// Sweep as of a date after the first stay ended.
	updated, err := db.CompleteElapsedBookings(testDate(15))
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	got, err := db.GetBooking(elapsed.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, got.Status)

	got, err = db.GetBooking(ongoing.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, got.Status)

	// Pending bookings are never completed by the sweep.
	got, err = db.GetBooking(pendingElapsed.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, got.Status)

	// Running the sweep again is a no-op.
	updated, err = db.CompleteElapsedBookings(testDate(15))
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated)
}
