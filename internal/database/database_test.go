package database

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"staybook/server/internal/models"
)

func setupTestDB(t *testing.T) *Database {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	// A file-backed database: pooled connections to a plain :memory: DSN
	// would each get their own empty database.
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"), logger)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func createTestUser(t *testing.T, db *Database, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:  username,
		Email:     username + "@example.com",
		FirstName: "Test",
		LastName:  "User",
	}
	require.NoError(t, db.CreateUser(user))
	return user
}

func createTestListing(t *testing.T, db *Database, hostID string, mutate ...func(*models.Listing)) *models.Listing {
	t.Helper()

	listing := &models.Listing{
		HostID:        hostID,
		Title:         "Test Listing",
		Location:      "New York, NY",
		PricePerNight: 100,
		Bedrooms:      2,
		Bathrooms:     1,
		MaxGuests:     4,
		PropertyType:  models.PropertyApartment,
		Available:     true,
	}
	for _, m := range mutate {
		m(listing)
	}
	require.NoError(t, db.CreateListing(listing))
	return listing
}

func createTestBooking(t *testing.T, db *Database, guestID, listingID string, mutate ...func(*models.Booking)) *models.Booking {
	t.Helper()

	booking := &models.Booking{
		GuestID:        guestID,
		ListingID:      listingID,
		CheckInDate:    testDate(7),
		CheckOutDate:   testDate(10),
		NumberOfGuests: 2,
	}
	for _, m := range mutate {
		m(booking)
	}
	require.NoError(t, db.CreateBooking(booking))
	return booking
}

// completeBooking flips a booking to completed without re-running the date
// checks, the way the sweep does for stays that have elapsed.
func completeBooking(t *testing.T, db *Database, bookingID string) {
	t.Helper()

	err := db.db.Session(&gorm.Session{SkipHooks: true}).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("status", models.BookingCompleted).Error
	require.NoError(t, err)
}

func testDate(daysFromNow int) time.Time {
	return models.DateOnly(time.Now()).AddDate(0, 0, daysFromNow)
}
