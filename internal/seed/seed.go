package seed

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"staybook/server/config"
	"staybook/server/internal/database"
	"staybook/server/internal/models"
)

var sampleUsers = []models.User{
	{Username: "john_host", Email: "john@example.com", FirstName: "John", LastName: "Smith"},
	{Username: "sarah_host", Email: "sarah@example.com", FirstName: "Sarah", LastName: "Johnson"},
	{Username: "mike_host", Email: "mike@example.com", FirstName: "Mike", LastName: "Wilson"},
	{Username: "david_guest", Email: "david@example.com", FirstName: "David", LastName: "Davis"},
	{Username: "emma_guest", Email: "emma@example.com", FirstName: "Emma", LastName: "Taylor"},
	{Username: "alex_guest", Email: "alex@example.com", FirstName: "Alex", LastName: "Anderson"},
}

var (
	sampleLocations = []string{"New York, NY", "Los Angeles, CA", "Chicago, IL", "Miami, FL"}
	sampleTypes     = []models.PropertyType{
		models.PropertyApartment, models.PropertyHouse, models.PropertyVilla,
		models.PropertyCondo, models.PropertyCabin, models.PropertyStudio,
	}
	sampleAdjectives = []string{"Cozy", "Modern", "Luxury"}
	sampleNouns      = []string{"Apartment", "House", "Villa"}
	sampleComments   = []string{
		"Great place to stay! Highly recommended.",
		"Clean and comfortable. Would book again.",
		"Amazing host and beautiful property.",
		"Perfect location and excellent amenities.",
	}
)

// Run fills the database with sample hosts, guests, listings, bookings and
// reviews. Every row goes through the normal store write path, so the seed
// can only produce data that passes validation.
func Run(db *database.Database, cfg *config.Config, logger *logrus.Logger) error {
	hosts, guests, err := createUsers(db, logger)
	if err != nil {
		return err
	}

	listings, err := createListings(db, logger, hosts, cfg.Seed.Listings)
	if err != nil {
		return err
	}

	if err := createBookings(db, logger, guests, listings, cfg.Seed.Bookings); err != nil {
		return err
	}

	if err := createReviews(db, logger, cfg.Seed.Reviews); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"listings": cfg.Seed.Listings,
		"bookings": cfg.Seed.Bookings,
		"reviews":  cfg.Seed.Reviews,
	}).Info("Database seeded")
	return nil
}

func createUsers(db *database.Database, logger *logrus.Logger) (hosts, guests []models.User, err error) {
	logger.Info("Creating users...")

	for _, u := range sampleUsers {
		existing, err := db.GetUserByUsername(u.Username)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, err
			}
			user := u
			if err := db.CreateUser(&user); err != nil {
				return nil, nil, err
			}
			existing = &user
		}
		if isHost(existing.Username) {
			hosts = append(hosts, *existing)
		} else {
			guests = append(guests, *existing)
		}
	}
	return hosts, guests, nil
}

func isHost(username string) bool {
	return len(username) > 5 && username[len(username)-5:] == "_host"
}

func createListings(db *database.Database, logger *logrus.Logger, hosts []models.User, count int) ([]models.Listing, error) {
	logger.Infof("Creating %d listings...", count)

	listings := make([]models.Listing, 0, count)
	for i := 0; i < count; i++ {
		host := hosts[rand.Intn(len(hosts))]
		listing := models.Listing{
			HostID: host.ID,
			Title: fmt.Sprintf("Beautiful %s %s %d",
				sampleAdjectives[rand.Intn(len(sampleAdjectives))],
				sampleNouns[rand.Intn(len(sampleNouns))], i+1),
			Description:   "A wonderful place to stay with all modern amenities.",
			Location:      sampleLocations[rand.Intn(len(sampleLocations))],
			PricePerNight: float64(50 + rand.Intn(251)),
			Bedrooms:      1 + rand.Intn(4),
			Bathrooms:     1 + rand.Intn(3),
			MaxGuests:     2 + rand.Intn(7),
			PropertyType:  sampleTypes[rand.Intn(len(sampleTypes))],
			Amenities:     "WiFi,Kitchen,Parking,Pool",
			Available:     true,
		}
		if err := db.CreateListing(&listing); err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

func createBookings(db *database.Database, logger *logrus.Logger, guests []models.User, listings []models.Listing, count int) error {
	logger.Infof("Creating %d bookings...", count)

	statuses := []models.BookingStatus{
		models.BookingPending, models.BookingConfirmed,
		models.BookingCompleted, models.BookingCanceled,
	}

	for i := 0; i < count; i++ {
		guest := guests[rand.Intn(len(guests))]
		listing := listings[rand.Intn(len(listings))]

		// Future stays only: past check-ins would be rejected on save.
		checkIn := models.DateOnly(time.Now()).AddDate(0, 0, 1+rand.Intn(60))
		checkOut := checkIn.AddDate(0, 0, 1+rand.Intn(7))

		booking := models.Booking{
			GuestID:        guest.ID,
			ListingID:      listing.ID,
			CheckInDate:    checkIn,
			CheckOutDate:   checkOut,
			NumberOfGuests: 1 + rand.Intn(listing.MaxGuests),
			Status:         statuses[rand.Intn(len(statuses))],
		}
		// Total price is left unset so the store derives it.
		if err := db.CreateBooking(&booking); err != nil {
			return err
		}
	}
	return nil
}

func createReviews(db *database.Database, logger *logrus.Logger, count int) error {
	logger.Infof("Creating up to %d reviews...", count)

	completed, err := db.ListBookings(database.BookingFilter{Status: string(models.BookingCompleted)})
	if err != nil {
		return err
	}
	if len(completed) == 0 {
		logger.Info("No completed bookings for reviews")
		return nil
	}
	if len(completed) > count {
		completed = completed[:count]
	}

	for _, booking := range completed {
		review := models.Review{
			BookingID: booking.ID,
			ListingID: booking.ListingID,
			GuestID:   booking.GuestID,
			Rating:    3 + rand.Intn(3),
			Comment:   sampleComments[rand.Intn(len(sampleComments))],
		}
		if err := db.CreateReview(&review); err != nil {
			// Reruns hit bookings that already carry a review.
			if errors.Is(err, models.ErrDuplicateReview) {
				continue
			}
			return err
		}
	}
	return nil
}
