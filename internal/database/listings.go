package database

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"staybook/server/internal/models"
)

// NearFilter restricts listings to a radius around a point. Listings
// without coordinates never match.
type NearFilter struct {
	Latitude  float64
	Longitude float64
	RadiusKM  float64
}

type ListingFilter struct {
	Location     string
	PropertyType string
	MinPrice     float64
	MaxPrice     float64
	Available    *bool
	Near         *NearFilter
}

func (d *Database) CreateListing(l *models.Listing) error {
	return d.db.Omit(clause.Associations).Create(l).Error
}

func (d *Database) GetListing(id string) (*models.Listing, error) {
	var l models.Listing
	err := d.db.Preload("Host").Preload("Reviews").Where("id = ?", id).First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// UpdateListing saves the full row. Validation hooks run again, so an
// update can fail the same way a create does.
func (d *Database) UpdateListing(l *models.Listing) error {
	return d.db.Omit(clause.Associations).Save(l).Error
}

// DeleteListing removes the listing together with its bookings and
// reviews as one cooperative cleanup transaction. Cascading is owned here,
// not delegated to a storage trigger.
func (d *Database) DeleteListing(id string) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("listing_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Listing{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ListListings returns listings newest-first. The proximity filter is
// applied in memory over the already narrowed result set.
func (d *Database) ListListings(filter ListingFilter) ([]models.Listing, error) {
	q := d.db.Preload("Reviews").Order("created_at DESC")

	if filter.Location != "" {
		q = q.Where("LOWER(location) LIKE LOWER(?)", "%"+filter.Location+"%")
	}
	if filter.PropertyType != "" {
		q = q.Where("property_type = ?", filter.PropertyType)
	}
	if filter.MinPrice > 0 {
		q = q.Where("price_per_night >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		q = q.Where("price_per_night <= ?", filter.MaxPrice)
	}
	if filter.Available != nil {
		q = q.Where("available = ?", *filter.Available)
	}

	var listings []models.Listing
	if err := q.Find(&listings).Error; err != nil {
		return nil, err
	}

	if filter.Near != nil {
		listings = filterByDistance(listings, filter.Near)
	}
	return listings, nil
}

func filterByDistance(listings []models.Listing, near *NearFilter) []models.Listing {
	center := orb.Point{near.Longitude, near.Latitude}
	out := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if l.Latitude == nil || l.Longitude == nil {
			continue
		}
		point := orb.Point{*l.Longitude, *l.Latitude}
		if geo.Distance(center, point) <= near.RadiusKM*1000 {
			out = append(out, l)
		}
	}
	return out
}

// UpsertListings writes a batch inside the caller's transaction. Existing
// rows (matched by id) are replaced; validation hooks still run per row.
func UpsertListings(tx *gorm.DB, listings []*models.Listing) error {
	return tx.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&listings).Error
}
