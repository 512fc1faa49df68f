package database

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"staybook/server/internal/models"
)

type ReviewFilter struct {
	Rating    int
	ListingID string
}

func (d *Database) CreateReview(r *models.Review) error {
	err := d.db.Omit(clause.Associations).Create(r).Error
	if isUniqueViolation(err) {
		return models.ErrDuplicateReview
	}
	return err
}

func (d *Database) GetReview(id string) (*models.Review, error) {
	var r models.Review
	err := d.db.Preload("Guest").Preload("Booking").Where("id = ?", id).First(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (d *Database) UpdateReview(r *models.Review) error {
	err := d.db.Omit(clause.Associations).Save(r).Error
	if isUniqueViolation(err) {
		return models.ErrDuplicateReview
	}
	return err
}

func (d *Database) DeleteReview(id string) error {
	res := d.db.Where("id = ?", id).Delete(&models.Review{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListReviews returns reviews newest-first, optionally narrowed by rating
// or listing.
func (d *Database) ListReviews(filter ReviewFilter) ([]models.Review, error) {
	q := d.db.Preload("Guest").Order("created_at DESC")

	if filter.Rating > 0 {
		q = q.Where("rating = ?", filter.Rating)
	}
	if filter.ListingID != "" {
		q = q.Where("listing_id = ?", filter.ListingID)
	}

	var reviews []models.Review
	if err := q.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
