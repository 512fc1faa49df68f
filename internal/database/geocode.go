package database

import (
	"fmt"

	"gorm.io/gorm"

	"staybook/server/internal/geocoding"
	"staybook/server/internal/models"
)

// UpdateMissingCoordinates backfills latitude/longitude for listings that
// have a location but no coordinates yet. Each batch commits on its own, so
// a failed lookup never blocks the rest. Column-level updates are used on
// purpose: legacy rows are not re-validated by a coordinate backfill.
func (d *Database) UpdateMissingCoordinates(geocoder *geocoding.Geocoder) error {
	var totalCount int64
	err := d.db.Model(&models.Listing{}).
		Where("(latitude IS NULL OR longitude IS NULL) AND geocode_attempted = ? AND location <> ''", false).
		Count(&totalCount).Error
	if err != nil {
		return fmt.Errorf("failed to count listings: %w", err)
	}

	if totalCount == 0 {
		d.logger.Info("No listings need geocoding")
		return nil
	}

	d.logger.Infof("Found %d listings that need geocoding", totalCount)

	var processed, failed int64
	batchSize := 10

	for processed+failed < totalCount {
		var batchProcessed int64

		err := d.db.Transaction(func(tx *gorm.DB) error {
			var batch []models.Listing
			err := tx.Select("id", "location").
				Where("(latitude IS NULL OR longitude IS NULL) AND geocode_attempted = ? AND location <> ''", false).
				Limit(batchSize).
				Find(&batch).Error
			if err != nil {
				return fmt.Errorf("failed to query listings: %w", err)
			}

			for _, l := range batch {
				lat, lon, err := geocoder.GeocodeLocation(l.Location)
				if err != nil {
					d.logger.WithError(err).WithField("location", l.Location).Warn("Failed to geocode listing")
					// Mark as attempted even if geocoding failed
					if err := tx.Model(&models.Listing{}).Where("id = ?", l.ID).
						Update("geocode_attempted", true).Error; err != nil {
						return fmt.Errorf("failed to mark geocoding attempt: %w", err)
					}
					failed++
					batchProcessed++
					continue
				}

				if err := tx.Model(&models.Listing{}).Where("id = ?", l.ID).
					Updates(map[string]interface{}{
						"latitude":          lat,
						"longitude":         lon,
						"geocode_attempted": true,
					}).Error; err != nil {
					return fmt.Errorf("failed to update coordinates: %w", err)
				}
				processed++
				batchProcessed++
			}
			return nil
		})
		if err != nil {
			return err
		}

		if batchProcessed == 0 {
			return fmt.Errorf("no listings processed in batch, possible data inconsistency. Total processed: %d/%d",
				processed+failed, totalCount)
		}

		d.logger.Infof("Geocoding progress: %d/%d listings processed, %d failed",
			processed+failed, totalCount, failed)
	}

	d.logger.Infof("Geocoding completed: %d/%d listings processed, %d failed",
		processed+failed, totalCount, failed)

	return nil
}
