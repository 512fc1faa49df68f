package processor

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"staybook/server/config"
	"staybook/server/internal/database"
	"staybook/server/internal/models"
	"staybook/server/internal/queue"
)

// TxRunner is the slice of *gorm.DB the processor needs. Kept narrow so
// tests can substitute a mock.
type TxRunner interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

// BatchProcessor drains the listing queue into the store. Each batch is
// written in one transaction; validation hooks run per listing, so an
// invalid listing rejects its whole batch.
type BatchProcessor struct {
	db     TxRunner
	logger *logrus.Logger
	config *config.Config
	queue  *queue.ListingQueue
}

func NewBatchProcessor(db TxRunner, q *queue.ListingQueue, cfg *config.Config, logger *logrus.Logger) *BatchProcessor {
	return &BatchProcessor{
		db:     db,
		queue:  q,
		config: cfg,
		logger: logger,
	}
}

// Start subscribes to the queue and spawns the configured number of drain
// workers.
func (p *BatchProcessor) Start() {
	p.queue.Subscribe(p.processBatch)
	p.queue.Start(p.config.BatchProcessing.ProcessorCount)
}

// Stop closes the queue, which winds down the drain workers.
func (p *BatchProcessor) Stop() {
	p.queue.Close()
}

// processBatch writes a single batch with transaction and retry logic.
func (p *BatchProcessor) processBatch(batch []*models.Listing) error {
	var err error
	for attempt := 0; attempt <= p.config.BatchProcessing.MaxRetries; attempt++ {
		if attempt > 0 {
			p.logger.Infof("Retrying batch processing, attempt %d of %d", attempt, p.config.BatchProcessing.MaxRetries)
			time.Sleep(time.Duration(p.config.BatchProcessing.RetryDelay) * time.Second)
		}

		err = p.db.Transaction(func(tx *gorm.DB) error {
			if err := database.UpsertListings(tx, batch); err != nil {
				return fmt.Errorf("failed to upsert listings batch: %w", err)
			}
			return nil
		})

		if err == nil {
			p.logger.Infof("Successfully processed batch of %d listings", len(batch))
			return nil
		}

		// Validation failures are caller-input problems; retrying cannot
		// fix them.
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			p.logger.WithError(err).Error("Batch rejected by validation")
			return err
		}

		p.logger.Errorf("Batch processing failed: %v", err)
	}

	return fmt.Errorf("failed to process batch after %d attempts: %w", p.config.BatchProcessing.MaxRetries, err)
}
