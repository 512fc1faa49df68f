package processor

import (
	"database/sql"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"staybook/server/config"
	"staybook/server/internal/models"
	"staybook/server/internal/queue"
)

// MockTxRunner stands in for *gorm.DB's Transaction method.
type MockTxRunner struct {
	mock.Mock
}

func (m *MockTxRunner) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	args := m.Called(fc)
	return args.Error(0)
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.BatchProcessing.ProcessorCount = 2
	cfg.BatchProcessing.MaxRetries = 3
	cfg.BatchProcessing.RetryDelay = 0
	return cfg
}

func TestNewBatchProcessor(t *testing.T) {
	mockDB := &MockTxRunner{}
	q := queue.NewListingQueue(10, testLogger())
	cfg := testConfig()
	logger := testLogger()

	p := NewBatchProcessor(mockDB, q, cfg, logger)

	assert.NotNil(t, p)
	assert.Equal(t, mockDB, p.db)
	assert.Equal(t, q, p.queue)
	assert.Equal(t, cfg, p.config)
	assert.Equal(t, logger, p.logger)
}

func TestBatchProcessor_ProcessBatch(t *testing.T) {
	mockDB := &MockTxRunner{}
	q := queue.NewListingQueue(10, testLogger())
	p := NewBatchProcessor(mockDB, q, testConfig(), testLogger())

	batch := []*models.Listing{
		{Title: "Test Listing 1"},
		{Title: "Test Listing 2"},
	}

	// Successful processing
	mockDB.On("Transaction", mock.Anything).Return(nil).Once()
	err := p.processBatch(batch)
	assert.NoError(t, err)

	// Transient failures are retried until the attempts run out
	mockDB.On("Transaction", mock.Anything).Return(errors.New("db error")).Times(4)
	err = p.processBatch(batch)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to process batch after 3 attempts")

	mockDB.AssertExpectations(t)
}

func TestBatchProcessor_ProcessBatchValidationFailureNotRetried(t *testing.T) {
	mockDB := &MockTxRunner{}
	q := queue.NewListingQueue(10, testLogger())
	p := NewBatchProcessor(mockDB, q, testConfig(), testLogger())

	mockDB.On("Transaction", mock.Anything).Return(models.ErrInvalidPrice).Once()

	err := p.processBatch([]*models.Listing{{Title: "Free stay"}})
	assert.ErrorIs(t, err, models.ErrInvalidPrice)

	// Only the single call; retrying a validation failure is pointless.
	mockDB.AssertNumberOfCalls(t, "Transaction", 1)
}

func TestBatchProcessor_StartStop(t *testing.T) {
	mockDB := &MockTxRunner{}
	q := queue.NewListingQueue(10, testLogger())
	p := NewBatchProcessor(mockDB, q, testConfig(), testLogger())

	mockDB.On("Transaction", mock.Anything).Return(nil)

	p.Start()

	err := q.Push([]*models.Listing{{Title: "queued"}})
	assert.NoError(t, err)
	time.Sleep(100 * time.Millisecond)

	p.Stop()
	assert.True(t, q.IsClosed())
	mockDB.AssertCalled(t, "Transaction", mock.Anything)
}
