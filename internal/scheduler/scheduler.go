package scheduler

import (
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"staybook/server/internal/database"
)

// Scheduler runs the booking-completion sweep: once at startup and then
// every midnight, confirmed bookings whose stay has ended are marked
// completed. The core model enforces no status transitions itself; this
// job is the external actor that drives the progression.
type Scheduler struct {
	db       *database.Database
	logger   *logrus.Logger
	stopChan chan struct{}
	wg       sync.WaitGroup
	jobMutex sync.Mutex
}

func NewScheduler(db *database.Database, logger *logrus.Logger) *Scheduler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
		logger.SetLevel(logrus.InfoLevel)
	}

	return &Scheduler{
		db:       db,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start begins the scheduled sweep.
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	// Startup sweep catches bookings that elapsed while the server was
	// down.
	s.runCompletionSweep()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case t := <-ticker.C:
			if t.Hour() == 0 && t.Minute() == 0 {
				s.runCompletionSweep()
			}
		}
	}
}

func (s *Scheduler) runCompletionSweep() {
	s.jobMutex.Lock()
	defer s.jobMutex.Unlock()

	s.logger.Info("Starting booking completion sweep")

	count, err := s.db.CompleteElapsedBookings(time.Now())
	if err != nil {
		s.logger.WithError(err).Error("Booking completion sweep failed")
		return
	}

	s.logger.WithFields(logrus.Fields{
		"completed": count,
	}).Info("Booking completion sweep finished")
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() {
	close(s.stopChan)
	s.wg.Wait()
}
