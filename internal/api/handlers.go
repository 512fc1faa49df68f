package api

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"staybook/server/internal/database"
	"staybook/server/internal/geocoding"
	"staybook/server/internal/models"
	"staybook/server/internal/queue"
)

type Handler struct {
	db       *database.Database
	logger   *logrus.Logger
	geocoder *geocoding.Geocoder
	queue    *queue.ListingQueue
}

func NewHandler(db *database.Database, logger *logrus.Logger, q *queue.ListingQueue) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	cacheDir := filepath.Join(os.TempDir(), "staybook", "geocode_cache")

	return &Handler{
		db:       db,
		logger:   logger,
		geocoder: geocoding.NewGeocoder(logger, cacheDir),
		queue:    q,
	}
}

// respondError maps store errors to HTTP: validation failures are the
// caller's fault, missing rows are 404, everything else is opaque.
func (h *Handler) respondError(c *gin.Context, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Reason})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		h.logger.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.db.GetListingStats()
	if err != nil {
		h.logger.WithError(err).Error("Failed to get listing stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get listing stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) UpdateCoordinates(c *gin.Context) {
	if err := h.db.UpdateMissingCoordinates(h.geocoder); err != nil {
		h.logger.WithError(err).Error("Failed to update coordinates")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coordinates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Coordinates updated successfully"})
}

// ImportListings feeds a bulk payload into the batch pipeline. The write
// happens asynchronously; validation still runs per listing when the
// processor drains the batch.
func (h *Handler) ImportListings(c *gin.Context) {
	var reqs []ListingRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(reqs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty import payload"})
		return
	}

	batch := make([]*models.Listing, 0, len(reqs))
	for i := range reqs {
		l := &models.Listing{Available: true}
		reqs[i].apply(l)
		batch = append(batch, l)
	}

	if err := h.queue.Push(batch); err != nil {
		h.logger.WithError(err).Error("Failed to enqueue listing import")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "import pipeline unavailable"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"queued": len(batch)})
}
