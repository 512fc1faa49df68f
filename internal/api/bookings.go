package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"staybook/server/internal/database"
	"staybook/server/internal/models"
)

type bookingQuery struct {
	Status string `form:"status"`
	From   string `form:"from"`
	To     string `form:"to"`
}

func (h *Handler) ListBookings(c *gin.Context) {
	var query bookingQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := database.BookingFilter{Status: query.Status}
	if query.From != "" {
		from, err := time.Parse(dateLayout, query.From)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be formatted as YYYY-MM-DD"})
			return
		}
		filter.From = from
	}
	if query.To != "" {
		to, err := time.Parse(dateLayout, query.To)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be formatted as YYYY-MM-DD"})
			return
		}
		filter.To = to
	}

	bookings, err := h.db.ListBookings(filter)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list bookings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}

	resp := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, newBookingResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking := &models.Booking{}
	if err := req.apply(booking); err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.db.CreateBooking(booking); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newBookingResponse(booking))
}

func (h *Handler) GetBooking(c *gin.Context) {
	booking, err := h.db.GetBooking(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newBookingResponse(booking))
}

// UpdateBooking never touches the stored total price: once derived or
// supplied, it stays.
func (h *Handler) UpdateBooking(c *gin.Context) {
	booking, err := h.db.GetBooking(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := req.apply(booking); err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.db.UpdateBooking(booking); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newBookingResponse(booking))
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	if err := h.db.DeleteBooking(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
