package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staybook/server/internal/database"
	"staybook/server/internal/models"
)

type listingQuery struct {
	Location     string   `form:"location"`
	PropertyType string   `form:"property_type"`
	MinPrice     float64  `form:"min_price"`
	MaxPrice     float64  `form:"max_price"`
	Available    *bool    `form:"available"`
	Latitude     *float64 `form:"lat"`
	Longitude    *float64 `form:"lon"`
	RadiusKM     float64  `form:"radius_km"`
}

func (h *Handler) ListListings(c *gin.Context) {
	var query listingQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := database.ListingFilter{
		Location:     query.Location,
		PropertyType: query.PropertyType,
		MinPrice:     query.MinPrice,
		MaxPrice:     query.MaxPrice,
		Available:    query.Available,
	}
	if query.Latitude != nil && query.Longitude != nil {
		radius := query.RadiusKM
		if radius <= 0 {
			radius = 10
		}
		filter.Near = &database.NearFilter{
			Latitude:  *query.Latitude,
			Longitude: *query.Longitude,
			RadiusKM:  radius,
		}
	}

	listings, err := h.db.ListListings(filter)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list listings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list listings"})
		return
	}

	resp := make([]ListingResponse, 0, len(listings))
	for i := range listings {
		resp = append(resp, newListingResponse(&listings[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateListing(c *gin.Context) {
	var req ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	listing := &models.Listing{Available: true}
	req.apply(listing)

	if err := h.db.CreateListing(listing); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newListingResponse(listing))
}

func (h *Handler) GetListing(c *gin.Context) {
	listing, err := h.db.GetListing(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newListingResponse(listing))
}

func (h *Handler) UpdateListing(c *gin.Context) {
	listing, err := h.db.GetListing(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.apply(listing)
	if err := h.db.UpdateListing(listing); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newListingResponse(listing))
}

func (h *Handler) DeleteListing(c *gin.Context) {
	if err := h.db.DeleteListing(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListListingReviews(c *gin.Context) {
	// 404s before listing the reviews of a listing that does not exist.
	if _, err := h.db.GetListing(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	reviews, err := h.db.ListReviews(database.ReviewFilter{ListingID: c.Param("id")})
	if err != nil {
		h.logger.WithError(err).Error("Failed to list listing reviews")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list listing reviews"})
		return
	}

	resp := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		resp = append(resp, newReviewResponse(&reviews[i]))
	}
	c.JSON(http.StatusOK, resp)
}
