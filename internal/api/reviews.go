package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staybook/server/internal/database"
	"staybook/server/internal/models"
)

type reviewQuery struct {
	Rating    int    `form:"rating"`
	ListingID string `form:"listing_id"`
}

func (h *Handler) ListReviews(c *gin.Context) {
	var query reviewQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reviews, err := h.db.ListReviews(database.ReviewFilter{
		Rating:    query.Rating,
		ListingID: query.ListingID,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to list reviews")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reviews"})
		return
	}

	resp := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		resp = append(resp, newReviewResponse(&reviews[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateReview(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review := &models.Review{}
	req.apply(review)

	if err := h.db.CreateReview(review); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newReviewResponse(review))
}

func (h *Handler) GetReview(c *gin.Context) {
	review, err := h.db.GetReview(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newReviewResponse(review))
}

func (h *Handler) UpdateReview(c *gin.Context) {
	review, err := h.db.GetReview(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.apply(review)
	if err := h.db.UpdateReview(review); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newReviewResponse(review))
}

func (h *Handler) DeleteReview(c *gin.Context) {
	if err := h.db.DeleteReview(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
