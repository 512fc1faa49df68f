package api

import (
	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, handler *Handler) {
	api := router.Group("/api")
	{
		api.GET("/listings", handler.ListListings)
		api.POST("/listings", handler.CreateListing)
		api.POST("/listings/import", handler.ImportListings)
		api.GET("/listings/:id", handler.GetListing)
		api.PUT("/listings/:id", handler.UpdateListing)
		api.DELETE("/listings/:id", handler.DeleteListing)
		api.GET("/listings/:id/reviews", handler.ListListingReviews)

		api.GET("/bookings", handler.ListBookings)
		api.POST("/bookings", handler.CreateBooking)
		api.GET("/bookings/:id", handler.GetBooking)
		api.PUT("/bookings/:id", handler.UpdateBooking)
		api.DELETE("/bookings/:id", handler.DeleteBooking)

		api.GET("/reviews", handler.ListReviews)
		api.POST("/reviews", handler.CreateReview)
		api.GET("/reviews/:id", handler.GetReview)
		api.PUT("/reviews/:id", handler.UpdateReview)
		api.DELETE("/reviews/:id", handler.DeleteReview)

		api.GET("/stats", handler.GetStats)
		api.POST("/update-coordinates", handler.UpdateCoordinates)
	}
}
