package handler

import (
	"errors"
	"net/http"
	"strconv"

	"moviehub/internal/http-api/dto"
	"moviehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// RegisterRoutes registers review-related routes
func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup) {
	reviews := router.Group("/:movie_id/reviews")
	{
		reviews.GET("", h.List)               // Sorted reviews for a movie
		reviews.GET("/summary", h.GetSummary) // Count, average, star row
		reviews.POST("", h.Create)            // Submit a review
	}
}

// List retrieves a movie's reviews under the requested sort policy
// GET /api/movies/:movie_id/reviews?sort=newest|highest|lowest
func (h *ReviewHandler) List(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID"})
		return
	}

	sortOption := service.SortOption(c.DefaultQuery("sort", string(service.SortNewest)))

	reviews := h.reviewService.ListReviews(c.Request.Context(), movieID, sortOption)
	c.JSON(http.StatusOK, reviews)
}

// Create submits a new review for a movie
// POST /api/movies/:movie_id/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID"})
		return
	}

	var req dto.CreateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.SubmitReview(c.Request.Context(), movieID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRatingOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrEmptyComment):
			// Kept from the original UI: an empty comment drops the
			// submission without surfacing an error
			c.Status(http.StatusNoContent)
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, review)
}

// GetSummary retrieves the review count, average rating and star row
// GET /api/movies/:movie_id/reviews/summary
func (h *ReviewHandler) GetSummary(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID"})
		return
	}

	summary := h.reviewService.Summary(c.Request.Context(), movieID)
	c.JSON(http.StatusOK, summary)
}
