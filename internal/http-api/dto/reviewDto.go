package dto

import (
	"moviehub/internal/http-api/models"
)

// CreateReviewDTO for submitting a review. Rating is a pointer so a missing
// field is distinguishable from an explicit 0; range checking happens in the
// service so the response message stays uniform.
type CreateReviewDTO struct {
	Rating  *int   `json:"rating"`
	Comment string `json:"comment"`
}

// ReviewResponse for returning a single review with its rendered star row
type ReviewResponse struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Stars   string `json:"stars"`
}

// ReviewListResponse for returning a movie's sorted reviews
type ReviewListResponse struct {
	MovieID int64            `json:"movie_id"`
	Sort    string           `json:"sort"`
	Total   int              `json:"total"`
	Data    []ReviewResponse `json:"data"`
}

// ReviewSummaryResponse for returning aggregate review info
type ReviewSummaryResponse struct {
	MovieID       int64   `json:"movie_id"`
	TotalReviews  int     `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
	Stars         string  `json:"stars"`
}

// FromModelToReviewResponse converts a Review model to ReviewResponse DTO.
// renderStars maps the 0–10 rating to the fixed-width star row.
func FromModelToReviewResponse(review *models.Review, renderStars func(float64) string) *ReviewResponse {
	return &ReviewResponse{
		Rating:  review.Rating,
		Comment: review.Comment,
		Stars:   renderStars(float64(review.Rating)),
	}
}
