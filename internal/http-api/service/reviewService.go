package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"moviehub/internal/http-api/dto"
	"moviehub/internal/http-api/models"
	"moviehub/internal/http-api/repository"
)

// ErrRatingOutOfRange is surfaced to the client verbatim.
var ErrRatingOutOfRange = errors.New("rating must be between 1 and 10")

// ErrEmptyComment marks a submission with no comment text. The handler maps
// it to a silent no-op rather than an error response.
var ErrEmptyComment = errors.New("empty comment")

// SortOption selects the display ordering of a review collection.
type SortOption string

const (
	SortNewest  SortOption = "newest"  // reverse of insertion order
	SortHighest SortOption = "highest" // descending by rating, stable
	SortLowest  SortOption = "lowest"  // ascending by rating, stable
)

type ReviewService interface {
	SubmitReview(ctx context.Context, movieID int64, rating *int, comment string) (*dto.ReviewResponse, error)
	ListReviews(ctx context.Context, movieID int64, sortOption SortOption) *dto.ReviewListResponse
	Summary(ctx context.Context, movieID int64) *dto.ReviewSummaryResponse
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

// SubmitReview validates the submission, appends it to the movie's stored
// collection, and persists the full collection. Rejected submissions leave
// the stored value untouched.
func (s *reviewService) SubmitReview(ctx context.Context, movieID int64, rating *int, comment string) (*dto.ReviewResponse, error) {
	if rating == nil || *rating < 1 || *rating > 10 {
		return nil, ErrRatingOutOfRange
	}
	if strings.TrimSpace(comment) == "" {
		return nil, ErrEmptyComment
	}

	review := models.Review{Rating: *rating, Comment: comment}

	reviews := s.reviewRepo.Load(ctx, movieID)
	reviews = append(reviews, review)
	if err := s.reviewRepo.Save(ctx, movieID, reviews); err != nil {
		return nil, err
	}

	return dto.FromModelToReviewResponse(&review, RenderStars), nil
}

// ListReviews returns the movie's reviews ordered by the requested policy.
// Sorting happens on a copy; the stored collection keeps insertion order.
func (s *reviewService) ListReviews(ctx context.Context, movieID int64, sortOption SortOption) *dto.ReviewListResponse {
	reviews := sortReviews(s.reviewRepo.Load(ctx, movieID), sortOption)

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, *dto.FromModelToReviewResponse(&reviews[i], RenderStars))
	}

	return &dto.ReviewListResponse{
		MovieID: movieID,
		Sort:    string(sortOption),
		Total:   len(responses),
		Data:    responses,
	}
}

// Summary returns the review count, mean rating, and rendered star row for a
// movie. An empty collection reads as zero reviews with an empty star row.
func (s *reviewService) Summary(ctx context.Context, movieID int64) *dto.ReviewSummaryResponse {
	reviews := s.reviewRepo.Load(ctx, movieID)

	var average float64
	if len(reviews) > 0 {
		var sum int
		for _, review := range reviews {
			sum += review.Rating
		}
		average = float64(sum) / float64(len(reviews))
	}

	return &dto.ReviewSummaryResponse{
		MovieID:       movieID,
		TotalReviews:  len(reviews),
		AverageRating: average,
		Stars:         RenderStars(average),
	}
}

func sortReviews(reviews []models.Review, sortOption SortOption) []models.Review {
	sorted := make([]models.Review, len(reviews))
	copy(sorted, reviews)

	switch sortOption {
	case SortNewest:
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	case SortHighest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	case SortLowest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating < sorted[j].Rating
		})
	}
	// Anything else keeps insertion order
	return sorted
}
