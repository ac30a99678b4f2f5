package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"moviehub/internal/http-api/dto"
	"moviehub/internal/http-api/handler"
	"moviehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- MOCK SERVICE ---

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) SubmitReview(ctx context.Context, movieID int64, rating *int, comment string) (*dto.ReviewResponse, error) {
	args := m.Called(ctx, movieID, rating, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) ListReviews(ctx context.Context, movieID int64, sortOption service.SortOption) *dto.ReviewListResponse {
	args := m.Called(ctx, movieID, sortOption)
	return args.Get(0).(*dto.ReviewListResponse)
}

func (m *MockReviewService) Summary(ctx context.Context, movieID int64) *dto.ReviewSummaryResponse {
	args := m.Called(ctx, movieID)
	return args.Get(0).(*dto.ReviewSummaryResponse)
}

// --- SETUP ---

func setupReviewRouter(mockService *MockReviewService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	h := handler.NewReviewHandler(mockService)

	rg := r.Group("/api/movies")
	h.RegisterRoutes(rg)
	return r
}

// --- TESTS ---

func TestReviewHandler_List(t *testing.T) {
	mockService := new(MockReviewService)
	r := setupReviewRouter(mockService)

	expected := &dto.ReviewListResponse{
		MovieID: 550,
		Sort:    "highest",
		Total:   2,
		Data: []dto.ReviewResponse{
			{Rating: 9, Comment: "masterpiece", Stars: "★★★★★★★★★☆"},
			{Rating: 3, Comment: "overrated", Stars: "★★★☆☆☆☆☆☆☆"},
		},
	}

	t.Run("Success", func(t *testing.T) {
		mockService.On("ListReviews", mock.Anything, int64(550), service.SortHighest).
			Return(expected).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/movies/550/reviews?sort=highest", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ReviewListResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, 2, response.Total)
		assert.Equal(t, "masterpiece", response.Data[0].Comment)
	})

	t.Run("DefaultsToNewest", func(t *testing.T) {
		mockService.On("ListReviews", mock.Anything, int64(550), service.SortNewest).
			Return(&dto.ReviewListResponse{MovieID: 550, Sort: "newest", Data: []dto.ReviewResponse{}}).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/movies/550/reviews", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidMovieID", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/api/movies/abc/reviews", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReviewHandler_Create(t *testing.T) {
	mockService := new(MockReviewService)
	r := setupReviewRouter(mockService)

	t.Run("Success", func(t *testing.T) {
		stored := &dto.ReviewResponse{Rating: 8, Comment: "solid", Stars: "★★★★★★★★☆☆"}
		mockService.On("SubmitReview", mock.Anything, int64(550), mock.MatchedBy(func(r *int) bool {
			return r != nil && *r == 8
		}), "solid").Return(stored, nil).Once()

		body, _ := json.Marshal(dto.CreateReviewDTO{Rating: intPtr(8), Comment: "solid"})
		req, _ := http.NewRequest(http.MethodPost, "/api/movies/550/reviews", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.ReviewResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, 8, response.Rating)
		mockService.AssertExpectations(t)
	})

	t.Run("RatingOutOfRange", func(t *testing.T) {
		mockService.On("SubmitReview", mock.Anything, int64(550), mock.Anything, "bad").
			Return(nil, service.ErrRatingOutOfRange).Once()

		body, _ := json.Marshal(dto.CreateReviewDTO{Rating: intPtr(11), Comment: "bad"})
		req, _ := http.NewRequest(http.MethodPost, "/api/movies/550/reviews", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]string
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "rating must be between 1 and 10", response["error"])
	})

	t.Run("EmptyCommentIsSilentNoOp", func(t *testing.T) {
		mockService.On("SubmitReview", mock.Anything, int64(550), mock.Anything, "").
			Return(nil, service.ErrEmptyComment).Once()

		body, _ := json.Marshal(dto.CreateReviewDTO{Rating: intPtr(7), Comment: ""})
		req, _ := http.NewRequest(http.MethodPost, "/api/movies/550/reviews", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())
	})

	t.Run("MalformedBody", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, "/api/movies/550/reviews", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReviewHandler_GetSummary(t *testing.T) {
	mockService := new(MockReviewService)
	r := setupReviewRouter(mockService)

	t.Run("Success", func(t *testing.T) {
		summary := &dto.ReviewSummaryResponse{
			MovieID:       550,
			TotalReviews:  2,
			AverageRating: 7.5,
			Stars:         "★★★★★★★⯪☆☆",
		}
		mockService.On("Summary", mock.Anything, int64(550)).Return(summary).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/movies/550/reviews/summary", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ReviewSummaryResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, 2, response.TotalReviews)
		assert.Equal(t, 7.5, response.AverageRating)
	})

	t.Run("InvalidMovieID", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/api/movies/xyz/reviews/summary", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func intPtr(i int) *int { return &i }
