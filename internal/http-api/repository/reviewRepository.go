package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"moviehub/internal/http-api/models"
	"moviehub/internal/kvstore"
)

// Key pattern for the stored collection, one entry per movie.
const reviewKeyFormat = "movie-reviews-%d"

type ReviewRepository interface {
	// Load returns the stored collection for a movie in insertion order.
	// It never fails toward the caller: an absent key, an unparseable value,
	// or a backend error all read as an empty collection.
	Load(ctx context.Context, movieID int64) []models.Review
	// Save serializes the full collection and overwrites any prior value.
	Save(ctx context.Context, movieID int64, reviews []models.Review) error
}

type kvReviewRepository struct {
	store  kvstore.Store
	logger *slog.Logger
}

func NewReviewRepository(store kvstore.Store, logger *slog.Logger) ReviewRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &kvReviewRepository{store: store, logger: logger}
}

func reviewKey(movieID int64) string {
	return fmt.Sprintf(reviewKeyFormat, movieID)
}

func (r *kvReviewRepository) Load(ctx context.Context, movieID int64) []models.Review {
	key := reviewKey(movieID)

	value, ok, err := r.store.Get(ctx, key)
	if err != nil {
		r.logger.Warn("review store read failed, treating as empty", "key", key, "error", err)
		return []models.Review{}
	}
	if !ok {
		return []models.Review{}
	}

	var reviews []models.Review
	if err := json.Unmarshal(value, &reviews); err != nil {
		r.logger.Warn("malformed review collection, treating as empty", "key", key, "error", err)
		return []models.Review{}
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews
}

func (r *kvReviewRepository) Save(ctx context.Context, movieID int64, reviews []models.Review) error {
	value, err := json.Marshal(reviews)
	if err != nil {
		return fmt.Errorf("failed to serialize review collection: %w", err)
	}
	if err := r.store.Set(ctx, reviewKey(movieID), value); err != nil {
		return fmt.Errorf("failed to persist review collection: %w", err)
	}
	return nil
}
