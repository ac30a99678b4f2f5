package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"moviehub/internal/http-api/dto"
	"moviehub/internal/http-api/models"
	"moviehub/internal/kvstore"
)

// Catalog is the slice of the catalog client this service consumes.
type Catalog interface {
	Discover(ctx context.Context, genre string, page int) ([]models.Movie, error)
	Search(ctx context.Context, query string, page int) ([]models.Movie, error)
	Trailers(ctx context.Context, movieID int64) ([]models.Trailer, error)
}

type MovieService interface {
	Discover(ctx context.Context, genre string, page int) (*dto.MovieListResponse, error)
	Search(ctx context.Context, query string, page int) (*dto.MovieListResponse, error)
	Trailers(ctx context.Context, movieID int64) (*dto.TrailerListResponse, error)
}

type movieService struct {
	catalog Catalog
	cache   kvstore.Store // TTL-bearing store; nil disables caching
	logger  *slog.Logger
}

func NewMovieService(catalog Catalog, cache kvstore.Store, logger *slog.Logger) MovieService {
	if logger == nil {
		logger = slog.Default()
	}
	return &movieService{
		catalog: catalog,
		cache:   cache,
		logger:  logger,
	}
}

// Discover returns one page of the genre listing, served from cache when a
// fresh copy exists.
func (s *movieService) Discover(ctx context.Context, genre string, page int) (*dto.MovieListResponse, error) {
	cacheKey := fmt.Sprintf("catalog:discover:%s:%d", genre, page)

	var movies []models.Movie
	if !s.cacheGet(ctx, cacheKey, &movies) {
		var err error
		movies, err = s.catalog.Discover(ctx, genre, page)
		if err != nil {
			return nil, err
		}
		s.cacheSet(ctx, cacheKey, movies)
	}

	return &dto.MovieListResponse{
		Genre: genre,
		Page:  page,
		Data:  toMovieResponses(movies),
	}, nil
}

// Search returns one page of a title search, served from cache when a fresh
// copy exists.
func (s *movieService) Search(ctx context.Context, query string, page int) (*dto.MovieListResponse, error) {
	cacheKey := fmt.Sprintf("catalog:search:%s:%d", query, page)

	var movies []models.Movie
	if !s.cacheGet(ctx, cacheKey, &movies) {
		var err error
		movies, err = s.catalog.Search(ctx, query, page)
		if err != nil {
			return nil, err
		}
		s.cacheSet(ctx, cacheKey, movies)
	}

	return &dto.MovieListResponse{
		Query: query,
		Page:  page,
		Data:  toMovieResponses(movies),
	}, nil
}

// Trailers returns the hosted videos for a movie.
func (s *movieService) Trailers(ctx context.Context, movieID int64) (*dto.TrailerListResponse, error) {
	cacheKey := fmt.Sprintf("catalog:trailers:%d", movieID)

	var trailers []models.Trailer
	if !s.cacheGet(ctx, cacheKey, &trailers) {
		var err error
		trailers, err = s.catalog.Trailers(ctx, movieID)
		if err != nil {
			return nil, err
		}
		s.cacheSet(ctx, cacheKey, trailers)
	}

	responses := make([]dto.TrailerResponse, 0, len(trailers))
	for _, tr := range trailers {
		responses = append(responses, dto.FromModelToTrailerResponse(tr))
	}

	return &dto.TrailerListResponse{
		MovieID: movieID,
		Data:    responses,
	}, nil
}

// cacheGet reports whether target was populated from cache. Cache failures
// only cost a refetch.
func (s *movieService) cacheGet(ctx context.Context, key string, target interface{}) bool {
	if s.cache == nil {
		return false
	}
	value, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("catalog cache read failed", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(value, target); err != nil {
		s.logger.Warn("catalog cache entry malformed", "key", key, "error", err)
		return false
	}
	return true
}

func (s *movieService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, encoded); err != nil {
		s.logger.Warn("catalog cache write failed", "key", key, "error", err)
	}
}

func toMovieResponses(movies []models.Movie) []dto.MovieResponse {
	responses := make([]dto.MovieResponse, 0, len(movies))
	for _, m := range movies {
		responses = append(responses, dto.FromModelToMovieResponse(m))
	}
	return responses
}
