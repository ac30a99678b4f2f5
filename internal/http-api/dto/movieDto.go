package dto

import (
	"moviehub/internal/http-api/models"
)

// MovieResponse DTO for catalog listings
type MovieResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	VoteAverage float64 `json:"vote_average"`
}

// MovieListResponse for GET /api/movies and /api/movies/search
type MovieListResponse struct {
	Genre string          `json:"genre,omitempty"`
	Query string          `json:"query,omitempty"`
	Page  int             `json:"page"`
	Data  []MovieResponse `json:"data"`
}

// TrailerResponse DTO for trailer listings
type TrailerResponse struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
}

// TrailerListResponse for GET /api/movies/:movie_id/trailers
type TrailerListResponse struct {
	MovieID int64             `json:"movie_id"`
	Data    []TrailerResponse `json:"data"`
}

func FromModelToMovieResponse(m models.Movie) MovieResponse {
	return MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Overview:    m.Overview,
		PosterPath:  m.PosterPath,
		ReleaseDate: m.ReleaseDate,
		VoteAverage: m.VoteAverage,
	}
}

func FromModelToTrailerResponse(tr models.Trailer) TrailerResponse {
	return TrailerResponse{
		Key:  tr.Key,
		Site: tr.Site,
		Name: tr.Name,
		Type: tr.Type,
	}
}
