package handler

import (
	"errors"
	"net/http"
	"strconv"

	"moviehub/internal/catalog"
	"moviehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	movieService service.MovieService
}

func NewMovieHandler(movieService service.MovieService) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
	}
}

// RegisterRoutes registers catalog-facing routes
func (h *MovieHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("", h.List)                           // Genre listing / home page
	router.GET("/search", h.Search)                  // Title search
	router.GET("/:movie_id/trailers", h.GetTrailers) // Trailer listing
}

// List retrieves one page of the genre-filtered catalog listing
// GET /api/movies?genre=comedy&page=1
func (h *MovieHandler) List(c *gin.Context) {
	genre := c.Query("genre")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	movies, err := h.movieService.Discover(c.Request.Context(), genre, page)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownGenre) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown genre"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Catalog unavailable"})
		return
	}

	c.JSON(http.StatusOK, movies)
}

// Search retrieves one page of a title search
// GET /api/movies/search?q=alien&page=1
func (h *MovieHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing search query"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	movies, err := h.movieService.Search(c.Request.Context(), query, page)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Catalog unavailable"})
		return
	}

	c.JSON(http.StatusOK, movies)
}

// GetTrailers retrieves the trailer listing for a movie
// GET /api/movies/:movie_id/trailers
func (h *MovieHandler) GetTrailers(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID"})
		return
	}

	trailers, err := h.movieService.Trailers(c.Request.Context(), movieID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Catalog unavailable"})
		return
	}

	c.JSON(http.StatusOK, trailers)
}
