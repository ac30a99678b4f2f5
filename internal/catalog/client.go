package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"moviehub/internal/http-api/models"
)

const (
	// Rate limiting: the catalog API allows ~50 requests per second but
	// bursts get throttled well before that
	rateLimit = 4
	rateBurst = 8

	// Retry configuration
	maxRetries   = 5
	initialDelay = 1 * time.Second
	maxDelay     = 32 * time.Second
)

// ErrUnknownGenre is returned for genre tokens the catalog has no id for.
var ErrUnknownGenre = errors.New("unknown genre")

// genreIDs maps the genre tokens the discovery pages use to catalog genre
// ids. An empty token means the home listing (popular).
var genreIDs = map[string]int{
	"comedy":    35,
	"horror":    27,
	"animation": 16,
}

// Client handles catalog API requests with rate limiting and retries.
type Client struct {
	apiURL      string
	apiKey      string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// NewClient creates a new catalog API client
func NewClient(apiURL, apiKey string) *Client {
	return &Client{
		apiURL:      apiURL,
		apiKey:      apiKey,
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), rateBurst),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Discover fetches one page of the genre-filtered listing. An empty genre
// token returns the popular (home) listing.
func (c *Client) Discover(ctx context.Context, genre string, page int) ([]models.Movie, error) {
	path := "/movie/popular"
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	if genre != "" {
		id, ok := genreIDs[genre]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownGenre, genre)
		}
		path = "/discover/movie"
		query.Set("with_genres", strconv.Itoa(id))
	}

	var result listingResponse
	if err := c.doRequest(ctx, path, query, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch movie listing: %w", err)
	}

	return toMovies(result.Results), nil
}

// Search fetches one page of a title search.
func (c *Client) Search(ctx context.Context, queryText string, page int) ([]models.Movie, error) {
	query := url.Values{}
	query.Set("query", queryText)
	query.Set("page", strconv.Itoa(page))

	var result listingResponse
	if err := c.doRequest(ctx, "/search/movie", query, &result); err != nil {
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}

	return toMovies(result.Results), nil
}

// Trailers fetches the hosted videos for a movie.
func (c *Client) Trailers(ctx context.Context, movieID int64) ([]models.Trailer, error) {
	var result videosResponse
	path := fmt.Sprintf("/movie/%d/videos", movieID)
	if err := c.doRequest(ctx, path, url.Values{}, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch trailers: %w", err)
	}

	trailers := make([]models.Trailer, 0, len(result.Results))
	for _, v := range result.Results {
		trailers = append(trailers, models.Trailer{
			Key:  v.Key,
			Site: v.Site,
			Name: v.Name,
			Type: v.Type,
		})
	}
	return trailers, nil
}

func toMovies(results []movieResult) []models.Movie {
	movies := make([]models.Movie, 0, len(results))
	for _, r := range results {
		movies = append(movies, models.Movie{
			ID:          r.ID,
			Title:       r.Title,
			Overview:    r.Overview,
			PosterPath:  r.PosterPath,
			ReleaseDate: r.ReleaseDate,
			VoteAverage: r.VoteAverage,
			GenreIDs:    r.GenreIDs,
		})
	}
	return movies
}

// doRequest performs a GET request with rate limiting and retry logic
func (c *Client) doRequest(ctx context.Context, path string, query url.Values, result interface{}) error {
	if c.apiKey != "" {
		query.Set("api_key", c.apiKey)
	}
	requestURL := c.apiURL + path + "?" + query.Encode()

	var lastErr error
	delay := initialDelay

	for attempt := 0; attempt <= maxRetries; attempt++ {
		// Rate limit
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter error: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if attempt < maxRetries {
				log.Printf("[catalog] Request failed (attempt %d/%d): %v, retrying in %v...",
					attempt+1, maxRetries, err, delay)
				time.Sleep(delay)
				delay = minDuration(delay*2, maxDelay)
				continue
			}
			return fmt.Errorf("request failed after %d attempts: %w", maxRetries, err)
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			// Retry on rate limit or server errors
			if shouldRetry(resp.StatusCode) && attempt < maxRetries {
				lastErr = fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))

				if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
					if retryDuration, err := time.ParseDuration(retryAfter + "s"); err == nil {
						delay = retryDuration
					}
				}

				log.Printf("[catalog] HTTP %d (attempt %d/%d), retrying in %v...",
					resp.StatusCode, attempt+1, maxRetries, delay)
				time.Sleep(delay)
				delay = minDuration(delay*2, maxDelay)
				continue
			}

			return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
		}

		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}

		return nil
	}

	return fmt.Errorf("request failed after %d attempts: %w", maxRetries, lastErr)
}

// shouldRetry determines if an HTTP status code warrants a retry
func shouldRetry(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || // 429
		statusCode >= 500 // 500-504
}

// minDuration returns the smaller of two durations
func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
