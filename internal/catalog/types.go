package catalog

// movieResult mirrors one entry of the catalog API's listing payloads.
type movieResult struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	GenreIDs    []int64 `json:"genre_ids"`
}

// listingResponse is the shape of /discover/movie, /movie/popular and
// /search/movie responses.
type listingResponse struct {
	Page         int           `json:"page"`
	Results      []movieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// videoResult mirrors one entry of /movie/{id}/videos.
type videoResult struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type videosResponse struct {
	ID      int64         `json:"id"`
	Results []videoResult `json:"results"`
}
