package models

// Movie is a read-only catalog record sourced from the external movie API.
type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"` // 0–10
	GenreIDs    []int64 `json:"genre_ids"`
}

// Trailer references a hosted video for a movie; the key resolves against the
// hosting site (e.g. a YouTube video id).
type Trailer struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Name string `json:"name"`
	Type string `json:"type"`
}
