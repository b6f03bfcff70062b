package tmdb

// GenreList is the payload of GET /3/genre/movie/list.
type GenreList struct {
	Genres []Genre `json:"genres"`
}

// MovieSummary is a single entry of a discover page.
type MovieSummary struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"` // may be empty for unreleased movies
	VoteAverage float64 `json:"vote_average"`
}

// DiscoverResult is the payload of GET /3/discover/movie.
type DiscoverResult struct {
	Page         int            `json:"page"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
	Results      []MovieSummary `json:"results"`
}
