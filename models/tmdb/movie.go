package tmdb

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieMetadata is the payload of GET /3/movie/{id}.
type MovieMetadata struct {
	ID           int     `json:"id"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	Title        string  `json:"title"`
	ReleaseDate  string  `json:"release_date"` // YYYY-MM-DD
	Genres       []Genre `json:"genres"`
	Runtime      int     `json:"runtime"` // minutes
	Tagline      string  `json:"tagline"`
	Overview     string  `json:"overview"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
}
