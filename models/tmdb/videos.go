package tmdb

type VideoType string

const (
	VideoTypeTrailer VideoType = "Trailer"
	VideoTypeTeaser  VideoType = "Teaser"
	VideoTypeClip    VideoType = "Clip"
)

func (t VideoType) String() string {
	return string(t)
}

type Video struct {
	Key  string    `json:"key"`
	Type VideoType `json:"type"`
	Site string    `json:"site"`
	Name string    `json:"name"`
}

// Videos is the payload of GET /3/movie/{id}/videos.
type Videos struct {
	ID      int     `json:"id"`
	Results []Video `json:"results"`
}
