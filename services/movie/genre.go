package movie

import (
	"github.com/pkg/errors"
	mt "github.com/webtor-io/movie-ui/models/tmdb"
	"github.com/webtor-io/movie-ui/services/tmdb"
)

// MaxGenrePage is the last discover page tmdb serves.
const MaxGenrePage = 500

type MovieCard struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ReleaseYear string `json:"release_year"`
	PosterURL   string `json:"poster_url"`
	Rating      string `json:"rating"`
}

// GenreViewModel backs the genre listing linked from movie pages.
type GenreViewModel struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	Page         int         `json:"page"`
	TotalPages   int         `json:"total_pages"`
	TotalResults int         `json:"total_results"`
	Movies       []MovieCard `json:"movies"`
}

func (s *GenreViewModel) HasPrev() bool {
	return s.Page > 1
}

func (s *GenreViewModel) HasNext() bool {
	return s.Page < s.TotalPages
}

func (s *GenreViewModel) PrevPage() int {
	return s.Page - 1
}

func (s *GenreViewModel) NextPage() int {
	return s.Page + 1
}

// ClampGenrePage keeps page within 1..MaxGenrePage.
func ClampGenrePage(page int) int {
	if page < 1 {
		return 1
	}
	if page > MaxGenrePage {
		return MaxGenrePage
	}
	return page
}

// BuildGenre fails with ErrUnknownGenre if id is not among the listed genres.
// Movies without a usable release date get an empty year.
func BuildGenre(id int, gl *mt.GenreList, d *mt.DiscoverResult, im tmdb.Images) (*GenreViewModel, error) {
	if gl == nil || d == nil {
		return nil, errors.New("genre payload is incomplete")
	}
	name := ""
	for _, g := range gl.Genres {
		if g.ID == id {
			name = g.Name
			break
		}
	}
	if name == "" {
		return nil, errors.Wrapf(ErrUnknownGenre, "%d", id)
	}
	movies := make([]MovieCard, 0, len(d.Results))
	for _, m := range d.Results {
		year, _, err := SplitReleaseDate(m.ReleaseDate)
		if err != nil {
			year = ""
		}
		movies = append(movies, MovieCard{
			ID:          m.ID,
			Title:       m.Title,
			ReleaseYear: year,
			PosterURL:   im.ThumbURL(m.PosterPath),
			Rating:      FormatRating(m.VoteAverage),
		})
	}
	total := d.TotalPages
	if total > MaxGenrePage {
		total = MaxGenrePage
	}
	return &GenreViewModel{
		ID:           id,
		Name:         name,
		Page:         d.Page,
		TotalPages:   total,
		TotalResults: d.TotalResults,
		Movies:       movies,
	}, nil
}
