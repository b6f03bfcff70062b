package movie

import (
	"github.com/pkg/errors"
	mt "github.com/webtor-io/movie-ui/models/tmdb"
	"github.com/webtor-io/movie-ui/services/tmdb"
)

const TopBilledCastSize = 10

type CastMember struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Character  string `json:"character"`
	ProfileURL string `json:"profile_url"`
}

type GenreLink struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Separator string `json:"-"`
}

// ViewModel is everything the movie page displays.
type ViewModel struct {
	ID                   int          `json:"id"`
	Title                string       `json:"title"`
	Tagline              string       `json:"tagline"`
	Overview             string       `json:"overview"`
	ReleaseYear          string       `json:"release_year"`
	FormattedReleaseDate string       `json:"formatted_release_date"`
	GenreNames           string       `json:"genre_names"`
	Genres               []GenreLink  `json:"genres"`
	FormattedRuntime     string       `json:"formatted_runtime"`
	Rating               string       `json:"rating"`
	VoteCount            int          `json:"vote_count"`
	Director             string       `json:"director"`
	TrailerKey           string       `json:"trailer_key"`
	PosterURL            string       `json:"poster_url"`
	BackdropURL          string       `json:"backdrop_url"`
	TopBilledCast        []CastMember `json:"top_billed_cast"`
	CastCount            int          `json:"cast_count"`
}

func (s *ViewModel) HasDirector() bool {
	return s.Director != ""
}

func (s *ViewModel) HasTrailer() bool {
	return s.TrailerKey != ""
}

// Options selects how missing data is treated. The zero value fails on a
// missing director or trailer.
type Options struct {
	AllowMissingDirector bool
	AllowMissingTrailer  bool
}

func FindDirector(crew []mt.Person) (string, error) {
	for _, p := range crew {
		if p.Job == mt.JobDirector {
			return p.Name, nil
		}
	}
	return "", ErrMissingDirector
}

func FindTrailerKey(videos []mt.Video) (string, error) {
	for _, v := range videos {
		if v.Type == mt.VideoTypeTrailer {
			return v.Key, nil
		}
	}
	return "", ErrMissingTrailer
}

func makeCastMember(p mt.Person, im tmdb.Images) CastMember {
	return CastMember{
		ID:         p.ID,
		Name:       p.Name,
		Character:  p.Character,
		ProfileURL: im.ProfileURL(p.ProfilePath),
	}
}

func makeGenreLinks(genres []mt.Genre) []GenreLink {
	links := make([]GenreLink, 0, len(genres))
	for i, g := range genres {
		l := GenreLink{ID: g.ID, Name: g.Name}
		if i != len(genres)-1 {
			l.Separator = ","
		}
		links = append(links, l)
	}
	return links
}

// Build derives the movie page view-model. Inputs are never modified.
func Build(md *mt.MovieMetadata, cr *mt.Credits, vs *mt.Videos, im tmdb.Images, opts Options) (*ViewModel, error) {
	if md == nil || cr == nil || vs == nil {
		return nil, errors.New("movie payload is incomplete")
	}
	year, released, err := SplitReleaseDate(md.ReleaseDate)
	if err != nil {
		return nil, err
	}
	if md.Runtime < 0 {
		return nil, errors.Wrapf(ErrNegativeRuntime, "%d", md.Runtime)
	}
	director, err := FindDirector(cr.Crew)
	if err != nil && !opts.AllowMissingDirector {
		return nil, errors.Wrapf(err, "movie %d", md.ID)
	}
	trailer, err := FindTrailerKey(vs.Results)
	if err != nil && !opts.AllowMissingTrailer {
		return nil, errors.Wrapf(err, "movie %d", md.ID)
	}

	n := len(cr.Cast)
	if n > TopBilledCastSize {
		n = TopBilledCastSize
	}
	cast := make([]CastMember, 0, n)
	for _, p := range cr.Cast[:n] {
		cast = append(cast, makeCastMember(p, im))
	}

	return &ViewModel{
		ID:                   md.ID,
		Title:                md.Title,
		Tagline:              md.Tagline,
		Overview:             md.Overview,
		ReleaseYear:          year,
		FormattedReleaseDate: released,
		GenreNames:           JoinGenreNames(md.Genres),
		Genres:               makeGenreLinks(md.Genres),
		FormattedRuntime:     FormatRuntime(md.Runtime),
		Rating:               FormatRating(md.VoteAverage),
		VoteCount:            md.VoteCount,
		Director:             director,
		TrailerKey:           trailer,
		PosterURL:            im.PosterURL(md.PosterPath),
		BackdropURL:          im.BackdropURL(md.BackdropPath),
		TopBilledCast:        cast,
		CastCount:            len(cr.Cast),
	}, nil
}
