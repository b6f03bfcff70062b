package movie

import (
	"github.com/pkg/errors"
	mt "github.com/webtor-io/movie-ui/models/tmdb"
	"github.com/webtor-io/movie-ui/services/tmdb"
)

type CrewMember struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
	ProfileURL string `json:"profile_url"`
}

// CastViewModel backs the full cast & crew page.
type CastViewModel struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	ReleaseYear string       `json:"release_year"`
	PosterURL   string       `json:"poster_url"`
	PosterPath  string       `json:"-"`
	Cast        []CastMember `json:"cast"`
	Crew        []CrewMember `json:"crew"`
	CastCount   int          `json:"cast_count"`
	CrewCount   int          `json:"crew_count"`
}

func BuildCast(md *mt.MovieMetadata, cr *mt.Credits, im tmdb.Images) (*CastViewModel, error) {
	if md == nil || cr == nil {
		return nil, errors.New("movie payload is incomplete")
	}
	year, _, err := SplitReleaseDate(md.ReleaseDate)
	if err != nil {
		return nil, err
	}
	cast := make([]CastMember, 0, len(cr.Cast))
	for _, p := range cr.Cast {
		cast = append(cast, makeCastMember(p, im))
	}
	crew := make([]CrewMember, 0, len(cr.Crew))
	for _, p := range cr.Crew {
		crew = append(crew, CrewMember{
			ID:         p.ID,
			Name:       p.Name,
			Job:        p.Job,
			Department: p.Department,
			ProfileURL: im.ProfileURL(p.ProfilePath),
		})
	}
	return &CastViewModel{
		ID:          md.ID,
		Title:       md.Title,
		ReleaseYear: year,
		PosterURL:   im.ThumbURL(md.PosterPath),
		PosterPath:  md.PosterPath,
		Cast:        cast,
		Crew:        crew,
		CastCount:   len(cast),
		CrewCount:   len(crew),
	}, nil
}
