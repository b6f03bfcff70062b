package movie

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sourcegraph/conc/pool"
	mt "github.com/webtor-io/movie-ui/models/tmdb"
)

// Source looks up the raw payloads of a movie.
type Source interface {
	GetMovie(ctx context.Context, id int) (*mt.MovieMetadata, error)
	GetCredits(ctx context.Context, id int) (*mt.Credits, error)
	GetVideos(ctx context.Context, id int) (*mt.Videos, error)
	GetGenres(ctx context.Context) (*mt.GenreList, error)
	DiscoverByGenre(ctx context.Context, genreID int, page int) (*mt.DiscoverResult, error)
}

type Payload struct {
	Metadata *mt.MovieMetadata
	Credits  *mt.Credits
	Videos   *mt.Videos
}

type Fetcher struct {
	src Source
}

func NewFetcher(src Source) *Fetcher {
	return &Fetcher{
		src: src,
	}
}

// Fetch runs all three lookups concurrently. The first failure cancels the
// rest.
func (s *Fetcher) Fetch(ctx context.Context, id int) (*Payload, error) {
	pl := &Payload{}
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) (err error) {
		pl.Metadata, err = s.src.GetMovie(ctx, id)
		return errors.Wrap(err, "get movie")
	})
	p.Go(func(ctx context.Context) (err error) {
		pl.Credits, err = s.src.GetCredits(ctx, id)
		return errors.Wrap(err, "get credits")
	})
	p.Go(func(ctx context.Context) (err error) {
		pl.Videos, err = s.src.GetVideos(ctx, id)
		return errors.Wrap(err, "get videos")
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return pl, nil
}

// FetchCast skips the videos lookup.
func (s *Fetcher) FetchCast(ctx context.Context, id int) (*Payload, error) {
	pl := &Payload{}
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) (err error) {
		pl.Metadata, err = s.src.GetMovie(ctx, id)
		return errors.Wrap(err, "get movie")
	})
	p.Go(func(ctx context.Context) (err error) {
		pl.Credits, err = s.src.GetCredits(ctx, id)
		return errors.Wrap(err, "get credits")
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return pl, nil
}

type GenrePayload struct {
	Genres   *mt.GenreList
	Discover *mt.DiscoverResult
}

// FetchGenre looks up the genre names and one discover page together.
func (s *Fetcher) FetchGenre(ctx context.Context, genreID int, page int) (*GenrePayload, error) {
	pl := &GenrePayload{}
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) (err error) {
		pl.Genres, err = s.src.GetGenres(ctx)
		return errors.Wrap(err, "get genres")
	})
	p.Go(func(ctx context.Context) (err error) {
		pl.Discover, err = s.src.DiscoverByGenre(ctx, genreID, page)
		return errors.Wrap(err, "discover movies")
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return pl, nil
}
