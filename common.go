package main

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli"
	"github.com/webtor-io/movie-ui/services/movie"
	sr "github.com/webtor-io/movie-ui/services/redis"
	"github.com/webtor-io/movie-ui/services/tmdb"
)

func configureFetcher(f []cli.Flag) []cli.Flag {
	f = tmdb.RegisterFlags(f)
	f = sr.RegisterFlags(f)
	return f
}

// makeFetcher wires the tmdb api with an optional redis-backed store.
func makeFetcher(c *cli.Context, cl *http.Client, rc *redis.Client) (*movie.Fetcher, error) {
	var store tmdb.Store
	if rc != nil {
		store = tmdb.NewRedisStore(rc)
	}

	// Setting TMDB API
	api, err := tmdb.New(c, cl, store)
	if err != nil {
		return nil, err
	}
	if api == nil {
		return nil, errors.New("tmdb api key is not set")
	}

	// Setting Fetcher
	return movie.NewFetcher(api), nil
}
