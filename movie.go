package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	wm "github.com/webtor-io/movie-ui/handlers/movie"
	"github.com/webtor-io/movie-ui/services/movie"
	sr "github.com/webtor-io/movie-ui/services/redis"
	"github.com/webtor-io/movie-ui/services/tmdb"
)

func makeMovieCMD() cli.Command {
	movieCMD := cli.Command{
		Name:    "movie",
		Aliases: []string{"m"},
		Usage:   "Prints movie view-model as json",
		Action:  printMovie,
	}
	configureMovie(&movieCMD)
	return movieCMD
}

func configureMovie(c *cli.Command) {
	c.Flags = append(c.Flags,
		cli.StringFlag{
			Name:  "id",
			Usage: "tmdb movie id",
		},
		cli.BoolFlag{
			Name:  "cast",
			Usage: "print full cast & crew instead",
		},
	)
	c.Flags = wm.RegisterFlags(c.Flags)
	c.Flags = configureFetcher(c.Flags)
}

func printMovie(c *cli.Context) error {
	id, err := tmdb.ParseID(c.String("id"))
	if err != nil {
		return err
	}

	// Setting HTTP Client
	cl := &http.Client{
		Timeout: 30 * time.Second,
	}

	// Setting Redis
	rc := sr.New(c)
	if rc != nil {
		defer func() {
			_ = rc.Close()
		}()
	}

	// Setting Fetcher
	f, err := makeFetcher(c, cl, rc)
	if err != nil {
		return err
	}
	images := tmdb.NewImages(c)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var vm any
	if c.Bool("cast") {
		pl, err := f.FetchCast(ctx, id)
		if err != nil {
			return err
		}
		vm, err = movie.BuildCast(pl.Metadata, pl.Credits, images)
		if err != nil {
			return err
		}
	} else {
		pl, err := f.Fetch(ctx, id)
		if err != nil {
			return err
		}
		vm, err = movie.Build(pl.Metadata, pl.Credits, pl.Videos, images, wm.GetOptions(c))
		if err != nil {
			return err
		}
	}
	b, err := json.MarshalIndent(vm, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode view-model")
	}
	fmt.Println(string(b))
	return nil
}
