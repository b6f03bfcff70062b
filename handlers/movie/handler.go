package movie

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/urfave/cli"
	"github.com/webtor-io/movie-ui/services/movie"
	"github.com/webtor-io/movie-ui/services/template"
	"github.com/webtor-io/movie-ui/services/tmdb"
	"github.com/webtor-io/movie-ui/services/web"
)

const (
	requireDirectorFlag = "movie-require-director"
	requireTrailerFlag  = "movie-require-trailer"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.BoolTFlag{
			Name:   requireDirectorFlag,
			Usage:  "fail rendering movies without a director",
			EnvVar: "MOVIE_REQUIRE_DIRECTOR",
		},
		cli.BoolFlag{
			Name:   requireTrailerFlag,
			Usage:  "fail rendering movies without a trailer",
			EnvVar: "MOVIE_REQUIRE_TRAILER",
		},
	)
}

func GetOptions(c *cli.Context) movie.Options {
	return movie.Options{
		AllowMissingDirector: !c.BoolT(requireDirectorFlag),
		AllowMissingTrailer:  !c.Bool(requireTrailerFlag),
	}
}

type Handler struct {
	tb     template.Builder[*web.Context]
	f      *movie.Fetcher
	images tmdb.Images
	opts   movie.Options
}

func RegisterHandler(r *gin.Engine, tm *template.Manager[*web.Context], f *movie.Fetcher, images tmdb.Images, opts movie.Options) {
	h := &Handler{
		tb:     tm.MustRegisterViews("movie/*").WithHelper(NewHelper()).WithLayout("main"),
		f:      f,
		images: images,
		opts:   opts,
	}
	r.GET("/movie/:id", h.index)
	r.GET("/movie/:id/cast", h.cast)
	r.GET("/genre/:id", h.genre)

	gr := r.Group("/api")
	gr.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET"},
	}))
	gr.GET("/movie/:id", h.apiIndex)
	gr.GET("/movie/:id/cast", h.apiCast)
	gr.GET("/genre/:id", h.apiGenre)
}
