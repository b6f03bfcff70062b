package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"
	"github.com/urfave/cli"
	wi "github.com/webtor-io/movie-ui/handlers/index"
	wm "github.com/webtor-io/movie-ui/handlers/movie"
	wp "github.com/webtor-io/movie-ui/handlers/poster"
	"github.com/webtor-io/movie-ui/handlers/sitemap"
	"github.com/webtor-io/movie-ui/services/poster"
	sr "github.com/webtor-io/movie-ui/services/redis"
	"github.com/webtor-io/movie-ui/services/template"
	"github.com/webtor-io/movie-ui/services/tmdb"
	w "github.com/webtor-io/movie-ui/services/web"
)

func makeServeCMD() cli.Command {
	serveCMD := cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serves web server",
		Action:  serve,
	}
	configureServe(&serveCMD)
	return serveCMD
}

func configureServe(c *cli.Command) {
	c.Flags = w.RegisterFlags(c.Flags)
	c.Flags = template.RegisterFlags(c.Flags)
	c.Flags = wm.RegisterFlags(c.Flags)
	c.Flags = sitemap.RegisterFlags(c.Flags)
	c.Flags = configureFetcher(c.Flags)
}

func serve(c *cli.Context) error {
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

	// Setting Images
	images := tmdb.NewImages(c)

	// Setting template renderer
	re := multitemplate.NewRenderer()

	// Setting TemplateManager
	tm := template.NewManager[*w.Context](re, template.GetPath(c)).
		WithHelper(w.NewHelper(c))

	// Setting Gin
	r := gin.Default()
	r.RedirectTrailingSlash = false
	r.HTMLRender = re

	// Setting Web
	web, err := w.New(c, r)
	if err != nil {
		return err
	}
	defer web.Close()

	// Setting IndexHandler
	wi.RegisterHandler(r, tm)

	// Setting MovieHandler
	wm.RegisterHandler(r, tm, f, images, wm.GetOptions(c))

	// Setting PosterHandler
	wp.RegisterHandler(r, poster.New(cl, images))

	// Setting Sitemap
	sitemap.RegisterHandler(c, r)

	// Render templates
	err = tm.Init()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// And SERVE!
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		return web.Serve()
	})
	p.Go(func(ctx context.Context) error {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return web.Shutdown(sctx)
	})
	err = p.Wait()
	if err != nil {
		log.WithError(err).Error("got server error")
	}
	return err
}
