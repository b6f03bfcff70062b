package web

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	webHostFlag    = "host"
	webPortFlag    = "port"
	assetsPathFlag = "assets-path"
	siteNameFlag   = "site-name"
)

const assetsURL = "/assets"

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   webHostFlag,
			Usage:  "listening host",
			Value:  "",
			EnvVar: "WEB_HOST",
		},
		cli.IntFlag{
			Name:   webPortFlag,
			Usage:  "http listening port",
			Value:  8080,
			EnvVar: "WEB_PORT",
		},
		cli.StringFlag{
			Name:   assetsPathFlag,
			Usage:  "static assets path",
			Value:  "./assets",
			EnvVar: "WEB_ASSETS_PATH",
		},
		cli.StringFlag{
			Name:   siteNameFlag,
			Usage:  "site name",
			Value:  "Movies",
			EnvVar: "SITE_NAME",
		},
	)
}

type Web struct {
	host string
	port int
	srv  *http.Server
}

func New(c *cli.Context, r *gin.Engine) (*Web, error) {
	r.Use(RequestID())
	r.Static(assetsURL, c.String(assetsPathFlag))
	return &Web{
		host: c.String(webHostFlag),
		port: c.Int(webPortFlag),
		srv: &http.Server{
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

func (s *Web) Serve() error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrap(err, "failed to web listen to tcp connection")
	}
	log.Infof("serving Web at %v", addr)
	err = s.srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Web) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Web) Close() {
	log.Info("closing Web")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("failed to shutdown Web")
	}
}
