package sitemap

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli"
)

const (
	domainFlag        = "domain"
	sitemapMoviesFlag = "sitemap-movies"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   domainFlag,
			Usage:  "domain",
			Value:  "http://localhost:8080",
			EnvVar: "DOMAIN",
		},
		cli.IntSliceFlag{
			Name:   sitemapMoviesFlag,
			Usage:  "tmdb movie ids listed in sitemap",
			EnvVar: "SITEMAP_MOVIES",
		},
	)
}

type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

type Handler struct {
	baseURL string
	movies  []int
}

func RegisterHandler(c *cli.Context, r *gin.Engine) {
	h := &Handler{
		baseURL: strings.TrimSuffix(c.String(domainFlag), "/"),
		movies:  c.IntSlice(sitemapMoviesFlag),
	}
	r.GET("/sitemap.xml", h.sitemap)
}

func (h *Handler) sitemap(c *gin.Context) {
	now := time.Now().Format("2006-01-02")

	urls := []URL{
		{
			Loc:        h.baseURL + "/",
			LastMod:    now,
			ChangeFreq: "daily",
			Priority:   "1.0",
		},
	}

	for _, id := range h.movies {
		if id <= 0 {
			continue
		}
		urls = append(urls,
			URL{
				Loc:        fmt.Sprintf("%v/movie/%d", h.baseURL, id),
				LastMod:    now,
				ChangeFreq: "weekly",
				Priority:   "0.8",
			},
			URL{
				Loc:        fmt.Sprintf("%v/movie/%d/cast", h.baseURL, id),
				LastMod:    now,
				ChangeFreq: "weekly",
				Priority:   "0.5",
			},
		)
	}

	urlSet := URLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Header("Content-Type", "application/xml")
	c.XML(http.StatusOK, urlSet)
}
