package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/webtor-io/lazymap"
	mt "github.com/webtor-io/movie-ui/models/tmdb"
	"golang.org/x/text/language"
)

const (
	tmdbApiKeyFlag      = "tmdb-api-key"
	tmdbApiHostFlag     = "tmdb-api-host"
	tmdbApiPortFlag     = "tmdb-api-port"
	tmdbApiSecureFlag   = "tmdb-api-secure"
	tmdbLanguageFlag    = "tmdb-language"
	tmdbCacheExpireFlag = "tmdb-cache-expire"
)

var (
	ErrNotFound     = errors.New("movie not found")
	ErrUnauthorized = errors.New("tmdb api key is invalid")
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	f = append(f,
		cli.StringFlag{
			Name:   tmdbApiHostFlag,
			Usage:  "tmdb api host",
			EnvVar: "TMDB_API_HOST",
			Value:  "api.themoviedb.org",
		},
		cli.IntFlag{
			Name:   tmdbApiPortFlag,
			Usage:  "tmdb api port",
			EnvVar: "TMDB_API_PORT",
			Value:  443,
		},
		cli.BoolTFlag{
			Name:   tmdbApiSecureFlag,
			Usage:  "tmdb api secure (https)",
			EnvVar: "TMDB_API_SECURE",
		},
		cli.StringFlag{
			Name:   tmdbApiKeyFlag,
			Usage:  "tmdb api key",
			Value:  "",
			EnvVar: "TMDB_API_KEY",
		},
		cli.StringFlag{
			Name:   tmdbLanguageFlag,
			Usage:  "tmdb response language (BCP 47)",
			Value:  "en-US",
			EnvVar: "TMDB_LANGUAGE",
		},
		cli.DurationFlag{
			Name:   tmdbCacheExpireFlag,
			Usage:  "tmdb response cache expiration",
			Value:  10 * time.Minute,
			EnvVar: "TMDB_CACHE_EXPIRE",
		},
	)
	return RegisterImageFlags(f)
}

type Config struct {
	URL         string
	Key         string
	Language    string
	CacheExpire time.Duration
}

type Api struct {
	url            string
	lang           string
	expire         time.Duration
	cl             *http.Client
	store          Store
	prepareRequest func(r *http.Request) (*http.Request, error)
	movies         *lazymap.LazyMap[*mt.MovieMetadata]
	credits        *lazymap.LazyMap[*mt.Credits]
	videos         *lazymap.LazyMap[*mt.Videos]
	genres         *lazymap.LazyMap[*mt.GenreList]
	discover       *lazymap.LazyMap[*mt.DiscoverResult]
}

// New returns nil if no api key is configured. Store is optional.
func New(c *cli.Context, cl *http.Client, store Store) (*Api, error) {
	key := c.String(tmdbApiKeyFlag)
	if key == "" {
		return nil, nil
	}
	protocol := "http"
	if c.BoolT(tmdbApiSecureFlag) {
		protocol = "https"
	}
	return NewApi(&Config{
		URL:         fmt.Sprintf("%v://%v:%v", protocol, c.String(tmdbApiHostFlag), c.Int(tmdbApiPortFlag)),
		Key:         key,
		Language:    c.String(tmdbLanguageFlag),
		CacheExpire: c.Duration(tmdbCacheExpireFlag),
	}, cl, store)
}

func NewApi(cfg *Config, cl *http.Client, store Store) (*Api, error) {
	tag, err := language.Parse(cfg.Language)
	if err != nil {
		return nil, errors.Wrapf(err, "parse tmdb language %q", cfg.Language)
	}
	expire := cfg.CacheExpire
	if expire <= 0 {
		expire = 10 * time.Minute
	}
	key := cfg.Key
	prepareRequest := func(r *http.Request) (*http.Request, error) {
		q := r.URL.Query()
		q.Set("api_key", key)
		r.URL.RawQuery = q.Encode()
		r.Header.Set("Accept", "application/json")
		return r, nil
	}
	// Failed lookups are not kept, so a canceled request never poisons the
	// next one.
	lc := func() *lazymap.Config {
		return &lazymap.Config{
			Expire:   expire,
			Capacity: 1000,
		}
	}
	log.Infof("tmdb api endpoint %v language %v", cfg.URL, tag)
	return &Api{
		url:            cfg.URL,
		lang:           tag.String(),
		expire:         expire,
		cl:             cl,
		store:          store,
		prepareRequest: prepareRequest,
		movies:         lazymap.New[*mt.MovieMetadata](lc()),
		credits:        lazymap.New[*mt.Credits](lc()),
		videos:         lazymap.New[*mt.Videos](lc()),
		genres:         lazymap.New[*mt.GenreList](lc()),
		discover:       lazymap.New[*mt.DiscoverResult](lc()),
	}, nil
}

func (api *Api) GetMovie(ctx context.Context, id int) (*mt.MovieMetadata, error) {
	path := fmt.Sprintf("/3/movie/%d", id)
	return api.movies.Get(path, func() (*mt.MovieMetadata, error) {
		var m mt.MovieMetadata
		if err := api.get(ctx, path, &m); err != nil {
			return nil, err
		}
		return &m, nil
	})
}

func (api *Api) GetCredits(ctx context.Context, id int) (*mt.Credits, error) {
	path := fmt.Sprintf("/3/movie/%d/credits", id)
	return api.credits.Get(path, func() (*mt.Credits, error) {
		var m mt.Credits
		if err := api.get(ctx, path, &m); err != nil {
			return nil, err
		}
		return &m, nil
	})
}

func (api *Api) GetVideos(ctx context.Context, id int) (*mt.Videos, error) {
	path := fmt.Sprintf("/3/movie/%d/videos", id)
	return api.videos.Get(path, func() (*mt.Videos, error) {
		var m mt.Videos
		if err := api.get(ctx, path, &m); err != nil {
			return nil, err
		}
		return &m, nil
	})
}

func (api *Api) GetGenres(ctx context.Context) (*mt.GenreList, error) {
	path := "/3/genre/movie/list"
	return api.genres.Get(path, func() (*mt.GenreList, error) {
		var m mt.GenreList
		if err := api.get(ctx, path, &m); err != nil {
			return nil, err
		}
		return &m, nil
	})
}

// DiscoverByGenre lists movies of a genre, most popular first. Pages start
// at 1.
func (api *Api) DiscoverByGenre(ctx context.Context, genreID int, page int) (*mt.DiscoverResult, error) {
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("with_genres", strconv.Itoa(genreID))
	q.Set("sort_by", "popularity.desc")
	q.Set("page", strconv.Itoa(page))
	path := "/3/discover/movie?" + q.Encode()
	return api.discover.Get(path, func() (*mt.DiscoverResult, error) {
		var m mt.DiscoverResult
		if err := api.get(ctx, path, &m); err != nil {
			return nil, err
		}
		return &m, nil
	})
}

func (api *Api) storeKey(path string) string {
	return api.lang + path
}

func (api *Api) get(ctx context.Context, path string, out any) error {
	if api.store != nil {
		b, err := api.store.Get(ctx, api.storeKey(path))
		if err != nil {
			log.WithError(err).Warnf("failed to read %v from store", path)
		} else if b != nil {
			return errors.Wrap(json.Unmarshal(b, out), "decode stored response")
		}
	}
	b, err := api.fetch(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return errors.Wrap(err, "decode response")
	}
	if api.store != nil {
		if err := api.store.Set(ctx, api.storeKey(path), b, api.expire); err != nil {
			log.WithError(err).Warnf("failed to write %v to store", path)
		}
	}
	return nil
}

func (api *Api) fetch(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", api.url+path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	q := req.URL.Query()
	q.Set("language", api.lang)
	req.URL.RawQuery = q.Encode()

	req, err = api.prepareRequest(req)
	if err != nil {
		return nil, errors.Wrap(err, "prepare request")
	}

	resp, err := api.cl.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, errors.Wrap(ErrNotFound, path)
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, errors.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}
	return b, nil
}
