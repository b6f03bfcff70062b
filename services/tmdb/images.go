package tmdb

import (
	"strings"

	"github.com/urfave/cli"
)

const (
	imageBaseURLFlag = "tmdb-image-base-url"
)

const (
	SizeProfile  = "w300"
	SizeThumb    = "w300"
	SizePoster   = "w500"
	SizeBackdrop = "w1920_and_h1080_multi_faces"
	SizeOriginal = "original"
)

const PlaceholderProfile = "/assets/no-profile.svg"

func RegisterImageFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   imageBaseURLFlag,
			Usage:  "tmdb image hosting base url",
			EnvVar: "TMDB_IMAGE_BASE_URL",
			Value:  "https://image.tmdb.org/t/p",
		},
	)
}

// Images builds image hosting urls from tmdb resource paths.
type Images struct {
	BaseURL string
}

func NewImages(c *cli.Context) Images {
	return Images{
		BaseURL: c.String(imageBaseURLFlag),
	}
}

func (s Images) URL(size string, path string) string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return ""
	}
	return strings.TrimSuffix(s.BaseURL, "/") + "/" + size + "/" + path
}

func (s Images) PosterURL(path string) string {
	return s.URL(SizePoster, path)
}

func (s Images) ThumbURL(path string) string {
	return s.URL(SizeThumb, path)
}

func (s Images) BackdropURL(path string) string {
	return s.URL(SizeBackdrop, path)
}

func (s Images) OriginalURL(path string) string {
	return s.URL(SizeOriginal, path)
}

// ProfileURL falls back to PlaceholderProfile for people without a photo.
func (s Images) ProfileURL(path *string) string {
	if path == nil {
		return PlaceholderProfile
	}
	if u := s.URL(SizeProfile, *path); u != "" {
		return u
	}
	return PlaceholderProfile
}
