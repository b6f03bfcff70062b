package poster

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/webtor-io/lazymap"
	"github.com/webtor-io/movie-ui/services/tmdb"
)

const (
	JPEGQuality = 85
	MaxWidth    = 1920
)

// CacheCapacity bounds the number of resized images kept in memory.
const CacheCapacity = 500

var ErrWrongWidth = errors.New("wrong width")

// Poster downloads original tmdb images and serves them resized.
type Poster struct {
	cl     *http.Client
	images tmdb.Images
	cache  *lazymap.LazyMap[[]byte]
}

func New(cl *http.Client, images tmdb.Images) *Poster {
	return &Poster{
		cl:     cl,
		images: images,
		cache:  lazymap.New[[]byte](cacheConfig()),
	}
}

func cacheConfig() *lazymap.Config {
	return &lazymap.Config{
		Expire:   time.Hour,
		Capacity: CacheCapacity,
	}
}

// Get returns a JPEG of the image at path resized to width, keeping the
// aspect ratio.
func (s *Poster) Get(ctx context.Context, width int, path string) ([]byte, error) {
	if width < 1 || width > MaxWidth {
		return nil, errors.Wrapf(ErrWrongWidth, "%d", width)
	}
	path = "/" + strings.TrimPrefix(path, "/")
	key := fmt.Sprintf("%d%s", width, path)
	return s.cache.Get(key, func() ([]byte, error) {
		return s.resize(ctx, width, path)
	})
}

func (s *Poster) resize(ctx context.Context, width int, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", s.images.OriginalURL(path), nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	resp, err := s.cl.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	srcImg, err := imaging.Decode(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "decode image")
	}

	resized := imaging.Resize(srcImg, width, 0, imaging.Lanczos)

	var buf bytes.Buffer
	err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: JPEGQuality})
	if err != nil {
		return nil, errors.Wrap(err, "encode jpeg")
	}
	return buf.Bytes(), nil
}
