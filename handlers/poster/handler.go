package poster

import (
	"crypto/sha256"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/webtor-io/movie-ui/services/poster"
	"github.com/webtor-io/movie-ui/services/web"
)

type Handler struct {
	p *poster.Poster
}

func RegisterHandler(r *gin.Engine, p *poster.Poster) {
	h := &Handler{
		p: p,
	}
	r.GET("/poster/:width/*path", h.poster)
}

type Args struct {
	width int
	path  string
}

func (s *Handler) bindArgs(c *gin.Context) (*Args, error) {
	width, err := strconv.Atoi(c.Param("width"))
	if err != nil {
		return nil, errors.Errorf("wrong width %v", c.Param("width"))
	}
	path := c.Param("path")
	if path == "" || path == "/" {
		return nil, errors.New("empty image path")
	}
	return &Args{
		width: width,
		path:  path,
	}, nil
}

func (s *Handler) poster(c *gin.Context) {
	args, err := s.bindArgs(c)
	if err != nil {
		web.Logger(c).WithError(err).Error("failed to bind poster args")
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	b, err := s.p.Get(c.Request.Context(), args.width, args.path)
	if errors.Is(err, poster.ErrWrongWidth) {
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}
	if err != nil {
		web.Logger(c).WithError(err).Error("failed to get resized image")
		_ = c.AbortWithError(http.StatusBadGateway, err)
		return
	}

	etag := s.generateETag(b)

	if match := c.Request.Header.Get("If-None-Match"); match != "" && match == etag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Header("ETag", etag)
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/jpeg", b)
}

func (s *Handler) generateETag(data []byte) string {
	sum := sha256.Sum256(data)
	return fmt.Sprintf(`"%x"`, sum[:])
}
