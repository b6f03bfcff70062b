package movie

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webtor-io/movie-ui/services/movie"
	"github.com/webtor-io/movie-ui/services/tmdb"
	"github.com/webtor-io/movie-ui/services/web"
)

func (s *Handler) getViewModel(ctx context.Context, rawID string) (*movie.ViewModel, error) {
	id, err := tmdb.ParseID(rawID)
	if err != nil {
		return nil, err
	}
	pl, err := s.f.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	return movie.Build(pl.Metadata, pl.Credits, pl.Videos, s.images, s.opts)
}

func (s *Handler) index(c *gin.Context) {
	vm, err := s.getViewModel(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.tb.Build("movie/index").HTML(http.StatusOK, web.NewContext(c).WithData(vm))
}

func (s *Handler) apiIndex(c *gin.Context) {
	vm, err := s.getViewModel(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.renderJSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, vm)
}
