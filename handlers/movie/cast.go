package movie

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webtor-io/movie-ui/services/movie"
	"github.com/webtor-io/movie-ui/services/tmdb"
	"github.com/webtor-io/movie-ui/services/web"
)

func (s *Handler) getCastViewModel(ctx context.Context, rawID string) (*movie.CastViewModel, error) {
	id, err := tmdb.ParseID(rawID)
	if err != nil {
		return nil, err
	}
	pl, err := s.f.FetchCast(ctx, id)
	if err != nil {
		return nil, err
	}
	return movie.BuildCast(pl.Metadata, pl.Credits, s.images)
}

func (s *Handler) cast(c *gin.Context) {
	vm, err := s.getCastViewModel(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.tb.Build("movie/cast").HTML(http.StatusOK, web.NewContext(c).WithData(vm))
}

func (s *Handler) apiCast(c *gin.Context) {
	vm, err := s.getCastViewModel(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.renderJSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, vm)
}
