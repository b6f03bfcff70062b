package movie

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/webtor-io/movie-ui/services/movie"
	"github.com/webtor-io/movie-ui/services/tmdb"
	"github.com/webtor-io/movie-ui/services/web"
)

// pageParam falls back to the first page on anything unparsable.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		return 1
	}
	return movie.ClampGenrePage(page)
}

func (s *Handler) getGenreViewModel(ctx context.Context, rawID string, page int) (*movie.GenreViewModel, error) {
	id, err := tmdb.ParseID(rawID)
	if err != nil {
		return nil, err
	}
	pl, err := s.f.FetchGenre(ctx, id, page)
	if err != nil {
		return nil, err
	}
	return movie.BuildGenre(id, pl.Genres, pl.Discover, s.images)
}

func (s *Handler) genre(c *gin.Context) {
	vm, err := s.getGenreViewModel(c.Request.Context(), c.Param("id"), pageParam(c))
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.tb.Build("movie/genre").HTML(http.StatusOK, web.NewContext(c).WithData(vm))
}

func (s *Handler) apiGenre(c *gin.Context) {
	vm, err := s.getGenreViewModel(c.Request.Context(), c.Param("id"), pageParam(c))
	if err != nil {
		s.renderJSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, vm)
}
