package movie

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/webtor-io/movie-ui/services/movie"
	"github.com/webtor-io/movie-ui/services/tmdb"
	"github.com/webtor-io/movie-ui/services/web"
)

type ErrorData struct {
	Status  int
	Message string
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, tmdb.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, tmdb.ErrNotFound), errors.Is(err, movie.ErrUnknownGenre):
		return http.StatusNotFound
	case movie.IsMissingData(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

func errorMessage(err error, status int) string {
	switch {
	case errors.Is(err, movie.ErrMissingDirector):
		return "This movie has no director listed."
	case errors.Is(err, movie.ErrMissingTrailer):
		return "This movie has no trailer."
	case errors.Is(err, movie.ErrMalformedDate):
		return "This movie has no valid release date."
	case errors.Is(err, movie.ErrUnknownGenre):
		return "Genre not found."
	case status == http.StatusBadRequest:
		return "Wrong id."
	case status == http.StatusNotFound:
		return "Movie not found."
	case status == http.StatusUnprocessableEntity:
		return "Movie details are incomplete."
	default:
		return "Movie database is unavailable, try again later."
	}
}

func (s *Handler) logError(c *gin.Context, err error, status int) {
	l := web.Logger(c).WithError(err)
	if status >= http.StatusInternalServerError {
		l.Error("failed to render movie")
	} else {
		l.Warn("failed to render movie")
	}
}

func (s *Handler) renderError(c *gin.Context, err error) {
	status := errorStatus(err)
	s.logError(c, err, status)
	s.tb.Build("movie/error").HTML(status, web.NewContext(c).WithErr(err).WithData(&ErrorData{
		Status:  status,
		Message: errorMessage(err, status),
	}))
}

func (s *Handler) renderJSONError(c *gin.Context, err error) {
	status := errorStatus(err)
	s.logError(c, err, status)
	c.JSON(status, gin.H{
		"error": errorMessage(err, status),
	})
}
