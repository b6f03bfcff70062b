package index

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webtor-io/movie-ui/services/template"
	"github.com/webtor-io/movie-ui/services/tmdb"
	"github.com/webtor-io/movie-ui/services/web"
)

type Handler struct {
	tb template.Builder[*web.Context]
}

func RegisterHandler(r *gin.Engine, tm *template.Manager[*web.Context]) {
	h := &Handler{
		tb: tm.MustRegisterViews("index").WithLayout("main"),
	}
	r.GET("/", h.index)
}

func (s *Handler) index(c *gin.Context) {
	if q := c.Query("id"); q != "" {
		if id, err := tmdb.ParseID(q); err == nil {
			c.Redirect(http.StatusFound, fmt.Sprintf("/movie/%d", id))
			return
		}
	}
	s.tb.Build("index").HTML(http.StatusOK, web.NewContext(c))
}
