package movie

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	trailerURL      = "https://www.youtube.com/watch"
	posterThumbSize = 58
)

type Helper struct{}

func NewHelper() *Helper {
	return &Helper{}
}

func (s *Helper) TrailerURL(key string) string {
	return trailerURL + "?v=" + url.QueryEscape(key)
}

func (s *Helper) GenreURL(id int) string {
	return fmt.Sprintf("/genre/%d", id)
}

func (s *Helper) GenrePageURL(id int, page int) string {
	return fmt.Sprintf("/genre/%d?page=%d", id, page)
}

func (s *Helper) MovieURL(id int) string {
	return fmt.Sprintf("/movie/%d", id)
}

func (s *Helper) CastURL(id int) string {
	return fmt.Sprintf("/movie/%d/cast", id)
}

func (s *Helper) PosterThumb(path string) string {
	return fmt.Sprintf("/poster/%d/%s", posterThumbSize*2, strings.TrimPrefix(path, "/"))
}

func (s *Helper) FormatVotes(n int) string {
	return humanize.Comma(int64(n))
}
