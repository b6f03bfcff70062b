package web

import (
	"time"

	"github.com/urfave/cli"
)

type Helper struct {
	siteName  string
	assetsURL string
}

func NewHelper(c *cli.Context) *Helper {
	return &Helper{
		siteName:  c.String(siteNameFlag),
		assetsURL: assetsURL,
	}
}

func (s *Helper) SiteName() string {
	return s.siteName
}

func (s *Helper) Asset(path string) string {
	return s.assetsURL + "/" + path
}

func (s *Helper) CurrentYear() int {
	return time.Now().Year()
}
