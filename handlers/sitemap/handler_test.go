package sitemap

import (
	"encoding/xml"
	"flag"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli"
)

func TestSitemap(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range RegisterFlags(nil) {
		f.Apply(set)
	}
	if err := set.Parse([]string{"--domain", "https://movies.example/", "--sitemap-movies", "550", "--sitemap-movies", "-3"}); err != nil {
		t.Fatal(err)
	}
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterHandler(cli.NewContext(nil, set, nil), r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/sitemap.xml", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var us URLSet
	if err := xml.Unmarshal(w.Body.Bytes(), &us); err != nil {
		t.Fatalf("xml.Unmarshal() error = %v", err)
	}
	want := []string{
		"https://movies.example/",
		"https://movies.example/movie/550",
		"https://movies.example/movie/550/cast",
	}
	if len(us.URLs) != len(want) {
		t.Fatalf("len(URLs) = %d, want %d", len(us.URLs), len(want))
	}
	for i, u := range us.URLs {
		if u.Loc != want[i] {
			t.Errorf("URLs[%d].Loc = %q, want %q", i, u.Loc, want[i])
		}
	}
}
