package web

import (
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli"
)

func newCLIContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range RegisterFlags(nil) {
		f.Apply(set)
	}
	if err := set.Parse(args); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return cli.NewContext(nil, set, nil)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	var got string
	r.GET("/", func(c *gin.Context) {
		got = NewContext(c).RequestID
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	if got == "" {
		t.Fatal("Expected generated request id")
	}
	if h := w.Header().Get(RequestIDHeader); h != got {
		t.Errorf("%s = %q, want %q", RequestIDHeader, h, got)
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	r.ServeHTTP(w, req)
	if got != "abc" {
		t.Errorf("RequestID = %q, want %q", got, "abc")
	}
}

func TestHelper(t *testing.T) {
	h := NewHelper(newCLIContext(t, "--site-name", "Films"))
	if h.SiteName() != "Films" {
		t.Errorf("SiteName() = %q", h.SiteName())
	}
	if got := h.Asset("style.css"); got != "/assets/style.css" {
		t.Errorf("Asset() = %q", got)
	}
	if h.CurrentYear() < 2024 {
		t.Errorf("CurrentYear() = %d", h.CurrentYear())
	}
}

func TestNew_ServesAssets(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "style.css"), []byte("body{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if _, err := New(newCLIContext(t, "--assets-path", dir), r); err != nil {
		t.Fatalf("New() error = %v", err)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/assets/style.css", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "body{}" {
		t.Errorf("body = %q", w.Body.String())
	}
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("Expected request id on asset response")
	}
}
