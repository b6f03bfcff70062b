package template

import (
	"html/template"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/yargevad/filepathx"
)

const (
	templatesPathFlag = "templates-path"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   templatesPathFlag,
			Usage:  "templates path",
			Value:  "./templates",
			EnvVar: "TEMPLATES_PATH",
		},
	)
}

func GetPath(c *cli.Context) string {
	return c.String(templatesPathFlag)
}

type Context interface {
	GetGinContext() *gin.Context
}

type Builder[T Context] interface {
	WithHelper(h any) Builder[T]
	WithLayout(name string) Builder[T]
	Build(name string) Template[T]
}

type Template[T Context] interface {
	HTML(code int, ctx T)
}

// Manager collects view registrations and parses them into the renderer on
// Init. Every exported method of a helper becomes a template function.
type Manager[T Context] struct {
	re       multitemplate.Renderer
	path     string
	helpers  []any
	builders []*builder[T]
	mux      sync.Mutex
}

func NewManager[T Context](re multitemplate.Renderer, path string) *Manager[T] {
	return &Manager[T]{
		re:   re,
		path: path,
	}
}

func (s *Manager[T]) WithHelper(h any) *Manager[T] {
	s.helpers = append(s.helpers, h)
	return s
}

func (s *Manager[T]) viewsPath() string {
	return filepath.Join(s.path, "views")
}

func (s *Manager[T]) viewName(file string) string {
	rel, err := filepath.Rel(s.viewsPath(), file)
	if err != nil {
		rel = filepath.Base(file)
	}
	return filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel)))
}

// MustRegisterViews panics if the pattern matches nothing.
func (s *Manager[T]) MustRegisterViews(pattern string) Builder[T] {
	files, err := filepathx.Glob(filepath.Join(s.viewsPath(), pattern+".html"))
	if err != nil {
		panic(errors.Wrapf(err, "glob views %v", pattern))
	}
	if len(files) == 0 {
		panic(errors.Errorf("no views found for %v in %v", pattern, s.viewsPath()))
	}
	views := map[string]string{}
	for _, f := range files {
		views[s.viewName(f)] = f
	}
	b := &builder[T]{
		views: views,
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	s.builders = append(s.builders, b)
	return b
}

func makeFuncs(helpers []any) template.FuncMap {
	funcs := template.FuncMap{}
	for _, h := range helpers {
		v := reflect.ValueOf(h)
		t := v.Type()
		for i := 0; i < t.NumMethod(); i++ {
			funcs[t.Method(i).Name] = v.Method(i).Interface()
		}
	}
	return funcs
}

func (s *Manager[T]) partials() ([]string, error) {
	return filepathx.Glob(filepath.Join(s.path, "partials", "**", "*.html"))
}

func (s *Manager[T]) Init() error {
	s.mux.Lock()
	defer s.mux.Unlock()
	partials, err := s.partials()
	if err != nil {
		return errors.Wrap(err, "glob partials")
	}
	for _, b := range s.builders {
		funcs := makeFuncs(append(append([]any{}, s.helpers...), b.helpers...))
		for name, file := range b.views {
			var files []string
			if b.layout != "" {
				files = append(files, filepath.Join(s.path, "layouts", b.layout+".html"))
			}
			files = append(files, file)
			files = append(files, partials...)
			t, err := template.New(filepath.Base(files[0])).Funcs(funcs).ParseFiles(files...)
			if err != nil {
				return errors.Wrapf(err, "parse view %v", name)
			}
			s.re.Add(b.key(name), t)
		}
		log.Infof("registered %d views with layout %q", len(b.views), b.layout)
	}
	return nil
}

type builder[T Context] struct {
	views   map[string]string
	layout  string
	helpers []any
}

func (s *builder[T]) key(name string) string {
	return s.layout + ":" + name
}

func (s *builder[T]) WithHelper(h any) Builder[T] {
	s.helpers = append(s.helpers, h)
	return s
}

func (s *builder[T]) WithLayout(name string) Builder[T] {
	s.layout = name
	return s
}

func (s *builder[T]) Build(name string) Template[T] {
	if _, ok := s.views[name]; !ok {
		log.Warnf("view %v is not registered", name)
	}
	return &view[T]{
		key: s.key(name),
	}
}

type view[T Context] struct {
	key string
}

func (s *view[T]) HTML(code int, ctx T) {
	ctx.GetGinContext().HTML(code, s.key, ctx)
}
