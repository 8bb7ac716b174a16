// Package htmltest drives gin handlers in tests without real templates. The
// Recorder stands in for the HTML renderer and keeps every template name and
// data bag a handler rendered.
package htmltest

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"library-catalog/internal/shared/middleware"
)

// Call is one render: the template name and its data bag.
type Call struct {
	Name string
	Data gin.H
}

// Recorder implements render.HTMLRender. The response body is the template
// name.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

func (r *Recorder) Instance(name string, data any) render.Render {
	bag, _ := data.(gin.H)

	r.mu.Lock()
	r.calls = append(r.calls, Call{Name: name, Data: bag})
	r.mu.Unlock()

	return render.Data{
		ContentType: "text/html; charset=utf-8",
		Data:        []byte(name),
	}
}

// Calls returns every render so far.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Last returns the latest render, or a zero Call when nothing was rendered.
func (r *Recorder) Last() Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return Call{}
	}
	return r.calls[len(r.calls)-1]
}

// Router is a test engine with the error handler installed and the catalog
// routes registered under /catalog.
type Router struct {
	Engine   *gin.Engine
	Renderer *Recorder
}

func NewRouter(register ...func(*gin.RouterGroup)) *Router {
	gin.SetMode(gin.TestMode)

	rec := &Recorder{}
	engine := gin.New()
	engine.HTMLRender = rec
	engine.Use(middleware.ErrorHandler())

	catalog := engine.Group("/catalog")
	for _, fn := range register {
		fn(catalog)
	}

	return &Router{Engine: engine, Renderer: rec}
}

func (r *Router) Get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.Engine.ServeHTTP(w, req)
	return w
}

// PostForm submits form as application/x-www-form-urlencoded.
func (r *Router) PostForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.Engine.ServeHTTP(w, req)
	return w
}
