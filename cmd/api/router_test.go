package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authorHandler "library-catalog/internal/domains/author/handler"
	genreHandler "library-catalog/internal/domains/genre/handler"
	"library-catalog/internal/shared/middleware"
	"library-catalog/internal/web"
	"library-catalog/pkg/container"
)

// newTestContainer wires the router without a database. Only routes that
// never reach a service are exercised here.
func newTestContainer(t *testing.T) *container.Container {
	t.Helper()

	tmpl, err := web.Templates()
	require.NoError(t, err)

	return &container.Container{
		Templates:     tmpl,
		AuthorHandler: authorHandler.NewAuthorHandler(nil),
		GenreHandler:  genreHandler.NewGenreHandler(nil),
	}
}

func serve(t *testing.T, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := SetupRouter(newTestContainer(t))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_RootRedirects(t *testing.T) {
	for _, path := range []string{"/", "/catalog"} {
		t.Run(path, func(t *testing.T) {
			w := serve(t, http.MethodGet, path)

			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, "/catalog/authors", w.Header().Get("Location"))
		})
	}
}

func TestRouter_HealthWithoutDatabase(t *testing.T) {
	w := serve(t, http.MethodGet, "/health")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, w.Body.String())
}

func TestRouter_MalformedIDRendersNotFoundPage(t *testing.T) {
	tests := []struct {
		path    string
		message string
	}{
		{"/catalog/author/not-a-uuid", "Author not found"},
		{"/catalog/genre/not-a-uuid", "Genre not found"},
		{"/catalog/genre/not-a-uuid/update", "Genre not found"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := serve(t, http.MethodGet, tt.path)

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
			assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
		})
	}
}

func TestRouter_AuthorUpdateStubs(t *testing.T) {
	w := serve(t, http.MethodGet, "/catalog/author/123/update")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "NOT IMPLEMENTED: Author update GET", w.Body.String())

	w = serve(t, http.MethodPost, "/catalog/author/123/update")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "NOT IMPLEMENTED: Author update POST", w.Body.String())
}
