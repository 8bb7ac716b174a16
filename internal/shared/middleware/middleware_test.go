package middleware_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/shared/apperr"
	"library-catalog/internal/shared/middleware"
	"library-catalog/internal/testutil/htmltest"
)

func newEngine(handler gin.HandlerFunc) (*gin.Engine, *htmltest.Recorder) {
	gin.SetMode(gin.TestMode)

	rec := &htmltest.Recorder{}
	engine := gin.New()
	engine.HTMLRender = rec
	engine.Use(middleware.RequestID(), middleware.Logger(), middleware.Recovery(), middleware.ErrorHandler())
	engine.GET("/", handler)
	return engine, rec
}

func do(engine *gin.Engine, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestErrorHandler(t *testing.T) {
	notFound := apperr.NotFound("Author")

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not_found", notFound, http.StatusNotFound, "Author not found"},
		{"wrapped_not_found", fmt.Errorf("lookup: %w", notFound), http.StatusNotFound, "Author not found"},
		{"bad_request", apperr.BadRequest("Invalid form submission", nil), http.StatusBadRequest, "Invalid form submission"},
		{"store_failure", errors.New("pq: connection refused"), http.StatusInternalServerError, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, rec := newEngine(func(c *gin.Context) {
				_ = c.Error(tt.err)
			})

			w := do(engine, nil)

			assert.Equal(t, tt.status, w.Code)
			call := rec.Last()
			assert.Equal(t, "error", call.Name)
			assert.Equal(t, tt.message, call.Data["message"])
			assert.Equal(t, tt.status, call.Data["status"])
		})
	}
}

func TestErrorHandler_KeepsWrittenResponse(t *testing.T) {
	engine, rec := newEngine(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/catalog/authors")
		_ = c.Error(errors.New("late failure"))
	})

	w := do(engine, nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Empty(t, rec.Calls())
}

func TestErrorHandler_NoError(t *testing.T) {
	engine, rec := newEngine(func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := do(engine, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, rec.Calls())
}

func TestRecovery(t *testing.T) {
	engine, rec := newEngine(func(c *gin.Context) {
		panic("boom")
	})

	w := do(engine, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Len(t, rec.Calls(), 1)
	assert.Equal(t, "error", rec.Last().Name)
}

func TestRequestID(t *testing.T) {
	var seen string
	engine, _ := newEngine(func(c *gin.Context) {
		seen = c.GetString("request_id")
		c.Status(http.StatusNoContent)
	})

	t.Run("generated", func(t *testing.T) {
		w := do(engine, nil)

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(middleware.HeaderRequestID))
	})

	t.Run("propagated", func(t *testing.T) {
		w := do(engine, http.Header{middleware.HeaderRequestID: {"req-123"}})

		assert.Equal(t, "req-123", seen)
		assert.Equal(t, "req-123", w.Header().Get(middleware.HeaderRequestID))
	})
}
