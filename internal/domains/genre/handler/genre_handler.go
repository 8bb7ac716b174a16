package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-catalog/internal/domains/genre/model"
	"library-catalog/internal/domains/genre/service"
	"library-catalog/internal/shared/apperr"
)

type GenreHandler struct {
	service service.ServiceInterface
}

func NewGenreHandler(svc service.ServiceInterface) *GenreHandler {
	return &GenreHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /catalog/genres
// ════════════════════════════════════════════════════════════════

func (h *GenreHandler) List(c *gin.Context) {
	genres, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "genre_list", gin.H{
		"title":      "Genre List",
		"genre_list": genres,
	})
}

// ════════════════════════════════════════════════════════════════
// DETAIL: GET /catalog/genre/:id
// ════════════════════════════════════════════════════════════════

func (h *GenreHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(model.ErrGenreNotFound)
		return
	}

	genre, books, err := h.service.GetWithBooks(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "genre_detail", gin.H{
		"title":       "Genre Detail",
		"genre":       genre,
		"genre_books": books,
	})
}

// ════════════════════════════════════════════════════════════════
// CREATE: GET|POST /catalog/genre/create
// ════════════════════════════════════════════════════════════════

func (h *GenreHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "genre_form", gin.H{"title": "Create Genre"})
}

func (h *GenreHandler) Create(c *gin.Context) {
	var form model.GenreForm
	if err := c.ShouldBind(&form); err != nil {
		_ = c.Error(apperr.BadRequest("Invalid form submission", err))
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		c.HTML(http.StatusOK, "genre_form", gin.H{
			"title":  "Create Genre",
			"genre":  form,
			"errors": errs,
		})
		return
	}

	// An existing genre with the same name is returned instead of a new one
	genre, err := h.service.Create(c.Request.Context(), form.ToEntity())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, genre.URL())
}

// ════════════════════════════════════════════════════════════════
// DELETE: GET|POST /catalog/genre/:id/delete
// ════════════════════════════════════════════════════════════════

func (h *GenreHandler) DeleteForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, model.ListURL)
		return
	}

	genre, books, err := h.service.GetWithBooks(c.Request.Context(), id)
	if err != nil {
		if apperr.IsNotFound(err) {
			c.Redirect(http.StatusFound, model.ListURL)
			return
		}
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "genre_delete", gin.H{
		"title":       "Delete Genre",
		"genre":       genre,
		"genre_books": books,
	})
}

// Delete reads the id from the submitted form, not from the path.
func (h *GenreHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.PostForm("genreid"))
	if err != nil {
		c.Redirect(http.StatusFound, model.ListURL)
		return
	}

	genre, books, err := h.service.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, model.ErrGenreHasBooks):
		c.HTML(http.StatusOK, "genre_delete", gin.H{
			"title":       "Delete Genre",
			"genre":       genre,
			"genre_books": books,
		})
		return
	case apperr.IsNotFound(err):
		// already gone
	case err != nil:
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, model.ListURL)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: GET|POST /catalog/genre/:id/update
// ════════════════════════════════════════════════════════════════

func (h *GenreHandler) UpdateForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(model.ErrGenreNotFound)
		return
	}

	genre, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "genre_form", gin.H{
		"title": "Update Genre",
		"genre": genre,
	})
}

func (h *GenreHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(model.ErrGenreNotFound)
		return
	}

	var form model.GenreForm
	if err := c.ShouldBind(&form); err != nil {
		_ = c.Error(apperr.BadRequest("Invalid form submission", err))
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		c.HTML(http.StatusOK, "genre_form", gin.H{
			"title":  "Update Genre",
			"genre":  form,
			"errors": errs,
		})
		return
	}

	// When another genre owns the name the redirect goes there
	genre, err := h.service.Update(c.Request.Context(), id, form.ToEntity())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, genre.URL())
}

// ════════════════════════════════════════════════════════════════
// ROUTES REGISTRATION
// ════════════════════════════════════════════════════════════════

func (h *GenreHandler) RegisterRoutes(catalog *gin.RouterGroup) {
	catalog.GET("/genres", h.List)
	catalog.GET("/genre/create", h.CreateForm)
	catalog.POST("/genre/create", h.Create)
	catalog.GET("/genre/:id", h.Detail)
	catalog.GET("/genre/:id/delete", h.DeleteForm)
	catalog.POST("/genre/:id/delete", h.Delete)
	catalog.GET("/genre/:id/update", h.UpdateForm)
	catalog.POST("/genre/:id/update", h.Update)
}
