package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-catalog/internal/domains/author/model"
	"library-catalog/internal/domains/author/service"
	"library-catalog/internal/shared/apperr"
)

type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /catalog/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "author_list", gin.H{
		"title":       "Author List",
		"author_list": authors,
	})
}

// ════════════════════════════════════════════════════════════════
// DETAIL: GET /catalog/author/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(model.ErrAuthorNotFound)
		return
	}

	author, books, err := h.service.GetWithBooks(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "author_detail", gin.H{
		"title":        "Author Detail",
		"author":       author,
		"author_books": books,
	})
}

// ════════════════════════════════════════════════════════════════
// CREATE: GET|POST /catalog/author/create
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "author_form", gin.H{"title": "Create Author"})
}

func (h *AuthorHandler) Create(c *gin.Context) {
	var form model.AuthorForm
	if err := c.ShouldBind(&form); err != nil {
		_ = c.Error(apperr.BadRequest("Invalid form submission", err))
		return
	}

	// Re-render with the sanitized values and every message; the store is not touched
	if errs := form.Validate(); len(errs) > 0 {
		c.HTML(http.StatusOK, "author_form", gin.H{
			"title":  "Create Author",
			"author": form,
			"errors": errs,
		})
		return
	}

	newAuthor, err := form.ToEntity()
	if err != nil {
		_ = c.Error(apperr.BadRequest("Invalid form submission", err))
		return
	}

	created, err := h.service.Create(c.Request.Context(), newAuthor)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, created.URL())
}

// ════════════════════════════════════════════════════════════════
// DELETE: GET|POST /catalog/author/:id/delete
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) DeleteForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, model.ListURL)
		return
	}

	author, books, err := h.service.GetForDelete(c.Request.Context(), id)
	if err != nil {
		if apperr.IsNotFound(err) {
			c.Redirect(http.StatusFound, model.ListURL)
			return
		}
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "author_delete", gin.H{
		"title":        "Delete Author",
		"author":       author,
		"author_books": books,
	})
}

// Delete reads the id from the submitted form, not from the path.
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.PostForm("authorid"))
	if err != nil {
		c.Redirect(http.StatusFound, model.ListURL)
		return
	}

	author, books, err := h.service.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, model.ErrAuthorHasBooks):
		c.HTML(http.StatusOK, "author_delete", gin.H{
			"title":        "Delete Author",
			"author":       author,
			"author_books": books,
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
// UPDATE: GET|POST /catalog/author/:id/update
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) UpdateForm(c *gin.Context) {
	c.String(http.StatusOK, "NOT IMPLEMENTED: Author update GET")
}

func (h *AuthorHandler) Update(c *gin.Context) {
	c.String(http.StatusOK, "NOT IMPLEMENTED: Author update POST")
}

// ════════════════════════════════════════════════════════════════
// ROUTES REGISTRATION
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) RegisterRoutes(catalog *gin.RouterGroup) {
	catalog.GET("/authors", h.List)
	catalog.GET("/author/create", h.CreateForm)
	catalog.POST("/author/create", h.Create)
	catalog.GET("/author/:id", h.Detail)
	catalog.GET("/author/:id/delete", h.DeleteForm)
	catalog.POST("/author/:id/delete", h.Delete)
	catalog.GET("/author/:id/update", h.UpdateForm)
	catalog.POST("/author/:id/update", h.Update)
}
