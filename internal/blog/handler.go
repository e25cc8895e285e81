package blog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gogevgelija/gogevgelija-backend/middleware"
	"github.com/gogevgelija/gogevgelija-backend/utils"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}

func respondError(c *gin.Context, err error, fallback string) {
	var fields utils.FieldErrors
	switch {
	case errors.As(err, &fields):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func localizeAll(c *gin.Context, blogs []Blog) []Response {
	lang := middleware.LangFromContext(c)
	out := make([]Response, 0, len(blogs))
	for i := range blogs {
		out = append(out, blogs[i].Localize(lang))
	}
	return out
}

// 📄 List Blogs - GET /blogs
func (h *Handler) List(c *gin.Context) {
	blogs, err := h.Service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch blogs"})
		return
	}
	c.JSON(http.StatusOK, localizeAll(c, blogs))
}

// ⭐ Featured Blogs - GET /blogs/featured
func (h *Handler) Featured(c *gin.Context) {
	blogs, err := h.Service.Featured()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch blogs"})
		return
	}
	c.JSON(http.StatusOK, localizeAll(c, blogs))
}

// 🔍 Get Blog - GET /blogs/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.Service.GetByID(id)
	if err != nil {
		respondError(c, err, "failed to fetch blog")
		return
	}
	c.JSON(http.StatusOK, m.Localize(middleware.LangFromContext(c)))
}

// 🎯 Create Blog - POST /blogs
func (h *Handler) Create(c *gin.Context) {
	var req CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": utils.BindingErrors(err)})
		return
	}
	m, err := h.Service.Create(&req)
	if err != nil {
		respondError(c, err, "failed to create blog")
		return
	}
	c.JSON(http.StatusCreated, m.Localize(middleware.LangFromContext(c)))
}

// 🛠 Update Blog - PUT/PATCH /blogs/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": utils.BindingErrors(err)})
		return
	}
	m, err := h.Service.Update(id, &req)
	if err != nil {
		respondError(c, err, "failed to update blog")
		return
	}
	c.JSON(http.StatusOK, m.Localize(middleware.LangFromContext(c)))
}

// ❌ Delete Blog - DELETE /blogs/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Service.Delete(id); err != nil {
		respondError(c, err, "failed to delete blog")
		return
	}
	c.Status(http.StatusNoContent)
}
