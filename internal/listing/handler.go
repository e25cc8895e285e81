package listing

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

func localizeAll(c *gin.Context, listings []Listing) []Response {
	lang := middleware.LangFromContext(c)
	out := make([]Response, 0, len(listings))
	for i := range listings {
		out = append(out, listings[i].Localize(lang))
	}
	return out
}

// 📄 List Listings - GET /listings
func (h *Handler) List(c *gin.Context) {
	listings, err := h.Service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch listings"})
		return
	}
	c.JSON(http.StatusOK, localizeAll(c, listings))
}

// ⭐ Featured Listings - GET /listings/featured
func (h *Handler) Featured(c *gin.Context) {
	listings, err := h.Service.Featured()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch listings"})
		return
	}
	c.JSON(http.StatusOK, localizeAll(c, listings))
}

// 🔍 Get Listing - GET /listings/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.Service.GetByID(id)
	if err != nil {
		respondError(c, err, "failed to fetch listing")
		return
	}
	c.JSON(http.StatusOK, m.Localize(middleware.LangFromContext(c)))
}

// 🎯 Create Listing - POST /listings
func (h *Handler) Create(c *gin.Context) {
	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": utils.BindingErrors(err)})
		return
	}
	m, err := h.Service.Create(&req)
	if err != nil {
		respondError(c, err, "failed to create listing")
		return
	}
	c.JSON(http.StatusCreated, m.Localize(middleware.LangFromContext(c)))
}

// 🛠 Update Listing - PUT/PATCH /listings/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": utils.BindingErrors(err)})
		return
	}
	m, err := h.Service.Update(id, &req)
	if err != nil {
		respondError(c, err, "failed to update listing")
		return
	}
	c.JSON(http.StatusOK, m.Localize(middleware.LangFromContext(c)))
}

// ❌ Delete Listing - DELETE /listings/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Service.Delete(id); err != nil {
		respondError(c, err, "failed to delete listing")
		return
	}
	c.Status(http.StatusNoContent)
}
