package wishlist

import (
	"errors"
	"net/http"

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

func respondError(c *gin.Context, err error, fallback string) {
	var fields utils.FieldErrors
	switch {
	case errors.As(err, &fields):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
	case errors.Is(err, ErrTargetNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found in wishlist"})
	case errors.Is(err, ErrAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func bindItemRequest(c *gin.Context) (*ItemRequest, bool) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": utils.BindingErrors(err)})
		return nil, false
	}
	return &req, true
}

// 📄 List Wishlist - GET /wishlist
func (h *Handler) List(c *gin.Context) {
	entries, err := h.Service.List(c.GetUint("user_id"), middleware.LangFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch wishlist"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// 🎯 Add to Wishlist - POST /wishlist
func (h *Handler) Add(c *gin.Context) {
	req, ok := bindItemRequest(c)
	if !ok {
		return
	}
	entry, err := h.Service.Add(c.GetUint("user_id"), req, middleware.LangFromContext(c), middleware.GetIPFromContext(c))
	if err != nil {
		respondError(c, err, "failed to add to wishlist")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ❌ Remove from Wishlist - POST /wishlist/remove
func (h *Handler) Remove(c *gin.Context) {
	req, ok := bindItemRequest(c)
	if !ok {
		return
	}
	if err := h.Service.Remove(c.GetUint("user_id"), req, middleware.GetIPFromContext(c)); err != nil {
		respondError(c, err, "failed to remove from wishlist")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
}

// 🔍 Check Wishlist - POST /wishlist/check
func (h *Handler) Check(c *gin.Context) {
	req, ok := bindItemRequest(c)
	if !ok {
		return
	}
	wishlisted, err := h.Service.Check(c.GetUint("user_id"), req)
	if err != nil {
		respondError(c, err, "failed to check wishlist")
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_wishlisted": wishlisted})
}
