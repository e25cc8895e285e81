package event

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
	case errors.Is(err, ErrAlreadyJoined), errors.Is(err, ErrNotJoined):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func localizeAll(c *gin.Context, events []Event) []Response {
	lang := middleware.LangFromContext(c)
	out := make([]Response, 0, len(events))
	for i := range events {
		out = append(out, events[i].Localize(lang))
	}
	return out
}

// 📄 List Events - GET /events
func (h *Handler) List(c *gin.Context) {
	events, err := h.Service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch events"})
		return
	}
	c.JSON(http.StatusOK, localizeAll(c, events))
}

// ⭐ Featured Events - GET /events/featured
func (h *Handler) Featured(c *gin.Context) {
	events, err := h.Service.Featured()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch events"})
		return
	}
	c.JSON(http.StatusOK, localizeAll(c, events))
}

// 🔍 Get Event - GET /events/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.Service.GetByID(id)
	if err != nil {
		respondError(c, err, "failed to fetch event")
		return
	}
	c.JSON(http.StatusOK, m.Localize(middleware.LangFromContext(c)))
}

// 🎯 Create Event - POST /events
func (h *Handler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": utils.BindingErrors(err)})
		return
	}
	m, err := h.Service.Create(&req)
	if err != nil {
		respondError(c, err, "failed to create event")
		return
	}
	c.JSON(http.StatusCreated, m.Localize(middleware.LangFromContext(c)))
}

// 🛠 Update Event - PUT/PATCH /events/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": utils.BindingErrors(err)})
		return
	}
	m, err := h.Service.Update(id, &req)
	if err != nil {
		respondError(c, err, "failed to update event")
		return
	}
	c.JSON(http.StatusOK, m.Localize(middleware.LangFromContext(c)))
}

// ❌ Delete Event - DELETE /events/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Service.Delete(id); err != nil {
		respondError(c, err, "failed to delete event")
		return
	}
	c.Status(http.StatusNoContent)
}

// 🙋 Join Event - POST /events/:id/join
func (h *Handler) Join(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	userID := middleware.UserIDFromContext(c)
	m, err := h.Service.Join(id, userID, middleware.GetIPFromContext(c))
	if err != nil {
		respondError(c, err, "failed to join event")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Successfully joined the event!",
		"event":   m.Localize(middleware.LangFromContext(c)),
	})
}

// 🚪 Unjoin Event - POST /events/:id/unjoin
func (h *Handler) Unjoin(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	userID := middleware.UserIDFromContext(c)
	m, err := h.Service.Unjoin(id, userID, middleware.GetIPFromContext(c))
	if err != nil {
		respondError(c, err, "failed to leave event")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Successfully left the event!",
		"event":   m.Localize(middleware.LangFromContext(c)),
	})
}
