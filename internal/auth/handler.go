package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gogevgelija/gogevgelija-backend/utils"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

func userPayload(u *User) gin.H {
	payload := gin.H{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
	}
	if u.Profile != nil {
		payload["language"] = u.Profile.Language
	}
	return payload
}

// respondServiceError maps auth service failures onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	var fields utils.FieldErrors
	switch {
	case errors.As(err, &fields):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
	case errors.Is(err, ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
	case errors.Is(err, ErrUserNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
	case errors.Is(err, ErrWrongPassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": "current password is incorrect"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// ===============================
// Registration
// ===============================

type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"ana"`
	Email    string `json:"email" binding:"omitempty,email" example:"ana@example.com"`
	Password string `json:"password" binding:"required" example:"secret12345"`
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": utils.BindingErrors(err)})
		return
	}

	tokens, user, err := h.service.Register(RegisterInput(req), c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":    userPayload(user),
		"access":  tokens.AccessToken,
		"refresh": tokens.RefreshToken,
	})
}

// ===============================
// Login
// ===============================

type loginReq struct {
	Username string `json:"username" binding:"required" example:"ana"`
	Password string `json:"password" binding:"required" example:"secret12345"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": utils.BindingErrors(err)})
		return
	}

	tokens, user, err := h.service.Login(LoginInput(req), c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    userPayload(user),
		"access":  tokens.AccessToken,
		"refresh": tokens.RefreshToken,
	})
}

// ===============================
// Refresh Token
// ===============================

type refreshReq struct {
	Refresh string `json:"refresh" binding:"required" example:"your_refresh_token_here"`
}

func (h *Handler) Refresh(c *gin.Context) {
	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": utils.BindingErrors(err)})
		return
	}

	tokens, err := h.service.Refresh(req.Refresh)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := gin.H{"access": tokens.AccessToken}
	if tokens.RefreshToken != "" {
		resp["refresh"] = tokens.RefreshToken
	}
	c.JSON(http.StatusOK, resp)
}

// ===============================
// Current user (me)
// ===============================

func (h *Handler) Me(c *gin.Context) {
	userID := c.GetUint("user_id")
	user, err := h.service.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, userPayload(&user))
}

type updateMeReq struct {
	Username        string `json:"username"`
	Language        string `json:"language" example:"mk"`
	NewPassword     string `json:"new_password"`
	CurrentPassword string `json:"current_password"`
}

func (h *Handler) UpdateMe(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req updateMeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": utils.BindingErrors(err)})
		return
	}

	user, err := h.service.UpdateMe(userID, UpdateMeInput(req))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, userPayload(user))
}
