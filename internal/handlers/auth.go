package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orchestrahub/orchestra-backend/internal/dto"
	"github.com/orchestrahub/orchestra-backend/internal/requestdata"
	"github.com/orchestrahub/orchestra-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in dto.CreateUserDto
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	user, err := h.authService.Register(c.Request.Context(), &in)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in dto.LoginDto
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	tokens, err := h.authService.Login(c.Request.Context(), &in)
	if err != nil {
		// Credential failures come back as not-found; report 401 either way.
		RespondError(c, http.StatusUnauthorized, "invalid_credentials", err)
		return
	}
	RespondOK(c, tokens)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var in dto.RefreshDto
	if err := c.ShouldBindJSON(&in); err != nil || in.RefreshToken == "" {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	tokens, err := h.authService.Refresh(c.Request.Context(), in.RefreshToken)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "invalid_refresh_token", err)
		return
	}
	RespondOK(c, tokens)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	if err := h.authService.Logout(c.Request.Context(), rd.UserID); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"logged_out": true})
}
