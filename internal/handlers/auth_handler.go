package handlers

import (
	"net/http"

	"terek_backend/internal/services"
	"terek_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	identityService services.IdentityService
}

func NewAuthHandler(base *BaseHandler, identityService services.IdentityService) *AuthHandler {
	return &AuthHandler{
		BaseHandler:     base,
		identityService: identityService,
	}
}

// Register creates an account. When the email belongs to a guest account
// the account is upgraded in place and keeps its donations.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.identityService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.identityService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout is stateless; tokens expire on their own. The endpoint exists so
// clients have a uniform place to end a session.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
