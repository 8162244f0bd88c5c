// File: handlers/admin.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
	adminSvc "github.com/clicksalesmedia/clicksalesmedia-sub003/services/admin"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/utils"
)

// AdminHandler serves dashboard authentication.
type AdminHandler struct {
	Auth   adminSvc.AuthService
	Logger *zap.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(auth adminSvc.AuthService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Auth: auth, Logger: logger}
}

// Login authenticates an admin and returns a bearer token.
// POST /api/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	token, err := h.Auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, adminSvc.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "login failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout revokes the signed-in admin's token.
// POST /api/admin/logout
func (h *AdminHandler) Logout(c *gin.Context) {
	adminID := c.GetString("adminID")
	if adminID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "not signed in", "")
		return
	}

	if err := h.Auth.Revoke(c.Request.Context(), adminID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "logout failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"revoked": true})
}
