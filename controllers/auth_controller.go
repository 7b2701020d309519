package controllers

import (
	"errors"
	"net/http"

	"github.com/Richiez14/Upiksugbox/pkg/resp"
	"github.com/Richiez14/Upiksugbox/services"

	"github.com/gin-gonic/gin"
)

// No binding:required here: a missing credential is just a failed login,
// same as a wrong one.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	Username        string `json:"username" binding:"required"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type AuthController struct {
	svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{svc: svc}
}

// POST /api/admin/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.svc.Login(req.Username, req.Password)
	if err != nil {
		resp.Unauthorized(c, "Invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    gin.H{"username": user.Username, "role": user.Role},
	})
}

// POST /api/admin/change-password
func (a *AuthController) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := a.svc.ChangePassword(req.Username, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, "Invalid current password")
			return
		}
		resp.ServerError(c, "Failed to change password")
		return
	}

	resp.Success(c)
}
