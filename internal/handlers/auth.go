package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sneha051188/employee-management-system/internal/dto"
	"github.com/Sneha051188/employee-management-system/internal/services"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

// Signup answers 400 with {message} for any rejected signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupDto
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input"})
		return
	}

	resp, err := h.Auth.Signup(c.Request.Context(), req)
	if err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginDto
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": services.MsgInvalidCredentials})
		return
	}

	resp, err := h.Auth.Login(c.Request.Context(), req)
	if err != nil {
		h.fail(c, http.StatusUnauthorized, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) fail(c *gin.Context, status int, err error) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		c.JSON(status, gin.H{"message": svcErr.Message})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}
