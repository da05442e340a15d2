package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"clinicore/authentication"
	"clinicore/models"
	"clinicore/store"
)

// Logging a user in and issuing a token
func (h *Handler) Login(c *gin.Context) {
	var creds struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&creds); err != nil {
		bindingError(c, err)
		return
	}
	user, err := h.store.Authenticate(creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "Failed",
				"message": "Invalid credentials",
			})
			return
		}
		h.fail(c, err)
		return
	}
	token, err := authentication.GenerateToken(h.config.JWTSecret, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// Registering a staff login
func (h *Handler) AddUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		bindingError(c, err)
		return
	}
	if err := h.store.CreateUser(&user); err != nil {
		h.fail(c, err)
		return
	}
	user.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "User added successfully",
		"data":    user,
	})
}
