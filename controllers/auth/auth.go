package authController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamzadaoud/rouge-perle-gestion/middleware"
	"github.com/hamzadaoud/rouge-perle-gestion/services/identity"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates against the roster and issues a token. Unknown
// email and wrong password get the same generic message.
func Login(id *identity.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}

		user, err := id.Authenticate(req.Email, req.Password)
		if err == identity.ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants invalides"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
			return
		}

		token, err := middleware.GenerateToken(*user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}

// Logout clears the session snapshot.
func Logout(id *identity.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := id.Logout(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// Me returns the current session snapshot.
func Me(id *identity.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := id.CurrentUser()
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// GetUsers lists the fixed staff roster.
func GetUsers(id *identity.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, id.Users())
	}
}

// GetActivities returns the audit trail, oldest first.
func GetActivities(id *identity.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, id.Activities())
	}
}

// GetLoginActivities returns the login audit trail, oldest first.
func GetLoginActivities(id *identity.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, id.LoginActivities())
	}
}
