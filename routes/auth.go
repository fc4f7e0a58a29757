package routes

import (
	"github.com/gin-gonic/gin"

	authController "github.com/hamzadaoud/rouge-perle-gestion/controllers/auth"
	"github.com/hamzadaoud/rouge-perle-gestion/services/identity"
)

// SetupAuthRoutes registers the public authentication endpoints.
func SetupAuthRoutes(r *gin.Engine, id *identity.Service) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", authController.Login(id))
		authGroup.POST("/logout", authController.Logout(id))
		authGroup.GET("/me", authController.Me(id))
	}
}
