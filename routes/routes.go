package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hamzadaoud/rouge-perle-gestion/services/cafe"
	"github.com/hamzadaoud/rouge-perle-gestion/services/identity"
)

// SetupRoutes is the single entry-point that wires up the public,
// agent and admin route groups.
func SetupRoutes(r *gin.Engine, id *identity.Service, svc *cafe.Service) {
	// 1️⃣ Public auth routes (no middleware)
	SetupAuthRoutes(r, id)

	// 2️⃣ Agent routes (JWT-protected)
	SetupAgentRoutes(r, id, svc)

	// 3️⃣ Admin routes (JWT + role-protected)
	SetupAdminRoutes(r, id, svc)
}
