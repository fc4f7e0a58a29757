package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamzadaoud/rouge-perle-gestion/services/cafe"
	"github.com/hamzadaoud/rouge-perle-gestion/services/identity"
)

// ClearActivities wipes both audit collections. Admin only.
func ClearActivities(svc *cafe.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch err := svc.ClearAllActivities(); err {
		case nil:
			c.JSON(http.StatusOK, gin.H{"message": "Journal d'activités vidé"})
		case identity.ErrNotAuthenticated:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		case cafe.ErrNotAuthorized:
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear activities"})
		}
	}
}

// ClearAllData wipes orders, time logs and audit trails and restores
// the seed catalog. Admin only; the roster itself is never touched.
func ClearAllData(svc *cafe.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch err := svc.ClearAllSystemData(); err {
		case nil:
			c.JSON(http.StatusOK, gin.H{"message": "Données du système réinitialisées"})
		case identity.ErrNotAuthenticated:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		case cafe.ErrNotAuthorized:
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear system data"})
		}
	}
}
