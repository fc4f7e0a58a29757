package timelogController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamzadaoud/rouge-perle-gestion/services/cafe"
	"github.com/hamzadaoud/rouge-perle-gestion/services/identity"
)

// ClockIn opens a work session for the current user. While one is
// already open today the existing record comes back unchanged.
func ClockIn(svc *cafe.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		entry, err := svc.ClockIn()
		switch err {
		case nil:
			c.JSON(http.StatusOK, entry)
		case identity.ErrNotAuthenticated:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clock in"})
		}
	}
}

// ClockOut closes today's open record.
func ClockOut(svc *cafe.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		entry, err := svc.ClockOut()
		switch err {
		case nil:
			c.JSON(http.StatusOK, entry)
		case identity.ErrNotAuthenticated:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		case cafe.ErrNoOpenTimeLog:
			c.JSON(http.StatusNotFound, gin.H{"error": "Aucun pointage en cours aujourd'hui"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clock out"})
		}
	}
}

// GetTimeLogs returns the full time ledger, oldest first.
func GetTimeLogs(svc *cafe.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logs, err := svc.TimeLogs()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch time logs"})
			return
		}
		c.JSON(http.StatusOK, logs)
	}
}
