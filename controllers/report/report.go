package reportcontroller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamzadaoud/rouge-perle-gestion/services/cafe"
	"github.com/hamzadaoud/rouge-perle-gestion/ticket"
)

// GetRevenues returns per-day revenue, most recent day first.
func GetRevenues(svc *cafe.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		revenues, err := svc.Revenues()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute revenues"})
			return
		}
		c.JSON(http.StatusOK, revenues)
	}
}

// GetTopProducts returns the best sellers, highest quantity first.
func GetTopProducts(svc *cafe.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.TopSellingProducts()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute top products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// PrintRevenueReport serves the self-printing revenue report for an
// inclusive day range; absent bounds are open-ended.
func PrintRevenueReport(svc *cafe.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		from := c.Query("from")
		to := c.Query("to")

		revenues, err := svc.RevenuesBetween(from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute revenues"})
			return
		}

		html, err := ticket.RenderRevenueReport(periodLabel(from, to), revenues)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de générer le rapport. Veuillez réessayer."})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
	}
}

func periodLabel(from, to string) string {
	switch {
	case from != "" && to != "":
		return fmt.Sprintf("du %s au %s", from, to)
	case from != "":
		return fmt.Sprintf("depuis le %s", from)
	case to != "":
		return fmt.Sprintf("jusqu'au %s", to)
	default:
		return "toutes périodes"
	}
}
