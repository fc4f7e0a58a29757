package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamzadaoud/rouge-perle-gestion/models"
	"github.com/hamzadaoud/rouge-perle-gestion/services/cafe"
	"github.com/hamzadaoud/rouge-perle-gestion/services/identity"
	"github.com/hamzadaoud/rouge-perle-gestion/ticket"
)

type CreateOrderRequest struct {
	Items []models.OrderItem `json:"items" binding:"required"`
}

// CreateOrder submits the in-memory cart as one immutable ledger entry
// and broadcasts it to connected dashboards.
func CreateOrder(svc *cafe.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "items are required"})
			return
		}

		order, err := svc.CreateOrder(req.Items)
		switch err {
		case nil:
		case identity.ErrNotAuthenticated:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
			return
		case cafe.ErrEmptyOrder:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order has no items"})
			return
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		broadcastNewOrder(*order)
		c.JSON(http.StatusCreated, order)
	}
}

// GetOrders returns the full order ledger, oldest first.
func GetOrders(svc *cafe.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.Orders()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PrintTicket serves the self-printing receipt for one order.
func PrintTicket(svc *cafe.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		order := findOrder(svc, c)
		if order == nil {
			return
		}
		html, err := ticket.RenderTicket(*order)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de générer le ticket. Veuillez réessayer."})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
	}
}

// PrintInvoice serves the self-printing admin invoice for one order.
func PrintInvoice(svc *cafe.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		order := findOrder(svc, c)
		if order == nil {
			return
		}
		html, err := ticket.RenderInvoice(*order)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de générer la facture. Veuillez réessayer."})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
	}
}

// findOrder resolves the :id param and writes the error response
// itself when the order cannot be served.
func findOrder(svc *cafe.Service, c *gin.Context) *models.Order {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order ID is required"})
		return nil
	}
	order, err := svc.Order(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		return nil
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return nil
	}
	return order
}
