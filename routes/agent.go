package routes

import (
	"github.com/gin-gonic/gin"

	catalogcontroller "github.com/hamzadaoud/rouge-perle-gestion/controllers/catalog"
	orderControllers "github.com/hamzadaoud/rouge-perle-gestion/controllers/order"
	timelogController "github.com/hamzadaoud/rouge-perle-gestion/controllers/timelog"
	"github.com/hamzadaoud/rouge-perle-gestion/middleware"
	"github.com/hamzadaoud/rouge-perle-gestion/services/cafe"
	"github.com/hamzadaoud/rouge-perle-gestion/services/identity"
)

// SetupAgentRoutes registers every endpoint an agent needs at the
// register: the catalog, order taking, tickets and the time clock.
func SetupAgentRoutes(r *gin.Engine, id *identity.Service, svc *cafe.Service) {
	agentGroup := r.Group("/")
	agentGroup.Use(middleware.ValidateToken)
	{
		agentGroup.GET("/drinks", catalogcontroller.GetDrinks(svc))

		orderGroup := agentGroup.Group("/orders")
		{
			orderGroup.POST("", orderControllers.CreateOrder(svc))
			orderGroup.GET("", orderControllers.GetOrders(svc))
			orderGroup.GET("/:id/ticket", orderControllers.PrintTicket(svc))
		}

		timelogGroup := agentGroup.Group("/timelogs")
		{
			timelogGroup.POST("/clock-in", timelogController.ClockIn(svc))
			timelogGroup.POST("/clock-out", timelogController.ClockOut(svc))
			timelogGroup.GET("", timelogController.GetTimeLogs(svc))
		}
	}

	// Dashboard live feed; the upgrade request carries no auth header.
	r.GET("/ws/orders", orderControllers.OrderWebSocketHandler)
}
