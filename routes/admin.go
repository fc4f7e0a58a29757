package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/hamzadaoud/rouge-perle-gestion/controllers/admin"
	authController "github.com/hamzadaoud/rouge-perle-gestion/controllers/auth"
	catalogcontroller "github.com/hamzadaoud/rouge-perle-gestion/controllers/catalog"
	orderControllers "github.com/hamzadaoud/rouge-perle-gestion/controllers/order"
	reportcontroller "github.com/hamzadaoud/rouge-perle-gestion/controllers/report"
	"github.com/hamzadaoud/rouge-perle-gestion/middleware"
	"github.com/hamzadaoud/rouge-perle-gestion/services/cafe"
	"github.com/hamzadaoud/rouge-perle-gestion/services/identity"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a valid
// token carrying the admin role.
func SetupAdminRoutes(r *gin.Engine, id *identity.Service, svc *cafe.Service) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ─────────── Staff & Audit ───────────
		adminGroup.GET("/users", authController.GetUsers(id))
		adminGroup.GET("/activities", authController.GetActivities(id))
		adminGroup.GET("/login-activities", authController.GetLoginActivities(id))

		// ─────────── Catalog Management ───────────
		drinkAdmin := adminGroup.Group("/drinks")
		{
			drinkAdmin.POST("", catalogcontroller.CreateDrink(svc))
			drinkAdmin.PUT("/:id", catalogcontroller.UpdateDrink(svc))
			drinkAdmin.GET("", catalogcontroller.GetDrinks(svc))
			drinkAdmin.DELETE("/:id", catalogcontroller.DeleteDrink(svc))
		}

		// ─────────── Reports & Documents ───────────
		adminGroup.GET("/revenues", reportcontroller.GetRevenues(svc))
		adminGroup.GET("/top-products", reportcontroller.GetTopProducts(svc))
		adminGroup.GET("/reports/revenue", reportcontroller.PrintRevenueReport(svc))
		adminGroup.GET("/reports/revenue/export-excel", reportcontroller.ExportRevenueToExcel(svc))
		adminGroup.GET("/orders/:id/invoice", orderControllers.PrintInvoice(svc))

		// ─────────── Bulk Maintenance ───────────
		adminGroup.POST("/clear-activities", adminController.ClearActivities(svc))
		adminGroup.POST("/clear-all", adminController.ClearAllData(svc))
	}
}
