package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/controllers/cms/analytics_controller"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")
	{
		analytics.GET("/products", analytics_controller.GetProductAnalytics)
		analytics.GET("/top-products", analytics_controller.GetTopProducts)
		analytics.GET("/monthly-revenue", analytics_controller.GetMonthlyRevenue)
		analytics.POST("/profit", analytics_controller.CalculateProfit)
		analytics.GET("/profit/last", analytics_controller.GetLastProfit)
	}
}
