package ecommerce_routes

import (
	"github.com/gin-gonic/gin"

	store_order "github.com/Lumiere-Jewelry/lumiere-storefront-backend/controllers/ecommerce/order_controller"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/middleware"
)

func SetupUserRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/orders", store_order.GetUserOrders)
	}
}
