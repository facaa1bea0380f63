package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/controllers/cms/order_controller"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	order := rg.Group("/orders")
	{
		order.GET("", order_controller.GetOrders)
		order.GET("/:id", order_controller.GetOrderDetails)
		order.PATCH("/:id/status", order_controller.UpdateOrderStatus)
		order.GET("/:id/invoice", order_controller.DownloadOrderInvoicePDF)
		order.POST("/:id/resend-confirmation", order_controller.ResendOrderConfirmation)
	}
}
