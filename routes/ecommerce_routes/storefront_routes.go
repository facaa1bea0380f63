package ecommerce_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	store_cart "github.com/Lumiere-Jewelry/lumiere-storefront-backend/controllers/ecommerce/cart_controller"
	store_category "github.com/Lumiere-Jewelry/lumiere-storefront-backend/controllers/ecommerce/category_controller"
	store_collection "github.com/Lumiere-Jewelry/lumiere-storefront-backend/controllers/ecommerce/collection_controller"
	store_order "github.com/Lumiere-Jewelry/lumiere-storefront-backend/controllers/ecommerce/order_controller"
	store_product "github.com/Lumiere-Jewelry/lumiere-storefront-backend/controllers/ecommerce/product_controller"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/middleware"
)

// SetupStorefrontRoutes mounts the public catalog, cart and checkout.
// Every request carries a cart cookie and, when present, the signed-in
// customer.
func SetupStorefrontRoutes(router *gin.RouterGroup, cfg *config.Config) {
	store := router.Group("")
	store.Use(middleware.CartSession(cfg.IsProduction()))
	store.Use(middleware.OptionalAuthMiddleware())

	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts)
		products.GET("/:id", store_product.GetStorefrontProductByID)
	}

	store.GET("/categories", store_category.GetCategories)

	collections := store.Group("/collections")
	{
		collections.GET("", store_collection.GetCollections)
		collections.GET("/:slug", store_collection.GetCollectionBySlug)
	}

	cart := store.Group("/cart")
	{
		cart.GET("", store_cart.GetCart)
		cart.DELETE("", store_cart.ClearCart)
		cart.POST("/items", store_cart.AddItem)
		cart.PATCH("/items/:productId", store_cart.UpdateItem)
		cart.DELETE("/items/:productId", store_cart.RemoveItem)
	}

	checkoutLimit := middleware.RateLimiter(config.RedisClient, 10, time.Minute)
	orders := store.Group("/orders")
	{
		orders.POST("", checkoutLimit, store_order.CreateOrder)
		orders.GET("/:id/confirmation", store_order.GetOrderConfirmation)
	}

	store.POST("/emails/order-confirmation", checkoutLimit, store_order.SendOrderConfirmationEmail)
}
