package docs_routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Lumiere-Jewelry/lumiere-storefront-backend/docs"
)

// SetupSwaggerRoutes serves the Swagger UI and doc.json under /swagger.
func SetupSwaggerRoutes(router gin.IRoutes) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
