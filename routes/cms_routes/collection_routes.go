package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/controllers/cms/collection_controller"
)

func SetupCollectionRoutes(rg *gin.RouterGroup) {
	collection := rg.Group("/collections")
	{
		collection.GET("", collection_controller.GetCollections)
		collection.GET("/:id", collection_controller.GetCollectionByID)
		collection.POST("", collection_controller.CreateCollection)
		collection.PATCH("/:id", collection_controller.UpdateCollection)
		collection.DELETE("/:id", collection_controller.DeleteCollection)
	}
}
