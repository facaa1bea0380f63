package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/controllers/cms/media_controller"
)

func SetupMediaRoutes(rg *gin.RouterGroup) {
	rg.POST("/media", media_controller.UploadMedia)
	rg.DELETE("/media", media_controller.DeleteMedia)
}
