package routes

import (
	"github.com/gin-gonic/gin"

	adminControllers "github.com/christianlemes/rotisserie-pwa/controllers/admin"
	"github.com/christianlemes/rotisserie-pwa/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key middleware.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		menuAdmin := adminGroup.Group("/menu")
		{
			menuAdmin.POST("", adminControllers.CreateMenuItem(d.DB))
			menuAdmin.PUT("/:id", adminControllers.UpdateMenuItem(d.DB))
			menuAdmin.DELETE("/:id", adminControllers.DeleteMenuItem(d.DB))
		}
	}
}
