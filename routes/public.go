package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/christianlemes/rotisserie-pwa/auth"
	menuControllers "github.com/christianlemes/rotisserie-pwa/controllers/menu"
)

// SetupPublicRoutes registers the endpoints that need no credentials.
func SetupPublicRoutes(r *gin.Engine, d Deps) {
	r.POST("/auth/login", auth.LoginHandler(d.Customers))
	r.GET("/menu", menuControllers.GetMenu(d.Catalog))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
}
