package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/christianlemes/rotisserie-pwa/auth"
	cartControllers "github.com/christianlemes/rotisserie-pwa/controllers/cart"
	orderControllers "github.com/christianlemes/rotisserie-pwa/controllers/order"
	"github.com/christianlemes/rotisserie-pwa/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("/me", auth.MeHandler())
		userGroup.POST("/logout", auth.LogoutHandler(d.Carts))

		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(d.Carts, d.Catalog))
			cartGroup.POST("", cartControllers.AddCartItem(d.Carts))
			cartGroup.DELETE("/:item_id", cartControllers.RemoveCartItem(d.Carts))
		}

		userGroup.POST("/checkout", orderControllers.CheckoutHandler(d.Checkout))

		userGroup.GET("/orders", orderControllers.GetMyOrdersHandler(d.DB))
		userGroup.GET("/orders/:ref", orderControllers.GetOrderHandler(d.DB))
	}
}
