package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/christianlemes/rotisserie-pwa/auth"
	"github.com/christianlemes/rotisserie-pwa/cart"
	"github.com/christianlemes/rotisserie-pwa/catalog"
	"github.com/christianlemes/rotisserie-pwa/checkout"
)

// Deps carries everything the route groups wire into their handlers.
type Deps struct {
	DB        *gorm.DB
	Carts     cart.Store
	Catalog   catalog.Store
	Checkout  *checkout.Service
	Customers auth.CustomerStore
}

// SetupRoutes is the single entry point that wires up the public, user
// and admin route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	SetupPublicRoutes(r, d)
	SetupUserRoutes(r, d)
	SetupAdminRoutes(r, d)
}
