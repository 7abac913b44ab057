package menuControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/christianlemes/rotisserie-pwa/catalog"
	"github.com/christianlemes/rotisserie-pwa/logging"
)

// GET /menu
func GetMenu(store catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := store.ListAvailable(c.Request.Context())
		if err != nil {
			logging.From(c).Error("failed to list menu", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}
