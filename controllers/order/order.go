package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/christianlemes/rotisserie-pwa/checkout"
	"github.com/christianlemes/rotisserie-pwa/logging"
	"github.com/christianlemes/rotisserie-pwa/models"
)

// Address fields are opaque strings; the API does not validate their
// format, only records them on the order.
type CheckoutRequest struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
}

// POST /user/checkout
func CheckoutHandler(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		res, err := svc.Checkout(c.Request.Context(), c.GetUint("user_id"), checkout.Address{
			Street:       req.Street,
			Number:       req.Number,
			Neighborhood: req.Neighborhood,
		})
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		case errors.Is(err, checkout.ErrCheckoutInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": "A checkout is already in progress"})
			return
		case err != nil:
			// The cause is logged; clients only see a generic failure.
			logging.From(c).Error("checkout failed", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize order"})
			return
		}

		c.JSON(http.StatusOK, res)
	}
}

// GET /user/orders
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Where("customer_id = ?", c.GetUint("user_id")).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			logging.From(c).Error("failed to list orders", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders/:ref
// Accepts a numeric order id or an order ref; always scoped to the
// caller's own orders.
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := c.Param("ref")
		if ref == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order reference is required"})
			return
		}

		query := db.Where("customer_id = ?", c.GetUint("user_id")).Preload("Items")
		if id, err := strconv.ParseUint(ref, 10, 64); err == nil {
			query = query.Where("id = ?", uint(id))
		} else {
			query = query.Where("order_ref = ?", ref)
		}

		var order models.Order
		if err := query.First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			logging.From(c).Error("failed to fetch order", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
