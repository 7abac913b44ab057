package cartControllers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/christianlemes/rotisserie-pwa/cart"
	"github.com/christianlemes/rotisserie-pwa/catalog"
	"github.com/christianlemes/rotisserie-pwa/logging"
	"github.com/christianlemes/rotisserie-pwa/middleware"
)

type CartItemInput struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

// CartLine is one cart entry joined with live menu data. Subtotal is a
// live-priced preview; the frozen price is only fixed at checkout.
type CartLine struct {
	ItemID      uint            `json:"item_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// POST /user/cart
func AddCartItem(carts cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		result, err := carts.Add(c.Request.Context(), middleware.SessionID(c), input.ItemID, input.Quantity)
		if err == cart.ErrInvalidInput {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id or quantity"})
			return
		}
		if err != nil {
			logging.From(c).Error("failed to add cart item", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart": result})
	}
}

// DELETE /user/cart/:item_id
// Removing an item that is not in the cart is a no-op, not an error.
func RemoveCartItem(carts cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil || itemID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
			return
		}

		result, err := carts.Remove(c.Request.Context(), middleware.SessionID(c), uint(itemID))
		if err != nil {
			logging.From(c).Error("failed to remove cart item", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item from cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart": result})
	}
}

// GET /user/cart
// Returns cart entries joined with current menu names and prices, plus a
// running total. Entries whose item no longer exists on the menu are
// omitted from the listing.
func GetCart(carts cart.Store, cat catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		current, err := carts.Get(ctx, middleware.SessionID(c))
		if err != nil {
			logging.From(c).Error("failed to fetch cart", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		ids := make([]uint, 0, len(current))
		for id := range current {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		entries, err := cat.Lookup(ctx, ids)
		if err != nil {
			logging.From(c).Error("failed to fetch menu data for cart", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		lines := make([]CartLine, 0, len(ids))
		total := decimal.Zero
		for _, id := range ids {
			entry, ok := entries[id]
			if !ok {
				continue
			}
			qty := current[id]
			subtotal := entry.Price.Mul(decimal.NewFromInt(int64(qty))).Round(2)
			total = total.Add(subtotal)
			lines = append(lines, CartLine{
				ItemID:      id,
				ProductName: entry.ProductName,
				UnitPrice:   entry.Price,
				Quantity:    qty,
				Subtotal:    subtotal,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"items": lines,
			"total": total.Round(2),
		})
	}
}
