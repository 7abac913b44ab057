package adminControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/christianlemes/rotisserie-pwa/logging"
	"github.com/christianlemes/rotisserie-pwa/models"
)

type CreateMenuItemInput struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Available   *bool           `json:"available"`
}

type UpdateMenuItemInput struct {
	Category  *string          `json:"category"`
	Price     *decimal.Decimal `json:"price"`
	Available *bool            `json:"available"`
}

// POST /admin/menu
// Creates the product and its menu entry together.
func CreateMenuItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateMenuItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
			return
		}

		available := true
		if input.Available != nil {
			available = *input.Available
		}

		item := models.MenuItem{
			Product: models.Product{
				Name:        input.Name,
				Description: input.Description,
			},
			Category:  input.Category,
			Price:     input.Price.Round(2),
			Available: available,
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&item).Error
		}); err != nil {
			logging.From(c).Error("failed to create menu item", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
			return
		}

		c.JSON(http.StatusCreated, item)
	}
}

// PUT /admin/menu/:id
// Changes the live price, category or availability. Orders already placed
// keep the price frozen at their checkout time.
func UpdateMenuItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
			return
		}

		var input UpdateMenuItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var item models.MenuItem
		if err := db.First(&item, uint(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
				return
			}
			logging.From(c).Error("failed to fetch menu item", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
			return
		}

		updates := map[string]interface{}{}
		if input.Category != nil {
			updates["category"] = *input.Category
		}
		if input.Price != nil {
			if input.Price.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
				return
			}
			updates["price"] = input.Price.Round(2)
		}
		if input.Available != nil {
			updates["available"] = *input.Available
		}
		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
			return
		}

		if err := db.Model(&item).Updates(updates).Error; err != nil {
			logging.From(c).Error("failed to update menu item", "id", id, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// DELETE /admin/menu/:id
// Removes the item from the menu. Order history is untouched: lines keep
// the frozen price and item id they were written with.
func DeleteMenuItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
			return
		}

		result := db.Delete(&models.MenuItem{}, uint(id))
		if result.Error != nil {
			logging.From(c).Error("failed to delete menu item", "id", id, "err", result.Error)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
	}
}
