package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/christianlemes/rotisserie-pwa/cart"
	"github.com/christianlemes/rotisserie-pwa/logging"
	"github.com/christianlemes/rotisserie-pwa/middleware"
)

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
}

// POST /auth/login
// Resolves the customer by email, creating the record on first login,
// and issues a session token.
func LoginHandler(customers CustomerStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and email are required"})
			return
		}

		cust, err := ResolveOrCreateCustomer(c.Request.Context(), customers, req.Email, req.Name)
		if err != nil {
			logging.From(c).Error("login failed", "email", req.Email, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
			return
		}

		token, err := issueJWT(cust.ID, cust.Email, cust.Name)
		if err != nil {
			logging.From(c).Error("token generation failed", "customer_id", cust.ID, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"customer": cust,
			"token":    token,
		})
	}
}

// GET /user/me
func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		email, _ := c.Get("email")
		name, _ := c.Get("name")
		c.JSON(http.StatusOK, gin.H{
			"id":    userID,
			"email": email,
			"name":  name,
		})
	}
}

// POST /user/logout
// The token itself is stateless and simply expires; logout discards the
// session's cart, matching the session lifecycle the cart is tied to.
func LogoutHandler(carts cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.SessionID(c)
		if err := carts.Clear(c.Request.Context(), sessionID); err != nil {
			logging.From(c).Error("failed to clear cart on logout", "session", sessionID, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "logout"})
	}
}

func issueJWT(customerID uint, email, name string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": customerID,
		"email":   email,
		"name":    name,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
