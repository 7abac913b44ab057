package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christianlemes/rotisserie-pwa/cart"
	"github.com/christianlemes/rotisserie-pwa/middleware"
)

func loginRouter(store CustomerStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login", LoginHandler(store))
	return r
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLoginIssuesUsableToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	store := newFakeCustomerStore()
	r := loginRouter(store)

	w := postLogin(r, `{"email":"ana@example.com","name":"Ana"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	// The issued token must pass the auth middleware and expose identity.
	api := gin.New()
	api.GET("/user/me", middleware.ValidateToken, MeHandler())

	mw := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	api.ServeHTTP(mw, req)

	require.Equal(t, http.StatusOK, mw.Code)
	var me struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(mw.Body.Bytes(), &me))
	assert.Equal(t, uint(1), me.ID)
	assert.Equal(t, "ana@example.com", me.Email)
	assert.Equal(t, "Ana", me.Name)
}

func TestLoginSecondTimeReusesCustomer(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	store := newFakeCustomerStore()
	r := loginRouter(store)

	w := postLogin(r, `{"email":"ana@example.com","name":"Ana"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = postLogin(r, `{"email":"ana@example.com","name":"Outro Nome"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Customer struct {
			ID   uint   `json:"id"`
			Name string `json:"name"`
		} `json:"customer"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(1), resp.Customer.ID)
	assert.Equal(t, "Ana", resp.Customer.Name, "existing record wins")
}

func TestLoginRequiresNameAndEmail(t *testing.T) {
	store := newFakeCustomerStore()
	r := loginRouter(store)

	assert.Equal(t, http.StatusBadRequest, postLogin(r, `{"email":"ana@example.com"}`).Code)
	assert.Equal(t, http.StatusBadRequest, postLogin(r, `{"name":"Ana"}`).Code)
	assert.Equal(t, http.StatusBadRequest, postLogin(r, `{"email":"not-an-email","name":"Ana"}`).Code)
}

func TestLogoutClearsCart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	carts := cart.NewMemoryStore()
	_, err := carts.Add(context.Background(), "42", 7, 2)
	require.NoError(t, err)

	r := gin.New()
	r.POST("/user/logout", func(c *gin.Context) {
		c.Set("user_id", uint(42))
		c.Next()
	}, LogoutHandler(carts))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user/logout", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	c, err := carts.Get(context.Background(), "42")
	require.NoError(t, err)
	assert.Empty(t, c)
}
