package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCartSession_KeepsValidCookie(t *testing.T) {
	r := gin.New()
	r.Use(CartSession(false))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetCartID(c)) })

	const id = "0190f5d2-aaaa-7000-8000-000000000001"
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CartCookieName, Value: id})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, id, w.Body.String())
	assert.Empty(t, w.Result().Cookies())
}

func TestCartSession_ReplacesMalformedCookie(t *testing.T) {
	r := gin.New()
	r.Use(CartSession(true))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetCartID(c)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CartCookieName, Value: "../../etc"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cookies[0].Value, w.Body.String())
	assert.True(t, cookies[0].Secure)
	assert.True(t, cookies[0].HttpOnly)
}

func TestOptionalAuthAndAuthMiddleware(t *testing.T) {
	require.NoError(t, services.InitJWTService("mw-test-key"))
	token, err := services.GetJWTService().GenerateCustomerJWT(models.Customer{ID: "g-1", Email: "ada@example.com"})
	require.NoError(t, err)

	whoami := func(c *gin.Context) {
		if cust, ok := GetCustomerFromContext(c); ok {
			c.String(http.StatusOK, cust.Email)
			return
		}
		c.String(http.StatusOK, "anonymous")
	}

	r := gin.New()
	r.GET("/optional", OptionalAuthMiddleware(), whoami)
	r.GET("/required", AuthMiddleware(), whoami)

	cases := []struct {
		name   string
		path   string
		cookie string
		code   int
		body   string
	}{
		{"optional anonymous", "/optional", "", http.StatusOK, "anonymous"},
		{"optional bad token", "/optional", "garbage", http.StatusOK, "anonymous"},
		{"optional signed in", "/optional", token, http.StatusOK, "ada@example.com"},
		{"required anonymous", "/required", "", http.StatusUnauthorized, ""},
		{"required bad token", "/required", "garbage", http.StatusUnauthorized, ""},
		{"required signed in", "/required", token, http.StatusOK, "ada@example.com"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CustomerCookieName, Value: tc.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.code, w.Code)
			if tc.body != "" {
				assert.Equal(t, tc.body, w.Body.String())
			}
		})
	}
}

func TestRateLimiter_NilClientPassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(RateLimiter(nil, 1, 0))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var env models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Error)
}

func TestRegisterValidators_OrderStatus(t *testing.T) {
	require.NoError(t, RegisterValidators())

	r := gin.New()
	r.PATCH("/", func(c *gin.Context) {
		var req models.UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	for status, code := range map[string]int{"Shipped": http.StatusOK, "Lost": http.StatusBadRequest, "": http.StatusBadRequest} {
		body, _ := json.Marshal(map[string]string{"status": status})
		req := httptest.NewRequest(http.MethodPatch, "/", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, code, w.Code, status)
	}
}

type captureRecorder struct {
	entries []models.ActivityLog
}

func (r *captureRecorder) Record(_ context.Context, e models.ActivityLog) error {
	r.entries = append(r.entries, e)
	return nil
}

func TestActivityLoggingMiddleware(t *testing.T) {
	rec := &captureRecorder{}
	services.SetActivityRecorder(rec)
	t.Cleanup(func() { services.SetActivityRecorder(nil) })

	var seenBody string
	r := gin.New()
	admin := r.Group("/api/v1/admin")
	admin.Use(func(c *gin.Context) {
		c.Set(adminClaimsKey, &services.AdminJWTClaims{Role: "admin", RegisteredClaims: jwt.RegisteredClaims{Subject: "admin"}})
		c.Next()
	})
	admin.Use(ActivityLoggingMiddleware())
	admin.PATCH("/products/:id", func(c *gin.Context) {
		b, _ := io.ReadAll(c.Request.Body)
		seenBody = string(b)
		c.Status(http.StatusOK)
	})
	admin.GET("/products", func(c *gin.Context) { c.Status(http.StatusOK) })
	admin.POST("/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	payload := `{"name":"Aurora","secret":"hunter2"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/products/p-1", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(httptest.NewRecorder(), req)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/admin/products", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", nil))

	assert.Equal(t, payload, seenBody)
	require.Len(t, rec.entries, 1)
	e := rec.entries[0]
	assert.Equal(t, "admin", e.Actor)
	assert.Equal(t, "updated_product", e.Action)
	assert.Equal(t, "p-1", e.ResourceID)
	assert.JSONEq(t, `{"name":"Aurora"}`, string(e.Changes))
}
