package cart_controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/cart"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/middleware"
)

const cartID = "0190f5d2-aaaa-7000-8000-000000000001"

var ringID = uuid.MustParse("0190f5d2-0000-7000-8000-000000000001")

func setup(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, *cart.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	prevDB, prevStore := config.DB, cart.Default()
	store := cart.NewMemoryStore()
	config.DB = gdb
	cart.SetDefault(store)
	t.Cleanup(func() {
		config.DB = prevDB
		cart.SetDefault(prevStore)
		_ = db.Close()
	})

	r := gin.New()
	r.Use(middleware.CartSession(false))
	r.GET("/cart", GetCart)
	r.DELETE("/cart", ClearCart)
	r.POST("/cart/items", AddItem)
	r.PATCH("/cart/items/:productId", UpdateItem)
	r.DELETE("/cart/items/:productId", RemoveItem)
	return r, mock, store
}

func expectProduct(mock sqlmock.Sqlmock, price float64) {
	rows := sqlmock.NewRows([]string{"id", "name", "description", "price", "cost_price", "category", "image", "created_at", "updated_at"}).
		AddRow(ringID.String(), "Aurora Ring", "", price, 90.0, "Rings", []byte(`{"url":"https://img/ring.jpg"}`), time.Now(), time.Now())
	mock.ExpectQuery(`SELECT \* FROM "products"`).WillReturnRows(rows)
}

type cartEnvelope struct {
	Message string    `json:"message"`
	Data    cart.View `json:"data"`
	Error   bool      `json:"error"`
}

func send(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, cartEnvelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.CartCookieName, Value: cartID})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env cartEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestGetCart_IssuesCookieWhenMissing(t *testing.T) {
	r, _, _ := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.CartCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.NoError(t, uuid.Validate(cookies[0].Value))
}

func TestAddItem_SnapshotsAndMerges(t *testing.T) {
	r, mock, _ := setup(t)

	expectProduct(mock, 250)
	w, env := send(t, r, http.MethodPost, "/cart/items", map[string]any{"product_id": ringID.String(), "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, env.Data.Items, 1)
	assert.Equal(t, "Aurora Ring", env.Data.Items[0].Name)
	assert.Equal(t, "https://img/ring.jpg", env.Data.Items[0].ImageURL)

	expectProduct(mock, 260)
	w, env = send(t, r, http.MethodPost, "/cart/items", map[string]any{"product_id": ringID.String(), "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, env.Data.Items, 1)
	assert.Equal(t, 3, env.Data.Count)
	assert.InDelta(t, 780.0, env.Data.Total, 1e-9)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddItem_UnknownProduct(t *testing.T) {
	r, mock, store := setup(t)

	mock.ExpectQuery(`SELECT \* FROM "products"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	w, env := send(t, r, http.MethodPost, "/cart/items", map[string]any{"product_id": uuid.NewString(), "quantity": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, env.Error)

	c, err := store.Load(context.Background(), cartID)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestAddItem_InvalidBody(t *testing.T) {
	r, _, _ := setup(t)

	w, _ := send(t, r, http.MethodPost, "/cart/items", map[string]any{"product_id": "not-a-uuid"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = send(t, r, http.MethodPost, "/cart/items", map[string]any{"product_id": ringID.String(), "quantity": -2})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateRemoveClear(t *testing.T) {
	r, _, store := setup(t)

	seeded := cart.New(cartID)
	require.NoError(t, seeded.Add(cart.Item{ProductID: ringID.String(), Name: "Aurora Ring", Price: 250, Quantity: 1}))
	require.NoError(t, seeded.Add(cart.Item{ProductID: "other", Name: "Hoops", Price: 100, Quantity: 1}))
	require.NoError(t, store.Save(context.Background(), seeded))

	w, env := send(t, r, http.MethodPatch, "/cart/items/"+ringID.String(), map[string]any{"quantity": 4})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, env.Data.Count)

	w, env = send(t, r, http.MethodPatch, "/cart/items/"+ringID.String(), map[string]any{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, env.Data.Items, 1)
	assert.Equal(t, "other", env.Data.Items[0].ProductID)

	w, _ = send(t, r, http.MethodPatch, "/cart/items/missing", map[string]any{"quantity": 2})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = send(t, r, http.MethodDelete, "/cart/items/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = send(t, r, http.MethodDelete, "/cart/items/other", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, env.Data.Items)

	require.NoError(t, store.Save(context.Background(), seeded))
	w, env = send(t, r, http.MethodDelete, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, env.Data.Count)
}

func TestUpdateItem_RequiresQuantity(t *testing.T) {
	r, _, _ := setup(t)

	w, _ := send(t, r, http.MethodPatch, "/cart/items/"+ringID.String(), map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
