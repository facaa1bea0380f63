package product_controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
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

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/services"
)

var productID = uuid.MustParse("0190f5d2-2222-7000-8000-000000000001")

func setup(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger:                 logger.Discard,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	prev := config.DB
	config.DB = gdb
	t.Cleanup(func() {
		config.DB = prev
		_ = db.Close()
	})

	r := gin.New()
	r.GET("/products", GetProducts)
	r.POST("/products", CreateProduct)
	r.GET("/products/:id", GetProductByID)
	r.PATCH("/products/:id", UpdateProduct)
	r.DELETE("/products/:id", DeleteProduct)
	return r, mock
}

var collectionID = uuid.MustParse("0190f5d2-3333-7000-8000-000000000001")

func productRows() *sqlmock.Rows {
	return productRowsWith(nil, `{"url":"https://img/aurora.jpg","public_id":"lumiere/aurora"}`)
}

func productRowsWith(collection any, image string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "description", "price", "cost_price", "category", "collection_id", "image", "created_at", "updated_at"}).
		AddRow(productID.String(), "Aurora Ring", "Gold band", 250.0, 90.0, "Rings", collection,
			[]byte(image), time.Now(), time.Now())
}

// deleteRecorder is a media store that reports background deletes.
type deleteRecorder struct {
	deleted chan string
}

func (d *deleteRecorder) Upload(context.Context, io.Reader, string, string) (services.MediaAsset, error) {
	return services.MediaAsset{}, nil
}

func (d *deleteRecorder) Delete(_ context.Context, publicID string) error {
	d.deleted <- publicID
	return nil
}

func withDeleteRecorder(t *testing.T) *deleteRecorder {
	t.Helper()
	rec := &deleteRecorder{deleted: make(chan string, 4)}
	services.SetMediaStore(rec)
	t.Cleanup(func() { services.SetMediaStore(nil) })
	return rec
}

func decodeProduct(t *testing.T, w *httptest.ResponseRecorder) models.Product {
	t.Helper()
	var env struct {
		Data models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Data
}

func send(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProduct_Validation(t *testing.T) {
	r, mock := setup(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing name", map[string]any{"price": 100, "category": "Rings"}},
		{"zero price", map[string]any{"name": "Ring", "price": 0, "category": "Rings"}},
		{"negative price", map[string]any{"name": "Ring", "price": -5, "category": "Rings"}},
		{"negative cost", map[string]any{"name": "Ring", "price": 10, "cost_price": -1, "category": "Rings"}},
		{"missing category", map[string]any{"name": "Ring", "price": 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := send(r, http.MethodPost, "/products", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProduct_UnknownCollection(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "collections"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	w := send(r, http.MethodPost, "/products", map[string]any{
		"name": "Ring", "price": 10, "category": "Rings",
		"collection_id": uuid.NewString(),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Collection not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProductByID(t *testing.T) {
	r, mock := setup(t)

	w := send(r, http.MethodGet, "/products/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mock.ExpectQuery(`SELECT \* FROM "products"`).WillReturnRows(productRows())
	w = send(r, http.MethodGet, "/products/"+productID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Data models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "Aurora Ring", env.Data.Name)
	assert.Equal(t, 90.0, env.Data.CostPrice)
	assert.Equal(t, "lumiere/aurora", env.Data.Image.PublicID)

	mock.ExpectQuery(`SELECT \* FROM "products"`).WillReturnError(gorm.ErrRecordNotFound)
	w = send(r, http.MethodGet, "/products/"+productID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProducts(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE category = \$1`).
		WithArgs("Rings").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE category = \$1`).
		WillReturnRows(productRows())

	w := send(r, http.MethodGet, "/products?category=Rings&page=1&limit=10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Data []models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Len(t, env.Data, 1)
	assert.Equal(t, productID, env.Data[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProduct_RejectsBadPrice(t *testing.T) {
	r, _ := setup(t)
	w := send(r, http.MethodPatch, "/products/"+productID.String(), map[string]any{"price": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteProduct(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectQuery(`SELECT \* FROM "products"`).WillReturnRows(productRows())
	mock.ExpectExec(`DELETE FROM "products"`).WillReturnResult(sqlmock.NewResult(0, 1))

	w := send(r, http.MethodDelete, "/products/"+productID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), productID.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProduct_ImageURLChangeKeepsPublicID(t *testing.T) {
	r, mock := setup(t)
	rec := withDeleteRecorder(t)
	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(productRowsWith(nil, `{"url":"https://old/aurora.jpg"}`))
	mock.ExpectExec(`UPDATE "products" SET`).WillReturnResult(sqlmock.NewResult(0, 1))

	w := send(r, http.MethodPatch, "/products/"+productID.String(), map[string]any{
		"image": map[string]any{"url": "https://new/aurora.jpg"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://new/aurora.jpg", decodeProduct(t, w).Image.URL)
	assert.NoError(t, mock.ExpectationsWereMet())

	select {
	case id := <-rec.deleted:
		t.Fatalf("unexpected media delete of %q", id)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUpdateProduct_NewPublicIDDeletesOldImage(t *testing.T) {
	r, mock := setup(t)
	rec := withDeleteRecorder(t)
	mock.ExpectQuery(`SELECT \* FROM "products"`).WillReturnRows(productRows())
	mock.ExpectExec(`UPDATE "products" SET`).WillReturnResult(sqlmock.NewResult(0, 1))

	w := send(r, http.MethodPatch, "/products/"+productID.String(), map[string]any{
		"image": map[string]any{"url": "https://img/aurora-v2.jpg", "public_id": "lumiere/aurora-v2"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeProduct(t, w)
	assert.Equal(t, "lumiere/aurora-v2", got.Image.PublicID)

	select {
	case id := <-rec.deleted:
		assert.Equal(t, "lumiere/aurora", id)
	case <-time.After(time.Second):
		t.Fatal("old image was not deleted")
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProduct_CollectionField(t *testing.T) {
	t.Run("null clears the collection", func(t *testing.T) {
		r, mock := setup(t)
		mock.ExpectQuery(`SELECT \* FROM "products"`).
			WillReturnRows(productRowsWith(collectionID.String(), `{}`))
		mock.ExpectExec(`UPDATE "products" SET`).WillReturnResult(sqlmock.NewResult(0, 1))

		w := send(r, http.MethodPatch, "/products/"+productID.String(), map[string]any{"collection_id": nil})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, decodeProduct(t, w).CollectionID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent leaves it unchanged", func(t *testing.T) {
		r, mock := setup(t)
		mock.ExpectQuery(`SELECT \* FROM "products"`).
			WillReturnRows(productRowsWith(collectionID.String(), `{}`))
		mock.ExpectExec(`UPDATE "products" SET`).WillReturnResult(sqlmock.NewResult(0, 1))

		w := send(r, http.MethodPatch, "/products/"+productID.String(), map[string]any{"name": "Aurora Band"})
		require.Equal(t, http.StatusOK, w.Code)
		got := decodeProduct(t, w)
		require.NotNil(t, got.CollectionID)
		assert.Equal(t, collectionID, *got.CollectionID)
		assert.Equal(t, "Aurora Band", got.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown collection is rejected", func(t *testing.T) {
		r, mock := setup(t)
		mock.ExpectQuery(`SELECT \* FROM "products"`).WillReturnRows(productRows())
		mock.ExpectQuery(`SELECT count\(\*\) FROM "collections"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		w := send(r, http.MethodPatch, "/products/"+productID.String(), map[string]any{"collection_id": uuid.NewString()})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
