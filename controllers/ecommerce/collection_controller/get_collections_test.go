package collection_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

func setupDB(t *testing.T) sqlmock.Sqlmock {
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
	return mock
}

var bridalID = uuid.MustParse("0190f5d2-5555-7000-8000-000000000001")

func collectionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "slug", "description", "image", "created_at", "updated_at"}).
		AddRow(bridalID.String(), "Bridal", "bridal", "Rings for the day", []byte(`{"url":"https://img/bridal.jpg"}`), time.Now(), time.Now())
}

func router() *gin.Engine {
	r := gin.New()
	r.GET("/collections", GetCollections)
	r.GET("/collections/:slug", GetCollectionBySlug)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestGetCollections(t *testing.T) {
	mock := setupDB(t)
	mock.ExpectQuery(`SELECT \* FROM "collections" ORDER BY name ASC`).WillReturnRows(collectionRows())

	w := get(router(), "/collections")
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Data []models.Collection `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Len(t, env.Data, 1)
	assert.Equal(t, "bridal", env.Data[0].Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCollectionBySlug(t *testing.T) {
	mock := setupDB(t)
	mock.ExpectQuery(`SELECT \* FROM "collections" WHERE slug = \$1`).
		WillReturnRows(collectionRows())
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE collection_id = \$1`).
		WithArgs(bridalID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "cost_price", "category", "collection_id", "image"}).
			AddRow(uuid.NewString(), "Solitaire Ring", 1200.0, 400.0, "Rings", bridalID.String(), []byte(`{"url":"https://img/solitaire.jpg"}`)))

	w := get(router(), "/collections/bridal")
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Data models.CollectionWithProducts `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "Bridal", env.Data.Name)
	require.Len(t, env.Data.Products, 1)
	assert.Equal(t, "Solitaire Ring", env.Data.Products[0].Name)
	assert.Equal(t, "https://img/solitaire.jpg", env.Data.Products[0].ImageURL)
	assert.NotContains(t, w.Body.String(), "cost_price")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCollectionBySlug_NotFound(t *testing.T) {
	mock := setupDB(t)
	mock.ExpectQuery(`SELECT \* FROM "collections"`).WillReturnError(gorm.ErrRecordNotFound)

	assert.Equal(t, http.StatusNotFound, get(router(), "/collections/winter").Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
