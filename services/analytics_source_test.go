package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

type stubSource struct {
	ordersFn   func(ctx context.Context) ([]models.Order, error)
	productsFn func(ctx context.Context) ([]models.Product, error)
}

func (s stubSource) orders(ctx context.Context) ([]models.Order, error) {
	return s.ordersFn(ctx)
}

func (s stubSource) products(ctx context.Context) ([]models.Product, error) {
	return s.productsFn(ctx)
}

func TestJoinSnapshot(t *testing.T) {
	src := stubSource{
		ordersFn: func(context.Context) ([]models.Order, error) {
			return []models.Order{{OrderNumber: "ORD-2025-00000001"}, {OrderNumber: "ORD-2025-00000002"}}, nil
		},
		productsFn: func(context.Context) ([]models.Product, error) {
			return []models.Product{{ID: ringID, Name: "Aurora Ring"}}, nil
		},
	}

	snap, err := joinSnapshot(context.Background(), src)
	require.NoError(t, err)
	assert.Len(t, snap.Orders, 2)
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "Aurora Ring", snap.Products[0].Name)
}

func TestJoinSnapshot_FailureCancelsOtherQuery(t *testing.T) {
	errOrders := errors.New("query orders: connection reset")
	cancelled := make(chan bool, 1)

	src := stubSource{
		ordersFn: func(context.Context) ([]models.Order, error) {
			return nil, errOrders
		},
		productsFn: func(ctx context.Context) ([]models.Product, error) {
			select {
			case <-ctx.Done():
				cancelled <- true
				return nil, ctx.Err()
			case <-time.After(2 * time.Second):
				cancelled <- false
				return []models.Product{{Name: "late"}}, nil
			}
		},
	}

	snap, err := joinSnapshot(context.Background(), src)
	require.ErrorIs(t, err, errOrders)
	assert.Empty(t, snap.Orders)
	assert.Empty(t, snap.Products)
	assert.True(t, <-cancelled)
}

func TestJoinSnapshot_ProductFailure(t *testing.T) {
	errProducts := errors.New("scan products: bad image")
	src := stubSource{
		ordersFn: func(context.Context) ([]models.Order, error) {
			return []models.Order{{OrderNumber: "ORD-2025-00000001"}}, nil
		},
		productsFn: func(context.Context) ([]models.Product, error) {
			return nil, errProducts
		},
	}

	snap, err := joinSnapshot(context.Background(), src)
	require.ErrorIs(t, err, errProducts)
	assert.Empty(t, snap.Orders)
}

func TestDecodeLineItems(t *testing.T) {
	items, err := decodeLineItems([]byte(`[{"product_id":"p1","name":"Aurora Ring","price":250,"quantity":2,"image_url":"https://img/ring.jpg"},{"product_id":"p2","name":"Pearl Drops","price":80.5,"quantity":1}]`))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, models.LineItem{ProductID: "p1", Name: "Aurora Ring", Price: 250, Quantity: 2, ImageURL: "https://img/ring.jpg"}, items[0])
	assert.InDelta(t, 80.5, items[1].Price, 1e-9)

	for _, raw := range [][]byte{nil, []byte(`null`), []byte(`[]`)} {
		items, err := decodeLineItems(raw)
		require.NoError(t, err, string(raw))
		assert.NotNil(t, items)
		assert.Empty(t, items)
	}

	_, err = decodeLineItems([]byte(`{"product_id":"p1"}`))
	assert.Error(t, err)
}

func TestDecodeImage(t *testing.T) {
	img, err := decodeImage([]byte(`{"url":"https://img/ring.jpg","public_id":"lumiere/ring"}`))
	require.NoError(t, err)
	assert.Equal(t, models.ProductImage{URL: "https://img/ring.jpg", PublicID: "lumiere/ring"}, img)

	img, err = decodeImage(nil)
	require.NoError(t, err)
	assert.Equal(t, models.ProductImage{}, img)

	_, err = decodeImage([]byte(`"not an object"`))
	assert.Error(t, err)
}
