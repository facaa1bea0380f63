package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/analytics"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

// SnapshotLoader fetches every order and product for one analytics request.
type SnapshotLoader interface {
	LoadSnapshot(ctx context.Context) (analytics.Snapshot, error)
}

// snapshotSource runs the two snapshot queries. PgxSnapshotLoader is the
// production source; joinSnapshot only depends on this seam.
type snapshotSource interface {
	orders(ctx context.Context) ([]models.Order, error)
	products(ctx context.Context) ([]models.Product, error)
}

// joinSnapshot issues both queries concurrently and joins them. Either
// failure cancels the other query and fails the whole load.
func joinSnapshot(ctx context.Context, src snapshotSource) (analytics.Snapshot, error) {
	var snap analytics.Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		orders, err := src.orders(gctx)
		snap.Orders = orders
		return err
	})
	g.Go(func() error {
		products, err := src.products(gctx)
		snap.Products = products
		return err
	})

	if err := g.Wait(); err != nil {
		return analytics.Snapshot{}, err
	}
	return snap, nil
}

// PgxSnapshotLoader reads straight from the pool, bypassing gorm.
type PgxSnapshotLoader struct {
	pool *pgxpool.Pool
}

func NewPgxSnapshotLoader(pool *pgxpool.Pool) *PgxSnapshotLoader {
	return &PgxSnapshotLoader{pool: pool}
}

const (
	snapshotOrdersSQL = `
		SELECT id, order_number, customer_name, customer_email, items,
		       total_amount::float8, status, created_at
		FROM orders
		ORDER BY created_at DESC`

	snapshotProductsSQL = `
		SELECT id, name, description, price::float8, cost_price::float8,
		       category, image, created_at, updated_at
		FROM products
		ORDER BY created_at DESC`
)

func (l *PgxSnapshotLoader) LoadSnapshot(ctx context.Context) (analytics.Snapshot, error) {
	return joinSnapshot(ctx, l)
}

func (l *PgxSnapshotLoader) orders(ctx context.Context) ([]models.Order, error) {
	rows, err := l.pool.Query(ctx, snapshotOrdersSQL)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}

	orders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Order, error) {
		var (
			o        models.Order
			rawItems []byte
		)
		if err := row.Scan(&o.ID, &o.OrderNumber, &o.CustomerName, &o.CustomerEmail, &rawItems,
			&o.TotalAmount, &o.Status, &o.CreatedAt); err != nil {
			return o, err
		}
		items, err := decodeLineItems(rawItems)
		if err != nil {
			return o, fmt.Errorf("decode items of order %s: %w", o.ID, err)
		}
		o.Items = items
		return o, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan orders: %w", err)
	}
	return orders, nil
}

func (l *PgxSnapshotLoader) products(ctx context.Context) ([]models.Product, error) {
	rows, err := l.pool.Query(ctx, snapshotProductsSQL)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}

	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Product, error) {
		var (
			p        models.Product
			rawImage []byte
		)
		if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CostPrice,
			&p.Category, &rawImage, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return p, err
		}
		image, err := decodeImage(rawImage)
		if err != nil {
			return p, fmt.Errorf("decode image of product %s: %w", p.ID, err)
		}
		p.Image = image
		return p, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}
	return products, nil
}

// decodeLineItems reads the JSONB items column. NULL or empty is no items.
func decodeLineItems(raw []byte) ([]models.LineItem, error) {
	items := []models.LineItem{}
	if len(raw) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.LineItem{}
	}
	return items, nil
}

func decodeImage(raw []byte) (models.ProductImage, error) {
	var image models.ProductImage
	if len(raw) == 0 {
		return image, nil
	}
	err := json.Unmarshal(raw, &image)
	return image, err
}

var snapshotLoader SnapshotLoader

func InitSnapshotLoader(pool *pgxpool.Pool) {
	snapshotLoader = NewPgxSnapshotLoader(pool)
}

func GetSnapshotLoader() SnapshotLoader {
	return snapshotLoader
}

// SetSnapshotLoader replaces the loader. Tests use it to inject fakes.
func SetSnapshotLoader(l SnapshotLoader) {
	snapshotLoader = l
}
