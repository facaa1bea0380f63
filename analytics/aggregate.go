package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

// ProductRow is one product with its totals over a filtered order set.
type ProductRow struct {
	ProductID    string  `json:"product_id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	ImageURL     string  `json:"image_url,omitempty"`
	Price        float64 `json:"price"`
	CostPrice    float64 `json:"cost_price"`
	TotalOrdered int     `json:"total_ordered"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalProfit  float64 `json:"total_profit"`
}

// Summary holds the scalar folds over a filtered order set.
type Summary struct {
	TotalRevenue      float64 `json:"total_revenue"`
	TotalProfit       float64 `json:"total_profit"`
	OrderCount        int     `json:"order_count"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// Report is what the admin analytics table renders.
type Report struct {
	Window      Window       `json:"window"`
	GeneratedAt time.Time    `json:"generated_at"`
	Summary     Summary      `json:"summary"`
	Products    []ProductRow `json:"products"`
}

type accumulator struct {
	qty     int
	revenue decimal.Decimal
	profit  decimal.Decimal
}

// BuildProductRows returns one row per product, in product order. Line
// items whose product id does not resolve are skipped. Profit uses each
// product's current cost price.
func BuildProductRows(orders []models.Order, products []models.Product) []ProductRow {
	index := make(map[string]int, len(products))
	acc := make([]accumulator, len(products))
	for i, p := range products {
		index[p.ID.String()] = i
	}

	for _, o := range orders {
		for _, li := range o.Items {
			i, ok := index[li.ProductID]
			if !ok {
				continue
			}
			qty := decimal.NewFromInt(int64(li.Quantity))
			price := decimal.NewFromFloat(li.Price)
			cost := decimal.NewFromFloat(products[i].CostPrice)

			acc[i].qty += li.Quantity
			acc[i].revenue = acc[i].revenue.Add(price.Mul(qty))
			acc[i].profit = acc[i].profit.Add(price.Sub(cost).Mul(qty))
		}
	}

	rows := make([]ProductRow, len(products))
	for i, p := range products {
		rows[i] = ProductRow{
			ProductID:    p.ID.String(),
			Name:         p.Name,
			Category:     p.Category,
			ImageURL:     p.Image.URL,
			Price:        p.Price,
			CostPrice:    p.CostPrice,
			TotalOrdered: acc[i].qty,
			TotalRevenue: acc[i].revenue.InexactFloat64(),
			TotalProfit:  acc[i].profit.InexactFloat64(),
		}
	}
	return rows
}

// Summarize folds the filtered orders and the rows built from them.
// Revenue is the sum of order totals as recorded at checkout.
func Summarize(orders []models.Order, rows []ProductRow) Summary {
	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(decimal.NewFromFloat(o.TotalAmount))
	}
	profit := decimal.Zero
	for _, r := range rows {
		profit = profit.Add(decimal.NewFromFloat(r.TotalProfit))
	}

	s := Summary{
		TotalRevenue: revenue.InexactFloat64(),
		TotalProfit:  profit.InexactFloat64(),
		OrderCount:   len(orders),
	}
	if len(orders) > 0 {
		s.AverageOrderValue = revenue.Div(decimal.NewFromInt(int64(len(orders)))).Round(2).InexactFloat64()
	}
	return s
}

// BuildReport filters, aggregates and sorts in one pass. Nothing is reused
// between calls.
func BuildReport(snap Snapshot, w Window, sortField SortField, desc bool, now time.Time) Report {
	filtered := FilterOrders(snap.Orders, w, now)
	rows := BuildProductRows(filtered, snap.Products)
	SortRows(rows, sortField, desc)
	return Report{
		Window:      w,
		GeneratedAt: now,
		Summary:     Summarize(filtered, rows),
		Products:    rows,
	}
}

// Snapshot is the full set of orders and products fetched for one request.
type Snapshot struct {
	Orders   []models.Order
	Products []models.Product
}

// FindProduct returns the product with the given id.
func (s Snapshot) FindProduct(id string) (models.Product, bool) {
	for _, p := range s.Products {
		if p.ID.String() == id {
			return p, true
		}
	}
	return models.Product{}, false
}
