package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

type TopProduct struct {
	ProductID      string  `json:"product_id"`
	ProductName    string  `json:"product_name"`
	OrderCount     int     `json:"order_count"`
	SalesCount     int     `json:"sales_count"`
	Revenue        float64 `json:"revenue"`
	RevenuePercent float64 `json:"revenue_percent"`
}

type MonthlyRevenue struct {
	Month       string  `json:"month"`
	Year        int     `json:"year"`
	MonthNumber int     `json:"month_number"`
	Revenue     float64 `json:"revenue"`
	OrderCount  int     `json:"order_count"`
}

// TopProducts ranks products by revenue within the filtered orders and
// returns at most limit entries. Products without sales are left out.
// RevenuePercent is the product's share of all line-item revenue in the set.
func TopProducts(orders []models.Order, products []models.Product, limit int) []TopProduct {
	rows := BuildProductRows(orders, products)

	orderCount := make(map[string]int, len(products))
	for _, o := range orders {
		seen := make(map[string]bool, len(o.Items))
		for _, li := range o.Items {
			if !seen[li.ProductID] {
				seen[li.ProductID] = true
				orderCount[li.ProductID]++
			}
		}
	}

	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(decimal.NewFromFloat(r.TotalRevenue))
	}

	SortRows(rows, SortByTotalRevenue, true)

	out := make([]TopProduct, 0, limit)
	for _, r := range rows {
		if len(out) >= limit {
			break
		}
		if r.TotalOrdered == 0 {
			continue
		}
		tp := TopProduct{
			ProductID:   r.ProductID,
			ProductName: r.Name,
			OrderCount:  orderCount[r.ProductID],
			SalesCount:  r.TotalOrdered,
			Revenue:     r.TotalRevenue,
		}
		if !total.IsZero() {
			tp.RevenuePercent = decimal.NewFromFloat(r.TotalRevenue).Div(total).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
		}
		out = append(out, tp)
	}
	return out
}

// MonthlyRevenueSeries returns order revenue for the 12 calendar months
// ending with now's month, oldest first. Months without orders are zero.
func MonthlyRevenueSeries(orders []models.Order, now time.Time) []MonthlyRevenue {
	loc := now.Location()
	first := time.Date(now.Year(), now.Month()-11, 1, 0, 0, 0, 0, loc)

	series := make([]MonthlyRevenue, 12)
	sums := make([]decimal.Decimal, 12)
	for i := range series {
		m := first.AddDate(0, i, 0)
		series[i] = MonthlyRevenue{
			Month:       m.Format("Jan"),
			Year:        m.Year(),
			MonthNumber: int(m.Month()),
		}
		sums[i] = decimal.Zero
	}

	for _, o := range orders {
		t := o.CreatedAt.In(loc)
		if t.Before(first) || t.After(now) {
			continue
		}
		i := (t.Year()-first.Year())*12 + int(t.Month()) - int(first.Month())
		if i < 0 || i >= 12 {
			continue
		}
		sums[i] = sums[i].Add(decimal.NewFromFloat(o.TotalAmount))
		series[i].OrderCount++
	}

	for i := range series {
		series[i].Revenue = sums[i].InexactFloat64()
	}
	return series
}
