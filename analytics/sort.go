package analytics

import (
	"sort"
	"strings"
)

type SortField string

const (
	SortByPrice        SortField = "price"
	SortByCostPrice    SortField = "cost_price"
	SortByTotalOrdered SortField = "total_ordered"
	SortByTotalRevenue SortField = "total_revenue"
	SortByTotalProfit  SortField = "total_profit"
)

// ParseSortField falls back to total_revenue for unknown fields.
func ParseSortField(s string) SortField {
	switch f := SortField(strings.ToLower(strings.TrimSpace(s))); f {
	case SortByPrice, SortByCostPrice, SortByTotalOrdered, SortByTotalProfit:
		return f
	default:
		return SortByTotalRevenue
	}
}

// ParseSortDesc reads an "order" query value. Anything but "asc" is descending.
func ParseSortDesc(s string) bool {
	return !strings.EqualFold(strings.TrimSpace(s), "asc")
}

func (f SortField) value(r ProductRow) float64 {
	switch f {
	case SortByPrice:
		return r.Price
	case SortByCostPrice:
		return r.CostPrice
	case SortByTotalOrdered:
		return float64(r.TotalOrdered)
	case SortByTotalProfit:
		return r.TotalProfit
	default:
		return r.TotalRevenue
	}
}

// SortRows sorts rows in place. The sort is stable, so ties keep their
// input order in both directions.
func SortRows(rows []ProductRow, field SortField, desc bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := field.value(rows[i]), field.value(rows[j])
		if desc {
			return a > b
		}
		return a < b
	})
}
