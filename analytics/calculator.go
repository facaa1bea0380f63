package analytics

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

var (
	ErrInvalidCostPrice = errors.New("cost price must be a non-negative number")
	ErrProductNotFound  = errors.New("product not found")
	ErrProductRequired  = errors.New("product_id is required in single mode")
)

type ProfitMode string

const (
	ProfitModeSingle ProfitMode = "single"
	ProfitModeAll    ProfitMode = "all"
)

// ProfitInput describes one calculator run. CostOverride is the raw admin
// input; empty means "use the stored cost price".
type ProfitInput struct {
	Mode         ProfitMode
	ProductID    string
	CostOverride string
	Window       Window
}

type ProfitLine struct {
	ProductID    string  `json:"product_id"`
	Name         string  `json:"name"`
	SellingPrice float64 `json:"selling_price"`
	CostPrice    float64 `json:"cost_price"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
	Profit       float64 `json:"profit"`
	Margin       float64 `json:"margin"`
}

type ProfitResult struct {
	Mode         ProfitMode   `json:"mode"`
	Window       Window       `json:"window"`
	Lines        []ProfitLine `json:"lines"`
	TotalRevenue float64      `json:"total_revenue"`
	TotalProfit  float64      `json:"total_profit"`
	Margin       float64      `json:"margin"`
	CalculatedAt time.Time    `json:"calculated_at"`
}

// ParseCostOverride parses an admin-entered cost price.
func ParseCostOverride(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCostPrice, raw)
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCostPrice, raw)
	}
	return v, nil
}

// CalculateProfit runs the detailed calculator over the snapshot. Input is
// validated before any aggregation so a rejected run has no side effects.
func CalculateProfit(snap Snapshot, in ProfitInput, now time.Time) (ProfitResult, error) {
	mode := in.Mode
	if mode != ProfitModeSingle {
		mode = ProfitModeAll
	}

	var products []models.Product
	override := -1.0
	if mode == ProfitModeSingle {
		if strings.TrimSpace(in.ProductID) == "" {
			return ProfitResult{}, ErrProductRequired
		}
		p, ok := snap.FindProduct(in.ProductID)
		if !ok {
			return ProfitResult{}, fmt.Errorf("%w: %s", ErrProductNotFound, in.ProductID)
		}
		if strings.TrimSpace(in.CostOverride) != "" {
			v, err := ParseCostOverride(in.CostOverride)
			if err != nil {
				return ProfitResult{}, err
			}
			override = v
		}
		products = []models.Product{p}
	} else {
		products = snap.Products
	}

	w := in.Window
	if w == "" {
		w = WindowAll
	}
	filtered := FilterOrders(snap.Orders, w, now)

	qty := make(map[string]int, len(products))
	revenue := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		revenue[p.ID.String()] = decimal.Zero
	}
	for _, o := range filtered {
		for _, li := range o.Items {
			if _, ok := revenue[li.ProductID]; !ok {
				continue
			}
			q := decimal.NewFromInt(int64(li.Quantity))
			qty[li.ProductID] += li.Quantity
			revenue[li.ProductID] = revenue[li.ProductID].Add(decimal.NewFromFloat(li.Price).Mul(q))
		}
	}

	res := ProfitResult{
		Mode:         mode,
		Window:       w,
		Lines:        make([]ProfitLine, 0, len(products)),
		CalculatedAt: now,
	}
	totalRevenue, totalProfit := decimal.Zero, decimal.Zero
	for _, p := range products {
		id := p.ID.String()
		cost := p.CostPrice
		if override >= 0 {
			cost = override
		}
		rev := revenue[id]
		profit := decimal.NewFromFloat(p.Price).Sub(decimal.NewFromFloat(cost)).Mul(decimal.NewFromInt(int64(qty[id])))

		res.Lines = append(res.Lines, ProfitLine{
			ProductID:    id,
			Name:         p.Name,
			SellingPrice: p.Price,
			CostPrice:    cost,
			QuantitySold: qty[id],
			Revenue:      rev.InexactFloat64(),
			Profit:       profit.InexactFloat64(),
			Margin:       margin(profit, rev),
		})
		totalRevenue = totalRevenue.Add(rev)
		totalProfit = totalProfit.Add(profit)
	}

	res.TotalRevenue = totalRevenue.InexactFloat64()
	res.TotalProfit = totalProfit.InexactFloat64()
	res.Margin = margin(totalProfit, totalRevenue)
	return res, nil
}

// margin is profit/revenue as a percentage, 0 when revenue is 0.
func margin(profit, revenue decimal.Decimal) float64 {
	if revenue.IsZero() {
		return 0
	}
	return profit.Div(revenue).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
}
