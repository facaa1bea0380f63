package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/cart"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

var ErrUnknownProduct = errors.New("unknown product")

// CartItemsToInputs turns the stored cart into checkout inputs. Snapshot
// prices in the cart are ignored; checkout always reprices.
func CartItemsToInputs(c *cart.Cart) []models.OrderItemInput {
	inputs := make([]models.OrderItemInput, 0, len(c.Items))
	for _, it := range c.Items {
		inputs = append(inputs, models.OrderItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return inputs
}

// ProductIDs returns the distinct product ids of the inputs in first-seen
// order.
func ProductIDs(inputs []models.OrderItemInput) []string {
	seen := make(map[string]bool, len(inputs))
	ids := make([]string, 0, len(inputs))
	for _, in := range inputs {
		if !seen[in.ProductID] {
			seen[in.ProductID] = true
			ids = append(ids, in.ProductID)
		}
	}
	return ids
}

// PriceLineItems snapshots name, image and the current catalog price into
// line items. Repeated product ids are merged. The total is the sum of
// line subtotals rounded to cents.
func PriceLineItems(inputs []models.OrderItemInput, products []models.Product) ([]models.LineItem, float64, error) {
	if len(inputs) == 0 {
		return nil, 0, cart.ErrEmptyCart
	}

	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID.String()] = p
	}

	index := make(map[string]int, len(inputs))
	items := make([]models.LineItem, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity < 1 {
			return nil, 0, cart.ErrInvalidQuantity
		}
		p, ok := byID[in.ProductID]
		if !ok {
			return nil, 0, fmt.Errorf("%w: %s", ErrUnknownProduct, in.ProductID)
		}
		if i, dup := index[in.ProductID]; dup {
			items[i].Quantity += in.Quantity
			continue
		}
		index[in.ProductID] = len(items)
		items = append(items, models.LineItem{
			ProductID: in.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  in.Quantity,
			ImageURL:  p.Image.URL,
		})
	}

	total := decimal.Zero
	for _, li := range items {
		total = total.Add(decimal.NewFromFloat(li.Price).Mul(decimal.NewFromInt(int64(li.Quantity))))
	}
	return items, total.Round(2).InexactFloat64(), nil
}
