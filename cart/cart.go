// Package cart holds the shopping cart and its Redis persistence.
package cart

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Item is one cart entry. Price and Name are snapshots taken when the item
// was added; checkout re-reads current prices.
type Item struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"image_url,omitempty"`
}

// Cart keeps insertion order; product ids are unique within it.
type Cart struct {
	ID        string    `json:"id"`
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}

func New(id string) *Cart {
	return &Cart{ID: id, Items: []Item{}}
}

func (c *Cart) indexOf(productID string) int {
	for i, it := range c.Items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}

// Add appends the item or, when the product is already present, adds to
// its quantity and refreshes the snapshots.
func (c *Cart) Add(item Item) error {
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if i := c.indexOf(item.ProductID); i >= 0 {
		existing := c.Items[i]
		item.Quantity += existing.Quantity
		c.Items[i] = item
		return nil
	}
	c.Items = append(c.Items, item)
	return nil
}

// Update sets the quantity of an entry. A non-positive quantity removes it.
// It reports whether the product was in the cart.
func (c *Cart) Update(productID string, quantity int) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	if quantity <= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		return true
	}
	c.Items[i].Quantity = quantity
	return true
}

func (c *Cart) Remove(productID string) bool {
	return c.Update(productID, 0)
}

func (c *Cart) Clear() {
	c.Items = []Item{}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// Total is the sum of snapshot price × quantity.
func (c *Cart) Total() float64 {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total.InexactFloat64()
}

// View is the JSON shape returned to the storefront.
type View struct {
	ID    string  `json:"id"`
	Items []Item  `json:"items"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

func (c *Cart) View() View {
	items := c.Items
	if items == nil {
		items = []Item{}
	}
	return View{ID: c.ID, Items: items, Count: c.Count(), Total: c.Total()}
}
