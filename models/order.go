package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "Pending"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
	OrderStatusCanceled  = "Canceled"
)

var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCanceled,
}

func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// LineItem is frozen at order time. Price is the unit price the customer
// paid, independent of the product's current price.
type LineItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"image_url,omitempty"`
}

func (li LineItem) Subtotal() float64 {
	return li.Price * float64(li.Quantity)
}

type ShippingAddress struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

func (a ShippingAddress) String() string {
	parts := make([]string, 0, 6)
	for _, p := range []string{a.Line1, a.Line2, a.City, a.State, a.PostalCode, a.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Order is stored as one row with its line items and address embedded
// as JSONB documents.
type Order struct {
	ID              uuid.UUID                           `json:"id" gorm:"type:uuid;primaryKey"`
	OrderNumber     string                              `json:"order_number" gorm:"not null;uniqueIndex"`
	CustomerName    string                              `json:"customer_name" gorm:"not null;default:''"`
	CustomerEmail   string                              `json:"customer_email" gorm:"not null;index"`
	ShippingAddress datatypes.JSONType[ShippingAddress] `json:"shipping_address" gorm:"type:jsonb"`
	Items           datatypes.JSONSlice[LineItem]       `json:"items" gorm:"type:jsonb;not null"`
	TotalAmount     float64                             `json:"total_amount" gorm:"type:numeric(12,2);not null"`
	Status          string                              `json:"status" gorm:"not null;default:'Pending';index"`
	CreatedAt       time.Time                           `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time                           `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - UUID v7, order number and default status
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	if o.OrderNumber == "" {
		o.OrderNumber = NewOrderNumber(o.ID, time.Now())
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	return nil
}

func (Order) TableName() string {
	return "orders"
}

// NewOrderNumber formats ORD-<year>-<last 8 hex digits of the id>.
func NewOrderNumber(id uuid.UUID, now time.Time) string {
	hex := strings.ReplaceAll(id.String(), "-", "")
	return fmt.Sprintf("ORD-%d-%s", now.Year(), strings.ToUpper(hex[len(hex)-8:]))
}

// ItemsTotal sums the line subtotals.
func (o Order) ItemsTotal() float64 {
	total := 0.0
	for _, li := range o.Items {
		total += li.Subtotal()
	}
	return total
}

func (o Order) ItemCount() int {
	n := 0
	for _, li := range o.Items {
		n += li.Quantity
	}
	return n
}

// ═══════════════════════════════════════════════════════════
// Request / Response Models
// ═══════════════════════════════════════════════════════════

// CreateOrderRequest is the checkout payload. When Items is empty the
// caller's cart is used.
type CreateOrderRequest struct {
	CustomerName    string           `json:"customer_name" binding:"required"`
	CustomerEmail   string           `json:"customer_email" binding:"omitempty,email"`
	ShippingAddress ShippingAddress  `json:"shipping_address"`
	Items           []OrderItemInput `json:"items" binding:"omitempty,dive"`
}

type OrderItemInput struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,order_status" example:"Shipped"`
}

type OrderConfirmationEmailRequest struct {
	OrderID string `json:"order_id" binding:"required,uuid"`
}

type CreateOrderResponse struct {
	Order     Order `json:"order"`
	EmailSent bool  `json:"email_sent"`
}

type OrderListRow struct {
	ID            uuid.UUID `json:"id"`
	OrderNumber   string    `json:"order_number"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	ItemCount     int       `json:"item_count"`
	TotalAmount   float64   `json:"total_amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func (o Order) ToListRow() OrderListRow {
	return OrderListRow{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		ItemCount:     o.ItemCount(),
		TotalAmount:   o.TotalAmount,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
	}
}
