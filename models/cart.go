package models

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid" example:"0190f1c2-7b7e-7c1a-9d1e-2f3a4b5c6d7e"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1" example:"1"`
}

// UpdateCartItemRequest sets an absolute quantity; zero or less removes
// the item.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required" example:"2"`
}
