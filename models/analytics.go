package models

// ProfitCalculationRequest drives the detailed profit calculator.
// CostPrice is kept as raw text so malformed input can be reported
// instead of failing JSON binding.
type ProfitCalculationRequest struct {
	Mode      string `json:"mode" binding:"omitempty,oneof=single all" example:"single"`
	ProductID string `json:"product_id" example:"0190f5d2-0000-7000-8000-000000000001"`
	CostPrice string `json:"cost_price" example:"70"`
	Window    string `json:"window" example:"month"`
}
