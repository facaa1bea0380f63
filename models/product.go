package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Types
// ═══════════════════════════════════════════════════════════

// ProductImage is a media-host reference: the public URL plus the
// handle needed to delete the asset later.
type ProductImage struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id,omitempty"`
}

func (m *ProductImage) Scan(value interface{}) error {
	if value == nil {
		*m = ProductImage{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan ProductImage")
	}
	return json.Unmarshal(bytes, m)
}

func (m ProductImage) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// ═══════════════════════════════════════════════════════════
// Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID           uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string       `json:"name" gorm:"not null;index"`
	Description  string       `json:"description" gorm:"not null;default:''"`
	Price        float64      `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	CostPrice    float64      `json:"cost_price" gorm:"type:numeric(12,2);not null;default:0;check:cost_price >= 0"`
	Category     string       `json:"category" gorm:"not null;index"`
	CollectionID *uuid.UUID   `json:"collection_id,omitempty" gorm:"type:uuid;index"`
	Image        ProductImage `json:"image" gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt    time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Name         string       `json:"name" binding:"required" example:"Aurora Pendant"`
	Description  string       `json:"description" example:"18k gold pendant with a single pearl"`
	Price        float64      `json:"price" binding:"required,gt=0" example:"249.00"`
	CostPrice    *float64     `json:"cost_price" binding:"omitempty,min=0" example:"95.00"`
	Category     string       `json:"category" binding:"required" example:"Necklaces"`
	CollectionID *uuid.UUID   `json:"collection_id"`
	Image        ProductImage `json:"image"`
}

type UpdateProductRequest struct {
	Name         *string       `json:"name"`
	Description  *string       `json:"description"`
	Price        *float64      `json:"price" binding:"omitempty,gt=0"`
	CostPrice    *float64      `json:"cost_price" binding:"omitempty,min=0"`
	Category     *string       `json:"category"`
	CollectionID OptionalUUID  `json:"collection_id" swaggertype:"string"`
	Image        *ProductImage `json:"image"`
}

// OptionalUUID tells an absent JSON field apart from an explicit null.
// Set is true whenever the field was present; a null leaves ID nil.
type OptionalUUID struct {
	Set bool
	ID  *uuid.UUID
}

func (o *OptionalUUID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.ID = nil
		return nil
	}
	var id uuid.UUID
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	o.ID = &id
	return nil
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// StorefrontProduct is the public projection of a product; cost data
// never leaves the admin surface.
type StorefrontProduct struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Price        float64    `json:"price"`
	Category     string     `json:"category"`
	CollectionID *uuid.UUID `json:"collection_id,omitempty"`
	ImageURL     string     `json:"image_url"`
}

func (p Product) ToStorefront() StorefrontProduct {
	return StorefrontProduct{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Category:     p.Category,
		CollectionID: p.CollectionID,
		ImageURL:     p.Image.URL,
	}
}

func ToStorefrontProducts(products []Product) []StorefrontProduct {
	out := make([]StorefrontProduct, 0, len(products))
	for _, p := range products {
		out = append(out, p.ToStorefront())
	}
	return out
}
