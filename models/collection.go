package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Collection groups products for merchandising ("Bridal", "Summer Gold").
type Collection struct {
	ID          uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string       `json:"name" gorm:"not null"`
	Slug        string       `json:"slug" gorm:"not null;uniqueIndex"`
	Description string       `json:"description" gorm:"not null;default:''"`
	Image       ProductImage `json:"image" gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt   time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

func (c *Collection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Collection) TableName() string {
	return "collections"
}

type CollectionRequest struct {
	Name        string       `json:"name" binding:"required" example:"Bridal"`
	Slug        string       `json:"slug" binding:"omitempty,max=80" example:"bridal"`
	Description string       `json:"description"`
	Image       ProductImage `json:"image"`
}

type UpdateCollectionRequest struct {
	Name        *string       `json:"name"`
	Slug        *string       `json:"slug" binding:"omitempty,max=80"`
	Description *string       `json:"description"`
	Image       *ProductImage `json:"image"`
}

type CollectionWithProducts struct {
	Collection
	Products []StorefrontProduct `json:"products"`
}
