package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog records one mutating admin request.
type ActivityLog struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Actor        string         `json:"actor" gorm:"not null"`
	Action       string         `json:"action" gorm:"not null;index"`                                             // created_product, updated_order, ...
	ResourceType string         `json:"resource_type" gorm:"not null;index:idx_activity_resource_date,sort:desc"` // product, collection, order, media
	ResourceID   string         `json:"resource_id" gorm:"index"`
	Changes      datatypes.JSON `json:"changes" gorm:"type:jsonb"` // request payload for creates/updates
	Status       string         `json:"status" gorm:"not null"`
	StatusCode   int            `json:"status_code"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime;index:idx_activity_resource_date,sort:desc"`
}

func (al *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.Must(uuid.NewV7())
	}
	if al.Status == "" {
		al.Status = StatusSuccess
	}
	return nil
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

const (
	ResourceTypeProduct    = "product"
	ResourceTypeCollection = "collection"
	ResourceTypeOrder      = "order"
	ResourceTypeMedia      = "media"
	ResourceTypeAnalytics  = "analytics"

	StatusSuccess = "success"
	StatusFailed  = "failed"
)
