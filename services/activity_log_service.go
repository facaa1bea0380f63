package services

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

// ActivityRecorder persists admin activity entries.
type ActivityRecorder interface {
	Record(ctx context.Context, entry models.ActivityLog) error
}

type GormActivityRecorder struct {
	db *gorm.DB
}

func NewGormActivityRecorder(db *gorm.DB) *GormActivityRecorder {
	return &GormActivityRecorder{db: db}
}

func (r *GormActivityRecorder) Record(ctx context.Context, entry models.ActivityLog) error {
	return r.db.WithContext(ctx).Create(&entry).Error
}

// LogActivityRequest contains the parameters for logging an activity
type LogActivityRequest struct {
	Actor        string
	Action       string // created_product, updated_order, ...
	ResourceType string
	ResourceID   string
	Changes      any
	StatusCode   int
	IPAddress    string
	UserAgent    string
}

var activityRecorder ActivityRecorder

func InitActivityRecorder(db *gorm.DB) {
	activityRecorder = NewGormActivityRecorder(db)
}

// SetActivityRecorder replaces the recorder. Tests use it to inject fakes.
func SetActivityRecorder(r ActivityRecorder) {
	activityRecorder = r
}

// LogActivity writes one entry. Failures are logged and swallowed so
// activity logging never fails the admin request.
func LogActivity(ctx context.Context, req LogActivityRequest) {
	if activityRecorder == nil {
		return
	}

	var changes []byte
	if req.Changes != nil {
		data, err := json.Marshal(req.Changes)
		if err != nil {
			log.Warn().Err(err).Str("op", "activity-log").Msg("failed to marshal changes")
		} else {
			changes = data
		}
	}

	status := models.StatusSuccess
	if req.StatusCode >= 400 {
		status = models.StatusFailed
	}

	entry := models.ActivityLog{
		Actor:        req.Actor,
		Action:       req.Action,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		Changes:      changes,
		Status:       status,
		StatusCode:   req.StatusCode,
		IPAddress:    req.IPAddress,
		UserAgent:    req.UserAgent,
	}
	if err := activityRecorder.Record(ctx, entry); err != nil {
		log.Error().Err(err).Str("op", "activity-log").Str("action", req.Action).Msg("failed to record activity")
	}
}
