// file: internals/features/study/notifications/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// notifications: written on approval decisions; payload keeps the raw
// decision context (entity id, new status, fee) as JSONB.
type Notification struct {
	NotificationID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:notification_id" json:"notification_id"`
	NotificationRecipientEmail string         `gorm:"type:varchar(255);not null;index:idx_notifications_recipient;column:notification_recipient_email" json:"notification_recipient_email"`
	NotificationKind           string         `gorm:"type:varchar(40);not null;column:notification_kind" json:"notification_kind"`
	NotificationMessage        string         `gorm:"type:text;not null;column:notification_message" json:"notification_message"`
	NotificationPayload        datatypes.JSON `gorm:"type:jsonb;column:notification_payload" json:"notification_payload,omitempty"`
	NotificationRead           bool           `gorm:"type:boolean;not null;default:false;column:notification_read" json:"notification_read"`
	NotificationCreatedAt      time.Time      `gorm:"type:timestamptz;not null;default:now();column:notification_created_at" json:"notification_created_at"`
}

func (Notification) TableName() string { return "notifications" }
