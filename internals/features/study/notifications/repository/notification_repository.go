// file: internals/features/study/notifications/repository/notification_repository.go
package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"studyhub_backend/internals/features/study/approval"
	model "studyhub_backend/internals/features/study/notifications/model"
	"studyhub_backend/internals/helpers/apperr"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

// Notify implements approval.Notifier.
func (r *NotificationRepository) Notify(ctx context.Context, n approval.Notice) error {
	var payload datatypes.JSON
	if n.Payload != nil {
		raw, err := json.Marshal(n.Payload)
		if err != nil {
			return apperr.Wrap(apperr.Internal, "Failed to encode notification payload", err)
		}
		payload = datatypes.JSON(raw)
	}

	rec := model.Notification{
		NotificationRecipientEmail: n.RecipientEmail,
		NotificationKind:           n.Kind,
		NotificationMessage:        n.Message,
		NotificationPayload:        payload,
	}
	if err := r.DB.WithContext(ctx).Create(&rec).Error; err != nil {
		return apperr.Wrap(apperr.Internal, "Failed to create notification", err)
	}
	return nil
}

func (r *NotificationRepository) ByRecipient(ctx context.Context, email string, limit, offset int) ([]model.Notification, error) {
	var out []model.Notification
	err := r.DB.WithContext(ctx).
		Where("notification_recipient_email = ?", email).
		Order("notification_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch notifications", err)
	}
	return out, nil
}

// MarkRead is conditional on recipient and unread state; zero rows means
// the notification is absent, someone else's, or already read.
func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID, recipientEmail string) error {
	res := r.DB.WithContext(ctx).Model(&model.Notification{}).
		Where("notification_id = ? AND notification_recipient_email = ? AND notification_read = false", id, recipientEmail).
		Update("notification_read", true)
	if res.Error != nil {
		return apperr.Wrap(apperr.Internal, "Failed to update notification", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "Notification not found")
	}
	return nil
}

func (r *NotificationRepository) Total(ctx context.Context) (int64, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&model.Notification{}).Count(&n).Error; err != nil {
		return 0, apperr.Wrap(apperr.Internal, "Failed to count notifications", err)
	}
	return n, nil
}
