// file: internals/features/study/sessions/repository/session_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"studyhub_backend/internals/constants"
	model "studyhub_backend/internals/features/study/sessions/model"
	"studyhub_backend/internals/helpers/apperr"
)

// columnFor maps the engine's semantic field names onto session columns.
var columnFor = map[string]string{
	"registration_fee": "session_registration_fee",
}

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *model.Session) error {
	// Every session starts pending, whatever the caller sent.
	s.SessionID = uuid.Nil
	s.SessionStatus = constants.StatusPending
	if err := r.DB.WithContext(ctx).Create(s).Error; err != nil {
		return apperr.Wrap(apperr.Internal, "Failed to create session", err)
	}
	return nil
}

func (r *SessionRepository) ByID(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	var s model.Session
	err := r.DB.WithContext(ctx).Where("session_id = ?", id).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "Session not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch session", err)
	}
	return &s, nil
}

func (r *SessionRepository) List(ctx context.Context, status string, limit, offset int) ([]model.Session, error) {
	q := r.DB.WithContext(ctx).Model(&model.Session{})
	if status != "" {
		q = q.Where("session_status = ?", status)
	}
	var out []model.Session
	err := q.Order("session_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch sessions", err)
	}
	return out, nil
}

func (r *SessionRepository) ByTutor(ctx context.Context, email string) ([]model.Session, error) {
	var out []model.Session
	err := r.DB.WithContext(ctx).
		Where("session_tutor_email = ?", email).
		Order("session_created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch tutor sessions", err)
	}
	return out, nil
}

// Transition is the conditional update backing the approval engine:
// match (id AND expected status), patch the new status in one statement.
func (r *SessionRepository) Transition(ctx context.Context, id uuid.UUID, fromStatus, toStatus string, fields map[string]interface{}) (int64, error) {
	updates := map[string]interface{}{"session_status": toStatus}
	for k, v := range fields {
		col, ok := columnFor[k]
		if !ok {
			return 0, apperr.Newf(apperr.Internal, "unknown session field %q", k)
		}
		updates[col] = v
	}

	res := r.DB.WithContext(ctx).Model(&model.Session{}).
		Where("session_id = ? AND session_status = ?", id, fromStatus).
		Updates(updates)
	if res.Error != nil {
		return 0, apperr.Wrap(apperr.Internal, "Failed to update session", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *SessionRepository) OwnerEmail(ctx context.Context, id uuid.UUID) (string, error) {
	var email string
	err := r.DB.WithContext(ctx).Model(&model.Session{}).
		Where("session_id = ?", id).
		Pluck("session_tutor_email", &email).Error
	if err != nil {
		return "", apperr.Wrap(apperr.Internal, "Failed to fetch session", err)
	}
	if email == "" {
		return "", apperr.New(apperr.NotFound, "Session not found")
	}
	return email, nil
}

// StatusAndTutor is the narrow read used by booking admission control.
func (r *SessionRepository) StatusAndTutor(ctx context.Context, id uuid.UUID) (status, tutorEmail string, err error) {
	var row struct {
		SessionStatus     string
		SessionTutorEmail string
	}
	res := r.DB.WithContext(ctx).Model(&model.Session{}).
		Select("session_status", "session_tutor_email").
		Where("session_id = ?", id).
		Take(&row)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return "", "", apperr.New(apperr.NotFound, "Session not found")
		}
		return "", "", apperr.Wrap(apperr.Internal, "Failed to fetch session", res.Error)
	}
	return row.SessionStatus, row.SessionTutorEmail, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Where("session_id = ?", id).Delete(&model.Session{})
	if res.Error != nil {
		return apperr.Wrap(apperr.Internal, "Failed to delete session", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "Session not found")
	}
	return nil
}

func (r *SessionRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Session{}).
		Where("session_status = ?", status).
		Count(&n).Error
	if err != nil {
		return 0, apperr.Wrap(apperr.Internal, "Failed to count sessions", err)
	}
	return n, nil
}

func (r *SessionRepository) CountByTutor(ctx context.Context, email string) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Session{}).
		Where("session_tutor_email = ?", email).
		Count(&n).Error
	if err != nil {
		return 0, apperr.Wrap(apperr.Internal, "Failed to count sessions", err)
	}
	return n, nil
}

func (r *SessionRepository) Total(ctx context.Context) (int64, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&model.Session{}).Count(&n).Error; err != nil {
		return 0, apperr.Wrap(apperr.Internal, "Failed to count sessions", err)
	}
	return n, nil
}
