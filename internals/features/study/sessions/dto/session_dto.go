// file: internals/features/study/sessions/dto/session_dto.go
package dto

import (
	"strings"
	"time"

	model "studyhub_backend/internals/features/study/sessions/model"
)

/* =========================================================
   CREATE
========================================================= */

type CreateSessionRequest struct {
	SessionTitle       string `json:"session_title" validate:"required,max=160"`
	SessionSubject     string `json:"session_subject" validate:"required,max=80"`
	SessionDescription string `json:"session_description" validate:"required"`
	SessionTutorName   string `json:"session_tutor_name" validate:"required,max=100"`

	// Caller-supplied at creation; overwritten at approval time.
	SessionRegistrationFee float64 `json:"session_registration_fee" validate:"gte=0"`

	SessionRegistrationStart *time.Time `json:"session_registration_start" validate:"omitempty"`
	SessionRegistrationEnd   *time.Time `json:"session_registration_end" validate:"omitempty"`
	SessionClassStart        *time.Time `json:"session_class_start" validate:"omitempty"`
	SessionClassEnd          *time.Time `json:"session_class_end" validate:"omitempty"`
}

// ToModel builds the pending session owned by tutorEmail. Status and id
// are not caller-controllable.
func (r CreateSessionRequest) ToModel(tutorEmail string) *model.Session {
	return &model.Session{
		SessionTitle:             strings.TrimSpace(r.SessionTitle),
		SessionSubject:           strings.TrimSpace(r.SessionSubject),
		SessionDescription:       strings.TrimSpace(r.SessionDescription),
		SessionTutorEmail:        tutorEmail,
		SessionTutorName:         strings.TrimSpace(r.SessionTutorName),
		SessionRegistrationFee:   r.SessionRegistrationFee,
		SessionRegistrationStart: r.SessionRegistrationStart,
		SessionRegistrationEnd:   r.SessionRegistrationEnd,
		SessionClassStart:        r.SessionClassStart,
		SessionClassEnd:          r.SessionClassEnd,
	}
}

/* =========================================================
   APPROVE
========================================================= */

type ApproveSessionRequest struct {
	SessionRegistrationFee float64 `json:"session_registration_fee" validate:"gte=0"`
}
