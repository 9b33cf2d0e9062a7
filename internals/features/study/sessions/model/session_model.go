// file: internals/features/study/sessions/model/session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/*
sessions
- session_status: pending | approved | rejected, every row starts pending
- session_registration_fee is caller-supplied at creation and overwritten
  at approval time
- time window columns are informational, not enforced against each other
*/

type Session struct {
	SessionID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:session_id" json:"session_id"`
	SessionTitle       string    `gorm:"type:varchar(160);not null;column:session_title" json:"session_title"`
	SessionSubject     string    `gorm:"type:varchar(80);not null;column:session_subject" json:"session_subject"`
	SessionDescription string    `gorm:"type:text;not null;column:session_description" json:"session_description"`

	// Owner reference (weak, by email)
	SessionTutorEmail string `gorm:"type:varchar(255);not null;index:idx_sessions_tutor_email;column:session_tutor_email" json:"session_tutor_email"`
	SessionTutorName  string `gorm:"type:varchar(100);not null;column:session_tutor_name" json:"session_tutor_name"`

	SessionStatus          string  `gorm:"type:varchar(20);not null;default:'pending';index:idx_sessions_status;column:session_status" json:"session_status"`
	SessionRegistrationFee float64 `gorm:"type:numeric(12,2);not null;default:0;column:session_registration_fee" json:"session_registration_fee"`

	SessionRegistrationStart *time.Time `gorm:"type:timestamptz;column:session_registration_start" json:"session_registration_start,omitempty"`
	SessionRegistrationEnd   *time.Time `gorm:"type:timestamptz;column:session_registration_end" json:"session_registration_end,omitempty"`
	SessionClassStart        *time.Time `gorm:"type:timestamptz;column:session_class_start" json:"session_class_start,omitempty"`
	SessionClassEnd          *time.Time `gorm:"type:timestamptz;column:session_class_end" json:"session_class_end,omitempty"`

	SessionCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:session_created_at" json:"session_created_at"`
}

func (Session) TableName() string { return "sessions" }
