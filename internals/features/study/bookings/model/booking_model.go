// file: internals/features/study/bookings/model/booking_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/*
bookings
- at most one booking per (session, student); the unique index is the
  authoritative duplicate check
*/

type Booking struct {
	BookingID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:booking_id" json:"booking_id"`
	BookingSessionID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_bookings_session_student;column:booking_session_id" json:"booking_session_id"`
	BookingStudentEmail string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_bookings_session_student;column:booking_student_email" json:"booking_student_email"`
	BookingTutorEmail   string    `gorm:"type:varchar(255);not null;column:booking_tutor_email" json:"booking_tutor_email"`
	BookingStatus       string    `gorm:"type:varchar(20);not null;default:'booked';column:booking_status" json:"booking_status"`
	BookingBookedAt     time.Time `gorm:"type:timestamptz;not null;default:now();column:booking_booked_at" json:"booking_booked_at"`
}

func (Booking) TableName() string { return "bookings" }
