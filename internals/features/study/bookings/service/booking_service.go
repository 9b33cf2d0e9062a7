// file: internals/features/study/bookings/service/booking_service.go
package service

import (
	"context"

	"github.com/google/uuid"

	"studyhub_backend/internals/constants"
	model "studyhub_backend/internals/features/study/bookings/model"
	"studyhub_backend/internals/helpers/apperr"
)

// SessionGate is the read side of booking admission control.
type SessionGate interface {
	StatusAndTutor(ctx context.Context, id uuid.UUID) (status, tutorEmail string, err error)
}

type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
}

// BookingService admits bookings against approved sessions only.
//
// Admission is a read-then-insert pair, not one atomic statement: a
// session rejected between the status read and the insert still gets the
// booking. Known race, accepted as-is (see DESIGN.md). The duplicate
// check, by contrast, is authoritative: the unique (session, student)
// index rejects the second insert.
type BookingService struct {
	Sessions SessionGate
	Bookings BookingStore
}

func NewBookingService(sessions SessionGate, bookings BookingStore) *BookingService {
	return &BookingService{Sessions: sessions, Bookings: bookings}
}

func (s *BookingService) Book(ctx context.Context, studentEmail string, sessionID uuid.UUID) (*model.Booking, error) {
	status, tutorEmail, err := s.Sessions.StatusAndTutor(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if status != constants.StatusApproved {
		// pending and rejected sessions are invisible to booking
		return nil, apperr.New(apperr.NotFound, "Session is not open for booking")
	}

	b := &model.Booking{
		BookingSessionID:    sessionID,
		BookingStudentEmail: studentEmail,
		BookingTutorEmail:   tutorEmail,
		BookingStatus:       "booked",
	}
	if err := s.Bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
