package approval_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub_backend/internals/constants"
	bookingModel "studyhub_backend/internals/features/study/bookings/model"
	bookingService "studyhub_backend/internals/features/study/bookings/service"
	"studyhub_backend/internals/helpers/apperr"
)

// StatusAndTutor lets memStore double as the booking admission gate, so
// the scenarios below run against one shared session state.
func (s *memStore) StatusAndTutor(_ context.Context, id uuid.UUID) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[id]
	if !ok {
		return "", "", apperr.New(apperr.NotFound, "Session not found")
	}
	return r.status, r.owner, nil
}

type pairBookings struct {
	pairs map[string]struct{}
}

func (b *pairBookings) Create(_ context.Context, bk *bookingModel.Booking) error {
	key := bk.BookingSessionID.String() + "|" + bk.BookingStudentEmail
	if _, dup := b.pairs[key]; dup {
		return apperr.New(apperr.Conflict, "You have already booked this session")
	}
	b.pairs[key] = struct{}{}
	return nil
}

// Full happy path: create pending -> admin approves with fee 50 ->
// second approve NotFound -> student books -> same student books again
// Conflict.
func TestWorkflowScenario_ApproveAndBook(t *testing.T) {
	ctx := context.Background()
	engine, sessions, _, _ := newEngine()
	bookings := bookingService.NewBookingService(sessions, &pairBookings{pairs: map[string]struct{}{}})

	id := sessions.add(tutor.Email, constants.StatusPending)
	assert.Equal(t, constants.StatusPending, sessions.get(id).status)

	require.NoError(t, engine.ApproveSession(ctx, admin, id, 50))
	got := sessions.get(id)
	assert.Equal(t, constants.StatusApproved, got.status)
	assert.Equal(t, 50.0, got.fee)

	err := engine.ApproveSession(ctx, admin, id, 50)
	assert.True(t, apperr.Is(err, apperr.NotFound))

	_, err = bookings.Book(ctx, "student@studyhub.io", id)
	require.NoError(t, err)

	_, err = bookings.Book(ctx, "student@studyhub.io", id)
	assert.True(t, apperr.Is(err, apperr.Conflict))
}

// Reject -> owner resubmits -> booking while pending fails NotFound.
func TestWorkflowScenario_RejectResubmit(t *testing.T) {
	ctx := context.Background()
	engine, sessions, _, _ := newEngine()
	bookings := bookingService.NewBookingService(sessions, &pairBookings{pairs: map[string]struct{}{}})

	id := sessions.add(tutor.Email, constants.StatusPending)

	require.NoError(t, engine.RejectSession(ctx, admin, id))
	assert.Equal(t, constants.StatusRejected, sessions.get(id).status)

	require.NoError(t, engine.ResubmitSession(ctx, tutor, id))
	assert.Equal(t, constants.StatusPending, sessions.get(id).status)

	_, err := bookings.Book(ctx, "student@studyhub.io", id)
	assert.True(t, apperr.Is(err, apperr.NotFound))
}
