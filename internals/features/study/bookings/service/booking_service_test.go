package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub_backend/internals/constants"
	model "studyhub_backend/internals/features/study/bookings/model"
	"studyhub_backend/internals/features/study/bookings/service"
	"studyhub_backend/internals/helpers/apperr"
)

/* =========================================================
   Fakes
========================================================= */

type sessionRow struct {
	status string
	tutor  string
}

type fakeSessions struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*sessionRow
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{rows: map[uuid.UUID]*sessionRow{}}
}

func (f *fakeSessions) add(status, tutor string) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	f.rows[id] = &sessionRow{status: status, tutor: tutor}
	return id
}

func (f *fakeSessions) setStatus(id uuid.UUID, status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[id].status = status
}

func (f *fakeSessions) StatusAndTutor(_ context.Context, id uuid.UUID) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rows[id]
	if !ok {
		return "", "", apperr.New(apperr.NotFound, "Session not found")
	}
	return r.status, r.tutor, nil
}

// fakeBookings enforces the unique (session, student) pair the way the
// database index does.
type fakeBookings struct {
	mu    sync.Mutex
	pairs map[string]struct{}
}

func newFakeBookings() *fakeBookings {
	return &fakeBookings{pairs: map[string]struct{}{}}
}

func (f *fakeBookings) Create(_ context.Context, b *model.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := b.BookingSessionID.String() + "|" + b.BookingStudentEmail
	if _, dup := f.pairs[key]; dup {
		return apperr.New(apperr.Conflict, "You have already booked this session")
	}
	f.pairs[key] = struct{}{}
	b.BookingID = uuid.New()
	return nil
}

const (
	studentEmail = "student@studyhub.io"
	tutorEmail   = "tutor@studyhub.io"
)

/* =========================================================
   Admission control
========================================================= */

func TestBook(t *testing.T) {
	t.Run("ApprovedSession_Succeeds", func(t *testing.T) {
		sessions := newFakeSessions()
		svc := service.NewBookingService(sessions, newFakeBookings())
		id := sessions.add(constants.StatusApproved, tutorEmail)

		b, err := svc.Book(context.Background(), studentEmail, id)
		require.NoError(t, err)
		assert.Equal(t, id, b.BookingSessionID)
		assert.Equal(t, studentEmail, b.BookingStudentEmail)
		assert.Equal(t, tutorEmail, b.BookingTutorEmail)
	})

	t.Run("PendingSession_NotFound", func(t *testing.T) {
		sessions := newFakeSessions()
		svc := service.NewBookingService(sessions, newFakeBookings())
		id := sessions.add(constants.StatusPending, tutorEmail)

		_, err := svc.Book(context.Background(), studentEmail, id)
		assert.True(t, apperr.Is(err, apperr.NotFound))
	})

	t.Run("RejectedSession_NotFound", func(t *testing.T) {
		sessions := newFakeSessions()
		svc := service.NewBookingService(sessions, newFakeBookings())
		id := sessions.add(constants.StatusRejected, tutorEmail)

		_, err := svc.Book(context.Background(), studentEmail, id)
		assert.True(t, apperr.Is(err, apperr.NotFound))
	})

	t.Run("UnknownSession_NotFound", func(t *testing.T) {
		svc := service.NewBookingService(newFakeSessions(), newFakeBookings())

		_, err := svc.Book(context.Background(), studentEmail, uuid.New())
		assert.True(t, apperr.Is(err, apperr.NotFound))
	})

	t.Run("SecondBookingSamePair_Conflict", func(t *testing.T) {
		sessions := newFakeSessions()
		svc := service.NewBookingService(sessions, newFakeBookings())
		id := sessions.add(constants.StatusApproved, tutorEmail)

		_, err := svc.Book(context.Background(), studentEmail, id)
		require.NoError(t, err)

		_, err = svc.Book(context.Background(), studentEmail, id)
		assert.True(t, apperr.Is(err, apperr.Conflict))
	})

	t.Run("DifferentStudentsSameSession_BothSucceed", func(t *testing.T) {
		sessions := newFakeSessions()
		svc := service.NewBookingService(sessions, newFakeBookings())
		id := sessions.add(constants.StatusApproved, tutorEmail)

		_, err := svc.Book(context.Background(), studentEmail, id)
		require.NoError(t, err)
		_, err = svc.Book(context.Background(), "other@studyhub.io", id)
		require.NoError(t, err)
	})
}

// Admission is read-then-insert, not atomic. A session rejected between
// the status read and the insert still receives the booking. This is
// the accepted race documented in DESIGN.md, pinned here so a future
// "fix" is a conscious decision rather than an accident.
func TestBook_AdmissionRaceIsNonAtomic(t *testing.T) {
	sessions := newFakeSessions()
	bookings := newFakeBookings()
	id := sessions.add(constants.StatusApproved, tutorEmail)

	// gate that flips the session to rejected after the status read,
	// inside the race window
	raceGate := statusFlipGate{inner: sessions, flipTo: constants.StatusRejected, id: id}
	svc := service.NewBookingService(raceGate, bookings)

	b, err := svc.Book(context.Background(), studentEmail, id)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, b.BookingID)

	// the session really was rejected before the insert landed
	status, _, _ := sessions.StatusAndTutor(context.Background(), id)
	assert.Equal(t, constants.StatusRejected, status)
}

type statusFlipGate struct {
	inner  *fakeSessions
	flipTo string
	id     uuid.UUID
}

func (g statusFlipGate) StatusAndTutor(ctx context.Context, id uuid.UUID) (string, string, error) {
	status, tutor, err := g.inner.StatusAndTutor(ctx, id)
	if err == nil && id == g.id {
		g.inner.setStatus(id, g.flipTo)
	}
	return status, tutor, err
}
