package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub_backend/internals/constants"
	"studyhub_backend/internals/features/admin/service"
)

/* =========================================================
   Fakes
========================================================= */

type fixedTotal struct {
	n   int64
	err error
}

func (f fixedTotal) Total(context.Context) (int64, error) { return f.n, f.err }

// fakeSessionCounts projects the same numbers an approval run would
// leave behind: byStatus keyed by workflow status, byTutor by email.
type fakeSessionCounts struct {
	byStatus map[string]int64
	byTutor  map[string]int64
}

func (f fakeSessionCounts) Total(context.Context) (int64, error) {
	var sum int64
	for _, n := range f.byStatus {
		sum += n
	}
	return sum, nil
}

func (f fakeSessionCounts) CountByStatus(_ context.Context, status string) (int64, error) {
	return f.byStatus[status], nil
}

func (f fakeSessionCounts) CountByTutor(_ context.Context, email string) (int64, error) {
	return f.byTutor[email], nil
}

type fakeMaterialCounts struct {
	total   int64
	byTutor map[string]int64
}

func (f fakeMaterialCounts) Total(context.Context) (int64, error) { return f.total, nil }

func (f fakeMaterialCounts) CountByTutor(_ context.Context, email string) (int64, error) {
	return f.byTutor[email], nil
}

type fakeBookingCounts struct {
	total    int64
	students map[string]int64
}

func (f fakeBookingCounts) Total(context.Context) (int64, error) { return f.total, nil }

func (f fakeBookingCounts) DistinctStudentsOfTutor(_ context.Context, tutorEmail string) (int64, error) {
	return f.students[tutorEmail], nil
}

/* =========================================================
   Tests
========================================================= */

// From a pool of N+M+K pending sessions, N approvals and M rejections
// leave pending=K, approved=N, rejected=M, and the total untouched.
func TestAdminStats_StatusSplit(t *testing.T) {
	const (
		approved = 7 // N
		rejected = 4 // M
		pending  = 3 // K
	)

	svc := &service.StatsService{
		Users: fixedTotal{n: 12},
		Sessions: fakeSessionCounts{byStatus: map[string]int64{
			constants.StatusPending:  pending,
			constants.StatusApproved: approved,
			constants.StatusRejected: rejected,
		}},
		Materials:     fakeMaterialCounts{total: 5},
		Bookings:      fakeBookingCounts{total: 9},
		Reviews:       fixedTotal{n: 6},
		Notifications: fixedTotal{n: 11},
	}

	got, err := svc.AdminStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(pending), got.PendingSessions)
	assert.Equal(t, int64(approved), got.ApprovedSessions)
	assert.Equal(t, int64(rejected), got.RejectedSessions)
	assert.Equal(t, int64(pending+approved+rejected), got.TotalSessions)

	assert.Equal(t, int64(12), got.TotalUsers)
	assert.Equal(t, int64(5), got.TotalMaterials)
	assert.Equal(t, int64(9), got.TotalBookings)
	assert.Equal(t, int64(6), got.TotalReviews)
	assert.Equal(t, int64(11), got.TotalNotifications)
}

func TestAdminStats_CounterError(t *testing.T) {
	svc := &service.StatsService{
		Users:         fixedTotal{err: errors.New("connection reset")},
		Sessions:      fakeSessionCounts{},
		Materials:     fakeMaterialCounts{},
		Bookings:      fakeBookingCounts{},
		Reviews:       fixedTotal{},
		Notifications: fixedTotal{},
	}

	_, err := svc.AdminStats(context.Background())
	assert.Error(t, err)
}

func TestTutorStats(t *testing.T) {
	const tutor = "tutor@studyhub.io"

	svc := &service.StatsService{
		Users: fixedTotal{},
		Sessions: fakeSessionCounts{byTutor: map[string]int64{
			tutor: 3,
		}},
		Materials: fakeMaterialCounts{byTutor: map[string]int64{
			tutor: 8,
		}},
		Bookings: fakeBookingCounts{students: map[string]int64{
			tutor: 5,
		}},
		Reviews:       fixedTotal{},
		Notifications: fixedTotal{},
	}

	got, err := svc.TutorStats(context.Background(), tutor)
	require.NoError(t, err)
	assert.Equal(t, tutor, got.TutorEmail)
	assert.Equal(t, int64(3), got.SessionCount)
	assert.Equal(t, int64(8), got.MaterialCount)
	assert.Equal(t, int64(5), got.StudentCount)

	// tutor with no rows reads as zeros, not an error
	empty, err := svc.TutorStats(context.Background(), "nobody@studyhub.io")
	require.NoError(t, err)
	assert.Zero(t, empty.SessionCount)
	assert.Zero(t, empty.MaterialCount)
	assert.Zero(t, empty.StudentCount)
}
