// file: internals/features/admin/service/stats_service.go
package service

import (
	"context"

	"studyhub_backend/internals/constants"
)

// The stats are pure projections over the same rows the workflow
// mutates; there is no separate cache to drift out of sync.

type TotalCounter interface {
	Total(ctx context.Context) (int64, error)
}

type SessionCounter interface {
	TotalCounter
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountByTutor(ctx context.Context, email string) (int64, error)
}

type MaterialCounter interface {
	TotalCounter
	CountByTutor(ctx context.Context, email string) (int64, error)
}

type BookingCounter interface {
	TotalCounter
	DistinctStudentsOfTutor(ctx context.Context, tutorEmail string) (int64, error)
}

type AdminStats struct {
	TotalUsers         int64 `json:"total_users"`
	TotalSessions      int64 `json:"total_sessions"`
	PendingSessions    int64 `json:"pending_sessions"`
	ApprovedSessions   int64 `json:"approved_sessions"`
	RejectedSessions   int64 `json:"rejected_sessions"`
	TotalBookings      int64 `json:"total_bookings"`
	TotalReviews       int64 `json:"total_reviews"`
	TotalMaterials     int64 `json:"total_materials"`
	TotalNotifications int64 `json:"total_notifications"`
}

type TutorStats struct {
	TutorEmail    string `json:"tutor_email"`
	SessionCount  int64  `json:"session_count"`
	MaterialCount int64  `json:"material_count"`
	StudentCount  int64  `json:"student_count"`
}

type StatsService struct {
	Users         TotalCounter
	Sessions      SessionCounter
	Materials     MaterialCounter
	Bookings      BookingCounter
	Reviews       TotalCounter
	Notifications TotalCounter
}

func (s *StatsService) AdminStats(ctx context.Context) (*AdminStats, error) {
	out := &AdminStats{}
	var err error

	if out.TotalUsers, err = s.Users.Total(ctx); err != nil {
		return nil, err
	}
	if out.TotalSessions, err = s.Sessions.Total(ctx); err != nil {
		return nil, err
	}
	if out.PendingSessions, err = s.Sessions.CountByStatus(ctx, constants.StatusPending); err != nil {
		return nil, err
	}
	if out.ApprovedSessions, err = s.Sessions.CountByStatus(ctx, constants.StatusApproved); err != nil {
		return nil, err
	}
	if out.RejectedSessions, err = s.Sessions.CountByStatus(ctx, constants.StatusRejected); err != nil {
		return nil, err
	}
	if out.TotalBookings, err = s.Bookings.Total(ctx); err != nil {
		return nil, err
	}
	if out.TotalReviews, err = s.Reviews.Total(ctx); err != nil {
		return nil, err
	}
	if out.TotalMaterials, err = s.Materials.Total(ctx); err != nil {
		return nil, err
	}
	if out.TotalNotifications, err = s.Notifications.Total(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *StatsService) TutorStats(ctx context.Context, tutorEmail string) (*TutorStats, error) {
	out := &TutorStats{TutorEmail: tutorEmail}
	var err error

	if out.SessionCount, err = s.Sessions.CountByTutor(ctx, tutorEmail); err != nil {
		return nil, err
	}
	if out.MaterialCount, err = s.Materials.CountByTutor(ctx, tutorEmail); err != nil {
		return nil, err
	}
	if out.StudentCount, err = s.Bookings.DistinctStudentsOfTutor(ctx, tutorEmail); err != nil {
		return nil, err
	}
	return out, nil
}
