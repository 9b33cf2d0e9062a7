// file: internals/features/admin/controller/stats_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyhub_backend/internals/features/admin/service"
	bookingRepo "studyhub_backend/internals/features/study/bookings/repository"
	materialRepo "studyhub_backend/internals/features/study/materials/repository"
	notificationRepo "studyhub_backend/internals/features/study/notifications/repository"
	reviewRepo "studyhub_backend/internals/features/study/reviews/repository"
	sessionRepo "studyhub_backend/internals/features/study/sessions/repository"
	userRepo "studyhub_backend/internals/features/users/user/repository"
	helper "studyhub_backend/internals/helpers"
)

type StatsController struct {
	Service *service.StatsService
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{
		Service: &service.StatsService{
			Users:         userRepo.NewUserRepository(db),
			Sessions:      sessionRepo.NewSessionRepository(db),
			Materials:     materialRepo.NewMaterialRepository(db),
			Bookings:      bookingRepo.NewBookingRepository(db),
			Reviews:       reviewRepo.NewReviewRepository(db),
			Notifications: notificationRepo.NewNotificationRepository(db),
		},
	}
}

// AdminStats is the dashboard projection: entity totals plus per-status
// session counts.
func (ctl *StatsController) AdminStats(c *fiber.Ctx) error {
	stats, err := ctl.Service.AdminStats(c.UserContext())
	if err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "Admin stats fetched", stats)
}

func (ctl *StatsController) TutorStats(c *fiber.Ctx) error {
	email := helper.NormalizeEmail(c.Params("email"))
	stats, err := ctl.Service.TutorStats(c.UserContext(), email)
	if err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "Tutor stats fetched", stats)
}
