// file: internals/features/study/notifications/controller/notification_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	repo "studyhub_backend/internals/features/study/notifications/repository"
	helper "studyhub_backend/internals/helpers"
	authmw "studyhub_backend/internals/middlewares/auth"
)

type NotificationController struct {
	Repo *repo.NotificationRepository
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{Repo: repo.NewNotificationRepository(db)}
}

// List returns the caller's notifications, newest first.
func (ctl *NotificationController) List(c *fiber.Ctx) error {
	limit, offset := helper.ParseLimitOffset(c)
	items, err := ctl.Repo.ByRecipient(c.UserContext(), authmw.CallerEmail(c), limit, offset)
	if err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "Notifications fetched", items)
}

func (ctl *NotificationController) MarkRead(c *fiber.Ctx) error {
	id, err := helper.ParseUUID(c.Params("id"))
	if err != nil {
		return helper.Fail(c, err)
	}
	if err := ctl.Repo.MarkRead(c.UserContext(), id, authmw.CallerEmail(c)); err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "Notification marked as read", fiber.Map{"notification_id": id})
}
