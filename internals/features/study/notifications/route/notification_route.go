// file: internals/features/study/notifications/route/notification_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationController "studyhub_backend/internals/features/study/notifications/controller"
)

func NotificationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := notificationController.NewNotificationController(db)

	notifications := r.Group("/notifications")
	notifications.Get("/", ctl.List)
	notifications.Patch("/:id/read", ctl.MarkRead)
}
