// file: internals/features/study/materials/route/material_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyhub_backend/internals/features/study/approval"
	materialController "studyhub_backend/internals/features/study/materials/controller"
	authmw "studyhub_backend/internals/middlewares/auth"
)

func MaterialPublicRoutes(r fiber.Router, db *gorm.DB, engine *approval.Engine) {
	ctl := materialController.NewMaterialController(db, engine)

	materials := r.Group("/materials")
	materials.Get("/", ctl.List)
	materials.Get("/tutor/:email", ctl.ByTutor)
}

func MaterialUserRoutes(r fiber.Router, db *gorm.DB, engine *approval.Engine) {
	ctl := materialController.NewMaterialController(db, engine)

	materials := r.Group("/materials")
	materials.Post("/", authmw.IsTutor(db, "material creation"), ctl.Create)
}

func MaterialAdminRoutes(r fiber.Router, db *gorm.DB, engine *approval.Engine) {
	ctl := materialController.NewMaterialController(db, engine)

	materials := r.Group("/materials")
	materials.Patch("/:id/approve", ctl.Approve)
	materials.Patch("/:id/reject", ctl.Reject)
	materials.Delete("/:id", ctl.Delete)
}
