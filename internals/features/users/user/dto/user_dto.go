// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"

	model "studyhub_backend/internals/features/users/user/model"
	helper "studyhub_backend/internals/helpers"
)

type RegisterUserRequest struct {
	UserName     string  `json:"user_name" validate:"required,max=100"`
	UserEmail    string  `json:"user_email" validate:"required,email"`
	UserPhotoURL *string `json:"user_photo_url" validate:"omitempty,url"`
}

func (r RegisterUserRequest) ToModel() *model.User {
	var photo *string
	if r.UserPhotoURL != nil {
		v := strings.TrimSpace(*r.UserPhotoURL)
		if v != "" {
			photo = &v
		}
	}
	return &model.User{
		UserName:     strings.TrimSpace(r.UserName),
		UserEmail:    helper.NormalizeEmail(r.UserEmail),
		UserPhotoURL: photo,
	}
}

// Role is restricted to the assignable set; admin is rejected before the
// request reaches the store.
type UpdateUserRoleRequest struct {
	UserRole string `json:"user_role" validate:"required,oneof=student tutor"`
}
