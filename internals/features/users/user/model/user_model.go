// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/*
users
- user_email is the unique lookup key
- user_role defaults to student; admin is never set through the generic
  role-update path
*/

type User struct {
	UserID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserName      string    `gorm:"type:varchar(100);not null;column:user_name" json:"user_name"`
	UserEmail     string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email;column:user_email" json:"user_email"`
	UserRole      string    `gorm:"type:varchar(20);not null;default:'student';column:user_role" json:"user_role"`
	UserPhotoURL  *string   `gorm:"type:text;column:user_photo_url" json:"user_photo_url,omitempty"`
	UserCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:user_created_at" json:"user_created_at"`
}

func (User) TableName() string { return "users" }
