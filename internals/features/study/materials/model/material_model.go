// file: internals/features/study/materials/model/material_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/*
materials
- material_session_id is a weak reference; deleting a session leaves its
  materials orphaned (no cascade, see DESIGN.md)
- material_file_url points at an externally stored blob; contents never
  pass through this service
*/

type Material struct {
	MaterialID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:material_id" json:"material_id"`
	MaterialSessionID   uuid.UUID `gorm:"type:uuid;not null;index:idx_materials_session_id;column:material_session_id" json:"material_session_id"`
	MaterialTutorEmail  string    `gorm:"type:varchar(255);not null;index:idx_materials_tutor_email;column:material_tutor_email" json:"material_tutor_email"`
	MaterialTitle       string    `gorm:"type:varchar(160);not null;column:material_title" json:"material_title"`
	MaterialDescription string    `gorm:"type:text;column:material_description" json:"material_description"`
	MaterialFileURL     string    `gorm:"type:text;not null;column:material_file_url" json:"material_file_url"`
	MaterialStatus      string    `gorm:"type:varchar(20);not null;default:'pending';index:idx_materials_status;column:material_status" json:"material_status"`
	MaterialCreatedAt   time.Time `gorm:"type:timestamptz;not null;default:now();column:material_created_at" json:"material_created_at"`
}

func (Material) TableName() string { return "materials" }
