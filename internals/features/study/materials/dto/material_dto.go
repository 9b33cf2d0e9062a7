// file: internals/features/study/materials/dto/material_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "studyhub_backend/internals/features/study/materials/model"
)

type CreateMaterialRequest struct {
	MaterialSessionID   string `json:"material_session_id" validate:"required"`
	MaterialTitle       string `json:"material_title" validate:"required,max=160"`
	MaterialDescription string `json:"material_description" validate:"omitempty"`

	// Reference to the externally stored blob; contents never pass
	// through this service.
	MaterialFileURL string `json:"material_file_url" validate:"required,url"`
}

func (r CreateMaterialRequest) ToModel(sessionID uuid.UUID, tutorEmail string) *model.Material {
	return &model.Material{
		MaterialSessionID:   sessionID,
		MaterialTutorEmail:  tutorEmail,
		MaterialTitle:       strings.TrimSpace(r.MaterialTitle),
		MaterialDescription: strings.TrimSpace(r.MaterialDescription),
		MaterialFileURL:     strings.TrimSpace(r.MaterialFileURL),
	}
}
