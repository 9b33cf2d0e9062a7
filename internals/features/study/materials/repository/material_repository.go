// file: internals/features/study/materials/repository/material_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"studyhub_backend/internals/constants"
	model "studyhub_backend/internals/features/study/materials/model"
	"studyhub_backend/internals/helpers/apperr"
)

type MaterialRepository struct {
	DB *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{DB: db}
}

func (r *MaterialRepository) Create(ctx context.Context, m *model.Material) error {
	m.MaterialID = uuid.Nil
	m.MaterialStatus = constants.StatusPending
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return apperr.Wrap(apperr.Internal, "Failed to create material", err)
	}
	return nil
}

func (r *MaterialRepository) ByID(ctx context.Context, id uuid.UUID) (*model.Material, error) {
	var m model.Material
	err := r.DB.WithContext(ctx).Where("material_id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "Material not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch material", err)
	}
	return &m, nil
}

func (r *MaterialRepository) List(ctx context.Context, sessionID uuid.UUID, status string, limit, offset int) ([]model.Material, error) {
	q := r.DB.WithContext(ctx).Model(&model.Material{})
	if sessionID != uuid.Nil {
		q = q.Where("material_session_id = ?", sessionID)
	}
	if status != "" {
		q = q.Where("material_status = ?", status)
	}
	var out []model.Material
	err := q.Order("material_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch materials", err)
	}
	return out, nil
}

func (r *MaterialRepository) ByTutor(ctx context.Context, email string) ([]model.Material, error) {
	var out []model.Material
	err := r.DB.WithContext(ctx).
		Where("material_tutor_email = ?", email).
		Order("material_created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch tutor materials", err)
	}
	return out, nil
}

// Transition: conditional update on (id AND expected status). Materials
// carry no extra fields on approval.
func (r *MaterialRepository) Transition(ctx context.Context, id uuid.UUID, fromStatus, toStatus string, fields map[string]interface{}) (int64, error) {
	if len(fields) > 0 {
		return 0, apperr.New(apperr.Internal, "materials take no transition fields")
	}
	res := r.DB.WithContext(ctx).Model(&model.Material{}).
		Where("material_id = ? AND material_status = ?", id, fromStatus).
		Update("material_status", toStatus)
	if res.Error != nil {
		return 0, apperr.Wrap(apperr.Internal, "Failed to update material", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *MaterialRepository) OwnerEmail(ctx context.Context, id uuid.UUID) (string, error) {
	var email string
	err := r.DB.WithContext(ctx).Model(&model.Material{}).
		Where("material_id = ?", id).
		Pluck("material_tutor_email", &email).Error
	if err != nil {
		return "", apperr.Wrap(apperr.Internal, "Failed to fetch material", err)
	}
	if email == "" {
		return "", apperr.New(apperr.NotFound, "Material not found")
	}
	return email, nil
}

func (r *MaterialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Where("material_id = ?", id).Delete(&model.Material{})
	if res.Error != nil {
		return apperr.Wrap(apperr.Internal, "Failed to delete material", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "Material not found")
	}
	return nil
}

func (r *MaterialRepository) Total(ctx context.Context) (int64, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&model.Material{}).Count(&n).Error; err != nil {
		return 0, apperr.Wrap(apperr.Internal, "Failed to count materials", err)
	}
	return n, nil
}

func (r *MaterialRepository) CountByTutor(ctx context.Context, email string) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Material{}).
		Where("material_tutor_email = ?", email).
		Count(&n).Error
	if err != nil {
		return 0, apperr.Wrap(apperr.Internal, "Failed to count materials", err)
	}
	return n, nil
}
