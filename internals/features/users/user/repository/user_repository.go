// file: internals/features/users/user/repository/user_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"studyhub_backend/internals/constants"
	model "studyhub_backend/internals/features/users/user/model"
	helper "studyhub_backend/internals/helpers"
	"studyhub_backend/internals/helpers/apperr"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// Create registers a new user with the default student role. A duplicate
// email reports Conflict; the unique index backs the check.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	u.UserID = uuid.Nil
	u.UserRole = constants.RoleStudent
	if err := r.DB.WithContext(ctx).Create(u).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return apperr.New(apperr.Conflict, "User already exists")
		}
		return apperr.Wrap(apperr.Internal, "Failed to create user", err)
	}
	return nil
}

func (r *UserRepository) ByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.DB.WithContext(ctx).Where("user_email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "User not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch user", err)
	}
	return &u, nil
}

func (r *UserRepository) ByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u model.User
	err := r.DB.WithContext(ctx).Where("user_id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "User not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch user", err)
	}
	return &u, nil
}

// Search lists users, optionally filtered by a case-insensitive name or
// email match.
func (r *UserRepository) Search(ctx context.Context, search string, limit, offset int) ([]model.User, error) {
	q := r.DB.WithContext(ctx).Model(&model.User{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("user_name ILIKE ? OR user_email ILIKE ?", like, like)
	}
	var out []model.User
	err := q.Order("user_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch users", err)
	}
	return out, nil
}

// UpdateRole assigns student or tutor. The update is conditional on the
// current role not being admin, so the generic path can never touch an
// admin even under concurrent promotion.
func (r *UserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role string) error {
	if !constants.IsAssignableRole(role) {
		return apperr.New(apperr.PermissionDenied, "Role admin cannot be assigned here")
	}

	res := r.DB.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ? AND user_role <> ?", id, constants.RoleAdmin).
		Update("user_role", role)
	if res.Error != nil {
		return apperr.Wrap(apperr.Internal, "Failed to update role", res.Error)
	}
	if res.RowsAffected == 0 {
		// Distinguish a missing user from a protected admin.
		if _, err := r.ByID(ctx, id); err != nil {
			return err
		}
		return apperr.New(apperr.PermissionDenied, "Admin accounts cannot be modified")
	}
	return nil
}

// Delete removes a user; admin accounts are protected by the same
// conditional guard as UpdateRole.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND user_role <> ?", id, constants.RoleAdmin).
		Delete(&model.User{})
	if res.Error != nil {
		return apperr.Wrap(apperr.Internal, "Failed to delete user", res.Error)
	}
	if res.RowsAffected == 0 {
		if _, err := r.ByID(ctx, id); err != nil {
			return err
		}
		return apperr.New(apperr.PermissionDenied, "Admin accounts cannot be deleted")
	}
	return nil
}

func (r *UserRepository) Total(ctx context.Context) (int64, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&model.User{}).Count(&n).Error; err != nil {
		return 0, apperr.Wrap(apperr.Internal, "Failed to count users", err)
	}
	return n, nil
}
