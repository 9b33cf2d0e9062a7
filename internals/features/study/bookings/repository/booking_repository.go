// file: internals/features/study/bookings/repository/booking_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "studyhub_backend/internals/features/study/bookings/model"
	helper "studyhub_backend/internals/helpers"
	"studyhub_backend/internals/helpers/apperr"
)

type BookingRepository struct {
	DB *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

// Create inserts the booking; the unique (session, student) index is the
// authoritative duplicate check.
func (r *BookingRepository) Create(ctx context.Context, b *model.Booking) error {
	b.BookingID = uuid.Nil
	if err := r.DB.WithContext(ctx).Create(b).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return apperr.New(apperr.Conflict, "You have already booked this session")
		}
		return apperr.Wrap(apperr.Internal, "Failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) ByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	var b model.Booking
	err := r.DB.WithContext(ctx).Where("booking_id = ?", id).First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "Booking not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch booking", err)
	}
	return &b, nil
}

func (r *BookingRepository) ByStudent(ctx context.Context, email string) ([]model.Booking, error) {
	var out []model.Booking
	err := r.DB.WithContext(ctx).
		Where("booking_student_email = ?", email).
		Order("booking_booked_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch bookings", err)
	}
	return out, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Where("booking_id = ?", id).Delete(&model.Booking{})
	if res.Error != nil {
		return apperr.Wrap(apperr.Internal, "Failed to delete booking", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "Booking not found")
	}
	return nil
}

func (r *BookingRepository) Total(ctx context.Context) (int64, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&model.Booking{}).Count(&n).Error; err != nil {
		return 0, apperr.Wrap(apperr.Internal, "Failed to count bookings", err)
	}
	return n, nil
}

// DistinctStudentsOfTutor counts unique students who booked this tutor.
func (r *BookingRepository) DistinctStudentsOfTutor(ctx context.Context, tutorEmail string) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Booking{}).
		Where("booking_tutor_email = ?", tutorEmail).
		Distinct("booking_student_email").
		Count(&n).Error
	if err != nil {
		return 0, apperr.Wrap(apperr.Internal, "Failed to count students", err)
	}
	return n, nil
}
