// file: internals/features/study/reviews/repository/review_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "studyhub_backend/internals/features/study/reviews/model"
	"studyhub_backend/internals/helpers/apperr"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *model.Review) error {
	rv.ReviewID = uuid.Nil
	if err := r.DB.WithContext(ctx).Create(rv).Error; err != nil {
		return apperr.Wrap(apperr.Internal, "Failed to create review", err)
	}
	return nil
}

func (r *ReviewRepository) BySession(ctx context.Context, sessionID uuid.UUID, limit, offset int) ([]model.Review, error) {
	var out []model.Review
	err := r.DB.WithContext(ctx).
		Where("review_session_id = ?", sessionID).
		Order("review_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch reviews", err)
	}
	return out, nil
}

// Summary returns the review count and mean rating for a session.
func (r *ReviewRepository) Summary(ctx context.Context, sessionID uuid.UUID) (count int64, avg float64, err error) {
	type row struct {
		Count int64
		Avg   *float64
	}
	var res row
	err = r.DB.WithContext(ctx).Model(&model.Review{}).
		Select("COUNT(*) AS count, AVG(review_rating) AS avg").
		Where("review_session_id = ?", sessionID).
		Scan(&res).Error
	if err != nil {
		return 0, 0, apperr.Wrap(apperr.Internal, "Failed to summarize reviews", err)
	}
	if res.Avg != nil {
		avg = *res.Avg
	}
	return res.Count, avg, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Where("review_id = ?", id).Delete(&model.Review{})
	if res.Error != nil {
		return apperr.Wrap(apperr.Internal, "Failed to delete review", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "Review not found")
	}
	return nil
}

func (r *ReviewRepository) Total(ctx context.Context) (int64, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&model.Review{}).Count(&n).Error; err != nil {
		return 0, apperr.Wrap(apperr.Internal, "Failed to count reviews", err)
	}
	return n, nil
}
