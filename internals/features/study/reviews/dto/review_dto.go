// file: internals/features/study/reviews/dto/review_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "studyhub_backend/internals/features/study/reviews/model"
)

type CreateReviewRequest struct {
	ReviewSessionID   string  `json:"review_session_id" validate:"required"`
	ReviewStudentName string  `json:"review_student_name" validate:"required,max=100"`
	ReviewRating      float64 `json:"review_rating" validate:"required,gte=1,lte=5"`
	ReviewComment     string  `json:"review_comment" validate:"omitempty"`
}

func (r CreateReviewRequest) ToModel(sessionID uuid.UUID, studentEmail string) *model.Review {
	return &model.Review{
		ReviewSessionID:    sessionID,
		ReviewStudentEmail: studentEmail,
		ReviewStudentName:  strings.TrimSpace(r.ReviewStudentName),
		ReviewRating:       r.ReviewRating,
		ReviewComment:      strings.TrimSpace(r.ReviewComment),
	}
}

type ReviewSummaryResponse struct {
	ReviewCount   int64   `json:"review_count"`
	AverageRating float64 `json:"average_rating"`
}
