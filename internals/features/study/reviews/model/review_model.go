// file: internals/features/study/reviews/model/review_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// reviews: no uniqueness per (session, student); a student may review a
// session more than once in this design.
type Review struct {
	ReviewID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:review_id" json:"review_id"`
	ReviewSessionID    uuid.UUID `gorm:"type:uuid;not null;index:idx_reviews_session_id;column:review_session_id" json:"review_session_id"`
	ReviewStudentEmail string    `gorm:"type:varchar(255);not null;column:review_student_email" json:"review_student_email"`
	ReviewStudentName  string    `gorm:"type:varchar(100);not null;column:review_student_name" json:"review_student_name"`
	ReviewRating       float64   `gorm:"type:numeric(3,1);not null;column:review_rating" json:"review_rating"`
	ReviewComment      string    `gorm:"type:text;column:review_comment" json:"review_comment"`
	ReviewCreatedAt    time.Time `gorm:"type:timestamptz;not null;default:now();column:review_created_at" json:"review_created_at"`
}

func (Review) TableName() string { return "reviews" }
