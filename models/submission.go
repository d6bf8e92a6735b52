package models

import "time"

// Submission is one participant's scored attempt at one quiz. Rows are
// append-only: no update or delete path exists outside of quiz cascade.
type Submission struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	User        User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	QuizID      uint      `json:"quiz_id" gorm:"not null;index"`
	Quiz        Quiz      `json:"-" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	Score       float64   `json:"score" gorm:"not null"`
	SubmittedAt time.Time `json:"submitted_at"`

	Answers []SubmissionAnswer `json:"answers,omitempty" gorm:"foreignKey:SubmissionID"`
}
