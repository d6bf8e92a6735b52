package models

// SubmissionAnswer records the label a participant picked for one question.
// The correct answer is not copied here; result reconstruction resolves it
// back through the question so there is a single source of truth.
type SubmissionAnswer struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	SubmissionID   uint       `json:"submission_id" gorm:"not null;index"`
	Submission     Submission `json:"-" gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE"`
	QuestionID     uint       `json:"question_id" gorm:"not null;index"`
	Question       Question   `json:"-" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	SelectedAnswer string     `json:"selected_answer" gorm:"size:255;not null"`
}
