package models

import "gorm.io/datatypes"

// Question holds its options as a label -> text map on the row itself.
// Invariant: CorrectAnswer is always one of the option labels; the quiz
// service rejects any create or update that would break this.
type Question struct {
	ID            uint                                  `json:"id" gorm:"primaryKey"`
	QuizID        uint                                  `json:"quiz_id" gorm:"not null;index"`
	Quiz          Quiz                                  `json:"-" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	Statement     string                                `json:"statement" gorm:"type:text;not null"`
	Options       datatypes.JSONType[map[string]string] `json:"options"`
	CorrectAnswer string                                `json:"correct_answer" gorm:"size:255;not null"`
}
