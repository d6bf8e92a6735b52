package services

import (
	"fmt"
	"time"

	"quizhub/models"

	"gorm.io/gorm"
)

type SubmissionService struct {
	db *gorm.DB
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{db: db}
}

type SubmitRequest struct {
	QuizID  uint            `json:"quiz_id" binding:"required"`
	Answers map[uint]string `json:"answers" binding:"required"`
}

type AnswerResult struct {
	QuestionID     uint   `json:"question_id"`
	SelectedAnswer string `json:"selected_answer"`
	CorrectAnswer  string `json:"correct_answer"`
}

type SubmissionResult struct {
	SubmissionID uint           `json:"submission_id"`
	QuizID       uint           `json:"quiz_id"`
	Score        float64        `json:"score"`
	SubmittedAt  time.Time      `json:"submitted_at"`
	Answers      []AnswerResult `json:"answers"`
}

// Submit validates a complete answer set against the quiz's question set,
// scores it, and persists the submission plus one answer row per question in
// a single transaction. A submission that fails any check writes nothing.
//
// Repeat submissions are allowed: every successful call appends a new row.
func (s *SubmissionService) Submit(participantID uint, req *SubmitRequest) (*SubmissionResult, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, req.QuizID).Error; err != nil {
		return nil, ErrQuizNotFound
	}

	var questions []models.Question
	if err := s.db.Where("quiz_id = ?", req.QuizID).Find(&questions).Error; err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: quiz %d has no questions", ErrInvalidInput, req.QuizID)
	}

	// The answer key-set must equal the question id-set exactly: no missing
	// answers, no extras for questions this quiz does not have.
	if len(req.Answers) != len(questions) {
		return nil, ErrIncompleteSubmission
	}
	for _, q := range questions {
		if _, ok := req.Answers[q.ID]; !ok {
			return nil, ErrIncompleteSubmission
		}
	}

	correctCount := 0
	results := make([]AnswerResult, 0, len(questions))
	for _, q := range questions {
		selected := req.Answers[q.ID]
		if _, ok := q.Options.Data()[selected]; !ok {
			return nil, fmt.Errorf("%w for question %d", ErrInvalidAnswerLabel, q.ID)
		}
		if selected == q.CorrectAnswer {
			correctCount++
		}
		results = append(results, AnswerResult{
			QuestionID:     q.ID,
			SelectedAnswer: selected,
			CorrectAnswer:  q.CorrectAnswer,
		})
	}

	score := float64(correctCount) / float64(len(questions)) * 100

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	submission := models.Submission{
		UserID:      participantID,
		QuizID:      req.QuizID,
		Score:       score,
		SubmittedAt: time.Now().UTC(),
	}
	if err := tx.Create(&submission).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	for _, r := range results {
		answer := models.SubmissionAnswer{
			SubmissionID:   submission.ID,
			QuestionID:     r.QuestionID,
			SelectedAnswer: r.SelectedAnswer,
		}
		if err := tx.Create(&answer).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &SubmissionResult{
		SubmissionID: submission.ID,
		QuizID:       submission.QuizID,
		Score:        submission.Score,
		SubmittedAt:  submission.SubmittedAt,
		Answers:      results,
	}, nil
}

// GetResult rebuilds the result view for the participant's earliest
// submission to the quiz. Correct answers are resolved through the question
// rows at read time, so an edit to a question after submission shows up here,
// unlike in the view returned by Submit.
func (s *SubmissionService) GetResult(participantID, quizID uint) (*SubmissionResult, error) {
	var submission models.Submission
	err := s.db.Where("user_id = ? AND quiz_id = ?", participantID, quizID).
		Order("id").
		First(&submission).Error
	if err != nil {
		return nil, ErrSubmissionNotFound
	}

	var answers []models.SubmissionAnswer
	if err := s.db.Where("submission_id = ?", submission.ID).Order("question_id").Find(&answers).Error; err != nil {
		return nil, err
	}

	results := make([]AnswerResult, 0, len(answers))
	for _, answer := range answers {
		var question models.Question
		if err := s.db.First(&question, answer.QuestionID).Error; err != nil {
			return nil, ErrQuestionNotFound
		}
		results = append(results, AnswerResult{
			QuestionID:     answer.QuestionID,
			SelectedAnswer: answer.SelectedAnswer,
			CorrectAnswer:  question.CorrectAnswer,
		})
	}

	return &SubmissionResult{
		SubmissionID: submission.ID,
		QuizID:       submission.QuizID,
		Score:        submission.Score,
		SubmittedAt:  submission.SubmittedAt,
		Answers:      results,
	}, nil
}
