package services_test

import (
	"fmt"
	"testing"

	"quizhub/models"
	"quizhub/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// twoQuestionQuiz builds the reference fixture: Q1 correct "A" among {A,B},
// Q2 correct "C" among {B,C}.
func twoQuestionQuiz(t *testing.T, db *gorm.DB) (*models.Quiz, *models.Question, *models.Question) {
	t.Helper()
	owner := createUser(t, db, "admin", models.RoleAdmin)
	quiz := createQuiz(t, db, owner.ID, "Reference quiz")
	q1 := createQuestion(t, db, quiz.ID, "First?", map[string]string{"A": "a", "B": "b"}, "A")
	q2 := createQuestion(t, db, quiz.ID, "Second?", map[string]string{"B": "b", "C": "c"}, "C")
	return quiz, q1, q2
}

func TestSubmitAllCorrect(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSubmissionService(db)
	quiz, q1, q2 := twoQuestionQuiz(t, db)
	participant := createUser(t, db, "pat", models.RoleParticipant)

	result, err := svc.Submit(participant.ID, &services.SubmitRequest{
		QuizID:  quiz.ID,
		Answers: map[uint]string{q1.ID: "A", q2.ID: "C"},
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.Score)
	require.Len(t, result.Answers, 2)

	var submissions, answers int64
	db.Model(&models.Submission{}).Count(&submissions)
	db.Model(&models.SubmissionAnswer{}).Count(&answers)
	assert.EqualValues(t, 1, submissions)
	assert.EqualValues(t, 2, answers)
}

func TestSubmitPartialScore(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSubmissionService(db)
	quiz, q1, q2 := twoQuestionQuiz(t, db)
	participant := createUser(t, db, "pat", models.RoleParticipant)

	result, err := svc.Submit(participant.ID, &services.SubmitRequest{
		QuizID:  quiz.ID,
		Answers: map[uint]string{q1.ID: "A", q2.ID: "B"},
	})
	require.NoError(t, err)
	assert.Equal(t, 50.0, result.Score)
}

func TestSubmitAllWrong(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSubmissionService(db)
	quiz, q1, q2 := twoQuestionQuiz(t, db)
	participant := createUser(t, db, "pat", models.RoleParticipant)

	result, err := svc.Submit(participant.ID, &services.SubmitRequest{
		QuizID:  quiz.ID,
		Answers: map[uint]string{q1.ID: "B", q2.ID: "B"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Score)
}

func TestSubmitRequiresExactQuestionSet(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSubmissionService(db)
	quiz, q1, q2 := twoQuestionQuiz(t, db)
	participant := createUser(t, db, "pat", models.RoleParticipant)

	// Missing answer.
	_, err := svc.Submit(participant.ID, &services.SubmitRequest{
		QuizID:  quiz.ID,
		Answers: map[uint]string{q1.ID: "A"},
	})
	assert.ErrorIs(t, err, services.ErrIncompleteSubmission)

	// Extra answer for a question the quiz does not have.
	_, err = svc.Submit(participant.ID, &services.SubmitRequest{
		QuizID:  quiz.ID,
		Answers: map[uint]string{q1.ID: "A", q2.ID: "C", q2.ID + 100: "A"},
	})
	assert.ErrorIs(t, err, services.ErrIncompleteSubmission)

	// Same cardinality, wrong key set.
	_, err = svc.Submit(participant.ID, &services.SubmitRequest{
		QuizID:  quiz.ID,
		Answers: map[uint]string{q1.ID: "A", q2.ID + 100: "C"},
	})
	assert.ErrorIs(t, err, services.ErrIncompleteSubmission)

	var submissions int64
	db.Model(&models.Submission{}).Count(&submissions)
	assert.Zero(t, submissions)
}

func TestSubmitInvalidLabelWritesNothing(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSubmissionService(db)
	quiz, q1, q2 := twoQuestionQuiz(t, db)
	participant := createUser(t, db, "pat", models.RoleParticipant)

	_, err := svc.Submit(participant.ID, &services.SubmitRequest{
		QuizID:  quiz.ID,
		Answers: map[uint]string{q1.ID: "Z", q2.ID: "C"},
	})
	require.ErrorIs(t, err, services.ErrInvalidAnswerLabel)
	assert.Contains(t, err.Error(), fmt.Sprintf("question %d", q1.ID))

	var submissions, answers int64
	db.Model(&models.Submission{}).Count(&submissions)
	db.Model(&models.SubmissionAnswer{}).Count(&answers)
	assert.Zero(t, submissions)
	assert.Zero(t, answers)
}

func TestSubmitEmptyQuiz(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSubmissionService(db)
	owner := createUser(t, db, "admin", models.RoleAdmin)
	quiz := createQuiz(t, db, owner.ID, "Empty quiz")
	participant := createUser(t, db, "pat", models.RoleParticipant)

	_, err := svc.Submit(participant.ID, &services.SubmitRequest{
		QuizID:  quiz.ID,
		Answers: map[uint]string{},
	})
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestSubmitUnknownQuiz(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSubmissionService(db)
	participant := createUser(t, db, "pat", models.RoleParticipant)

	_, err := svc.Submit(participant.ID, &services.SubmitRequest{
		QuizID:  12345,
		Answers: map[uint]string{1: "A"},
	})
	assert.ErrorIs(t, err, services.ErrQuizNotFound)
}

func TestGetResultReproducesSubmission(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSubmissionService(db)
	quiz, q1, q2 := twoQuestionQuiz(t, db)
	participant := createUser(t, db, "pat", models.RoleParticipant)

	_, err := svc.GetResult(participant.ID, quiz.ID)
	assert.ErrorIs(t, err, services.ErrSubmissionNotFound)

	submitted, err := svc.Submit(participant.ID, &services.SubmitRequest{
		QuizID:  quiz.ID,
		Answers: map[uint]string{q1.ID: "A", q2.ID: "B"},
	})
	require.NoError(t, err)

	result, err := svc.GetResult(participant.ID, quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, submitted.Score, result.Score)
	assert.ElementsMatch(t, submitted.Answers, result.Answers)
}

func TestGetResultReflectsEditedCorrectAnswer(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSubmissionService(db)
	quizSvc := services.NewQuizService(db)
	quiz, q1, q2 := twoQuestionQuiz(t, db)
	participant := createUser(t, db, "pat", models.RoleParticipant)

	submitted, err := svc.Submit(participant.ID, &services.SubmitRequest{
		QuizID:  quiz.ID,
		Answers: map[uint]string{q1.ID: "A", q2.ID: "C"},
	})
	require.NoError(t, err)
	assert.Equal(t, "A", submitted.Answers[0].CorrectAnswer)

	// Edit Q1's correct answer after the fact. The score is frozen, but the
	// reconstructed per-answer correct label follows the current value.
	_, err = quizSvc.UpdateQuestion(q1.ID, quiz.CreatedBy, &services.QuestionRequest{
		Statement:     q1.Statement,
		Options:       q1.Options.Data(),
		CorrectAnswer: "B",
		QuizID:        quiz.ID,
	})
	require.NoError(t, err)

	result, err := svc.GetResult(participant.ID, quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, submitted.Score, result.Score)

	for _, answer := range result.Answers {
		if answer.QuestionID == q1.ID {
			assert.Equal(t, "B", answer.CorrectAnswer)
		}
	}
}

func TestRepeatSubmissionsKeepEarliestAsResult(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSubmissionService(db)
	quiz, q1, q2 := twoQuestionQuiz(t, db)
	participant := createUser(t, db, "pat", models.RoleParticipant)

	first, err := svc.Submit(participant.ID, &services.SubmitRequest{
		QuizID:  quiz.ID,
		Answers: map[uint]string{q1.ID: "B", q2.ID: "B"},
	})
	require.NoError(t, err)

	second, err := svc.Submit(participant.ID, &services.SubmitRequest{
		QuizID:  quiz.ID,
		Answers: map[uint]string{q1.ID: "A", q2.ID: "C"},
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.SubmissionID, second.SubmissionID)

	result, err := svc.GetResult(participant.ID, quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, first.SubmissionID, result.SubmissionID)
	assert.Equal(t, first.Score, result.Score)
}
