package services

import "errors"

var (
	// ErrUnauthenticated is returned when a credential is missing, invalid,
	// expired or revoked.
	ErrUnauthenticated = errors.New("invalid or expired token")
	// ErrForbidden is returned on a role mismatch or when the caller does not
	// own the resource being mutated.
	ErrForbidden = errors.New("not your quiz")
	// ErrQuizNotFound indicates the referenced quiz does not exist.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrQuestionNotFound indicates the referenced question does not exist.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrSubmissionNotFound indicates the participant has no submission for
	// the quiz.
	ErrSubmissionNotFound = errors.New("no submission found")
	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidInput covers structurally malformed domain input, such as a
	// correct answer outside the option set or a quiz with no questions.
	ErrInvalidInput = errors.New("invalid input")
	// ErrIncompleteSubmission is returned when the answer set does not cover
	// the quiz's question set exactly.
	ErrIncompleteSubmission = errors.New("answer all questions")
	// ErrInvalidAnswerLabel is returned when a selected label is not among a
	// question's options.
	ErrInvalidAnswerLabel = errors.New("invalid answer")
)
