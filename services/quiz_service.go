package services

import (
	"fmt"

	"quizhub/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

type CreateQuizRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type QuestionRequest struct {
	Statement     string            `json:"statement" binding:"required"`
	Options       map[string]string `json:"options" binding:"required,min=2"`
	CorrectAnswer string            `json:"correct_answer" binding:"required"`
	QuizID        uint              `json:"quiz_id" binding:"required"`
}

// QuestionView is the participant-facing question shape: the correct answer
// is never serialized to quiz takers.
type QuestionView struct {
	ID        uint              `json:"id"`
	QuizID    uint              `json:"quiz_id"`
	Statement string            `json:"statement"`
	Options   map[string]string `json:"options"`
}

type QuizView struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	CreatedBy   uint           `json:"created_by"`
	Questions   []QuestionView `json:"questions"`
}

func (s *QuizService) CreateQuiz(ownerID uint, req *CreateQuizRequest) (*models.Quiz, error) {
	quiz := models.Quiz{
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   ownerID,
	}

	if err := s.db.Create(&quiz).Error; err != nil {
		return nil, err
	}

	return &quiz, nil
}

func (s *QuizService) GetOwnedQuizzes(ownerID uint) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := s.db.Where("created_by = ?", ownerID).
		Preload("Questions").
		Order("created_at DESC").
		Find(&quizzes).Error
	return quizzes, err
}

func (s *QuizService) GetOwnedQuizByID(quizID, ownerID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := s.db.Preload("Questions").First(&quiz, quizID).Error; err != nil {
		return nil, ErrQuizNotFound
	}
	if quiz.CreatedBy != ownerID {
		return nil, ErrForbidden
	}
	return &quiz, nil
}

// DeleteQuiz removes a quiz; questions, submissions and submission answers go
// with it via the database-level cascades.
func (s *QuizService) DeleteQuiz(quizID, callerID uint) error {
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		return ErrQuizNotFound
	}
	if quiz.CreatedBy != callerID {
		return ErrForbidden
	}

	return s.db.Delete(&quiz).Error
}

func (s *QuizService) CreateQuestion(callerID uint, req *QuestionRequest) (*models.Question, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, req.QuizID).Error; err != nil {
		return nil, ErrForbidden
	}
	if quiz.CreatedBy != callerID {
		return nil, ErrForbidden
	}

	if err := validateCorrectAnswer(req.Options, req.CorrectAnswer); err != nil {
		return nil, err
	}

	question := models.Question{
		QuizID:        req.QuizID,
		Statement:     req.Statement,
		Options:       datatypes.NewJSONType(req.Options),
		CorrectAnswer: req.CorrectAnswer,
	}

	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}

	return &question, nil
}

// UpdateQuestion rewrites a question's content. The parent quiz is fixed at
// creation: ownership is always resolved through it.
func (s *QuizService) UpdateQuestion(questionID, callerID uint, req *QuestionRequest) (*models.Question, error) {
	question, err := s.resolveOwnedQuestion(questionID, callerID)
	if err != nil {
		return nil, err
	}

	if err := validateCorrectAnswer(req.Options, req.CorrectAnswer); err != nil {
		return nil, err
	}

	question.Statement = req.Statement
	question.Options = datatypes.NewJSONType(req.Options)
	question.CorrectAnswer = req.CorrectAnswer

	if err := s.db.Save(question).Error; err != nil {
		return nil, err
	}

	return question, nil
}

func (s *QuizService) DeleteQuestion(questionID, callerID uint) error {
	question, err := s.resolveOwnedQuestion(questionID, callerID)
	if err != nil {
		return err
	}

	return s.db.Delete(question).Error
}

// ListForParticipants returns every quiz with its questions, shaped so the
// correct answers stay hidden.
func (s *QuizService) ListForParticipants() ([]QuizView, error) {
	var quizzes []models.Quiz
	if err := s.db.Preload("Questions").Order("id").Find(&quizzes).Error; err != nil {
		return nil, err
	}

	views := make([]QuizView, 0, len(quizzes))
	for _, quiz := range quizzes {
		view := QuizView{
			ID:          quiz.ID,
			Title:       quiz.Title,
			Description: quiz.Description,
			CreatedBy:   quiz.CreatedBy,
			Questions:   make([]QuestionView, 0, len(quiz.Questions)),
		}
		for _, q := range quiz.Questions {
			view.Questions = append(view.Questions, QuestionView{
				ID:        q.ID,
				QuizID:    q.QuizID,
				Statement: q.Statement,
				Options:   q.Options.Data(),
			})
		}
		views = append(views, view)
	}

	return views, nil
}

func (s *QuizService) resolveOwnedQuestion(questionID, callerID uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		return nil, ErrQuestionNotFound
	}

	var quiz models.Quiz
	if err := s.db.First(&quiz, question.QuizID).Error; err != nil {
		return nil, ErrQuizNotFound
	}
	if quiz.CreatedBy != callerID {
		return nil, ErrForbidden
	}

	return &question, nil
}

func validateCorrectAnswer(options map[string]string, correctAnswer string) error {
	if _, ok := options[correctAnswer]; !ok {
		return fmt.Errorf("%w: correct answer %q is not an option label", ErrInvalidInput, correctAnswer)
	}
	return nil
}
