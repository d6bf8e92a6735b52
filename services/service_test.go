package services_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"quizhub/models"
	"quizhub/services"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// newTestDB opens a fresh in-memory sqlite database, named after the test so
// parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.Submission{},
		&models.SubmissionAnswer{},
	))
	return db
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func newTestAuthService(t *testing.T, db *gorm.DB, ttl time.Duration) *services.AuthService {
	t.Helper()
	return services.NewAuthService(db, newTestRedis(t), testSecret, ttl)
}

func createUser(t *testing.T, db *gorm.DB, username string, role models.Role) *models.User {
	t.Helper()
	user := models.User{
		Username:     username,
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createQuiz(t *testing.T, db *gorm.DB, ownerID uint, title string) *models.Quiz {
	t.Helper()
	quiz := models.Quiz{
		Title:     title,
		CreatedBy: ownerID,
	}
	require.NoError(t, db.Create(&quiz).Error)
	return &quiz
}

func createQuestion(t *testing.T, db *gorm.DB, quizID uint, statement string, options map[string]string, correct string) *models.Question {
	t.Helper()
	question := models.Question{
		QuizID:        quizID,
		Statement:     statement,
		Options:       datatypes.NewJSONType(options),
		CorrectAnswer: correct,
	}
	require.NoError(t, db.Create(&question).Error)
	return &question
}
