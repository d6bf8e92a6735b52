package models

import "time"

// Role is the closed set of account roles. There is no hierarchy: an admin
// owns only the quizzes they created.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleParticipant Role = "participant"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleParticipant
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	Role         Role      `json:"role" gorm:"size:20;not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the resolved caller, produced once by the auth middleware from a
// validated token and threaded through handlers as-is.
type Identity struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
