package model

import (
	"time"

	"github.com/google/uuid"
)

// Todo is an entry of the plain todo list. It is unrelated to the board.
type Todo struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Priority    *int       `gorm:"index" json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	Duration    string     `json:"duration"`
	Done        bool       `gorm:"not null" json:"done"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
