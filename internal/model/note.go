package model

import (
	"time"

	"github.com/google/uuid"
)

// Note is a single document inside a notebook.
type Note struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	NotebookID uuid.UUID `json:"notebook_id" gorm:"type:char(36);index;not null"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:char(36);index;not null"`
	Title      string    `json:"title" gorm:"size:255"`
	Content    string    `json:"content" gorm:"type:longtext"`
	CreatedAt  time.Time `json:"created"`
	UpdatedAt  time.Time `json:"updated"`
}
