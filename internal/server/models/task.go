package models

import "time"

// Task is a to-do item permanently bound to its owner (UserID).
type Task struct {
	ID          int64
	UserID      string
	Title       string
	Description *string
	Completed   bool
	// DueDate is a calendar date in common.DateLayout.
	DueDate   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
