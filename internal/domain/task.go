package domain

import "time"

type Task struct {
	ID          string
	Text        string
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
