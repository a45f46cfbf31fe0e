package postgres

import (
	"time"

	"github.com/taskhub/task-service/internal/domain"
)

type taskRow struct {
	ID          string
	Text        string
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toDomainTask(tr taskRow) domain.Task {
	return domain.Task{
		ID:          tr.ID,
		Text:        tr.Text,
		IsCompleted: tr.IsCompleted,
		CreatedAt:   tr.CreatedAt,
		UpdatedAt:   tr.UpdatedAt,
	}
}
