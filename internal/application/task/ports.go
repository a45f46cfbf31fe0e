package task

import (
	"context"

	"github.com/taskhub/task-service/internal/domain"
)

// TaskRepo is the persistence port for tasks.
type TaskRepo interface {
	List(ctx context.Context) ([]domain.Task, error)
	GetByID(ctx context.Context, id string) (domain.Task, error)
	Create(ctx context.Context, t domain.Task) (domain.Task, error)
	Update(ctx context.Context, id, text string, isCompleted bool) (domain.Task, error)
	Delete(ctx context.Context, id string) error
}

// EventPublisher mirrors the auth-side publisher: best effort only.
type EventPublisher interface {
	PublishTaskCreated(ctx context.Context, evt TaskEvent) error
	PublishTaskDeleted(ctx context.Context, evt TaskEvent) error
}

type TaskEvent struct {
	TaskID  string `json:"task_id"`
	ActorID string `json:"actor_id,omitempty"`
}
