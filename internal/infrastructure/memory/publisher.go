package memory

import (
	"context"

	"github.com/taskhub/task-service/internal/application/auth"
	"github.com/taskhub/task-service/internal/application/task"
)

// NoopPublisher satisfies both publisher ports when no broker is configured.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (p *NoopPublisher) PublishUserRegistered(ctx context.Context, evt auth.UserRegisteredEvent) error {
	return nil
}

func (p *NoopPublisher) PublishTaskCreated(ctx context.Context, evt task.TaskEvent) error {
	return nil
}

func (p *NoopPublisher) PublishTaskDeleted(ctx context.Context, evt task.TaskEvent) error {
	return nil
}
