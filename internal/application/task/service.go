package task

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskhub/task-service/internal/domain"
)

type Service struct {
	tasks TaskRepo
	pub   EventPublisher
}

func NewService(tasks TaskRepo, pub EventPublisher) *Service {
	return &Service{tasks: tasks, pub: pub}
}

func (s *Service) List(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Task{}, domain.ErrMissingField("id")
	}
	return s.tasks.GetByID(ctx, id)
}

// Create persists a new task. The completion flag always starts false.
func (s *Service) Create(ctx context.Context, actorID, text string) (domain.Task, error) {
	now := time.Now()
	t := domain.Task{
		ID:          uuid.NewString(),
		Text:        text,
		IsCompleted: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.tasks.Create(ctx, t)
	if err != nil {
		return domain.Task{}, err
	}

	_ = s.pub.PublishTaskCreated(ctx, TaskEvent{TaskID: created.ID, ActorID: actorID})

	return created, nil
}

func (s *Service) Update(ctx context.Context, id, text string, isCompleted bool) (domain.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Task{}, domain.ErrMissingField("id")
	}
	return s.tasks.Update(ctx, id, text, isCompleted)
}

func (s *Service) Delete(ctx context.Context, actorID, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrMissingField("id")
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.pub.PublishTaskDeleted(ctx, TaskEvent{TaskID: id, ActorID: actorID})

	return nil
}
