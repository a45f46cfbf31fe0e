package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/taskhub/task-service/internal/domain"
)

type TaskRepo struct {
	mu   sync.RWMutex
	byID map[string]domain.Task
}

func NewTaskRepo() *TaskRepo {
	return &TaskRepo{byID: make(map[string]domain.Task)}
}

func (r *TaskRepo) List(ctx context.Context) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]domain.Task, 0, len(r.byID))
	for _, t := range r.byID {
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].CreatedAt.Before(tasks[j].CreatedAt) })
	return tasks, nil
}

func (r *TaskRepo) GetByID(ctx context.Context, id string) (domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound()
	}
	return t, nil
}

func (r *TaskRepo) Create(ctx context.Context, t domain.Task) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t.ID == "" {
		return domain.Task{}, domain.ErrInternal(nil)
	}
	if strings.TrimSpace(t.Text) == "" {
		return domain.Task{}, domain.ErrMissingField("text")
	}

	r.byID[t.ID] = t
	return t, nil
}

func (r *TaskRepo) Update(ctx context.Context, id, text string, isCompleted bool) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byID[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound()
	}
	if strings.TrimSpace(text) == "" {
		return domain.Task{}, domain.ErrMissingField("text")
	}

	t.Text = text
	t.IsCompleted = isCompleted
	t.UpdatedAt = time.Now()
	r.byID[id] = t
	return t, nil
}

func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return domain.ErrTaskNotFound()
	}
	delete(r.byID, id)
	return nil
}
