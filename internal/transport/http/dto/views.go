package dto

import (
	"time"

	"github.com/taskhub/task-service/internal/domain"
)

// UserView is the user payload for every response. The password hash has no
// field here at all, so it can never serialize.
type UserView struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Photo     string `json:"photo,omitempty"`
}

func NewUserView(u domain.User) UserView {
	return UserView{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		Photo:     u.Photo,
	}
}

type TaskView struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewTaskView(t domain.Task) TaskView {
	return TaskView{
		ID:          t.ID,
		Text:        t.Text,
		IsCompleted: t.IsCompleted,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func NewTaskViews(ts []domain.Task) []TaskView {
	views := make([]TaskView, 0, len(ts))
	for _, t := range ts {
		views = append(views, NewTaskView(t))
	}
	return views
}

type LoginResponse struct {
	Token string `json:"token"`
}
