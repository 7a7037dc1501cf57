package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sandeepkv93/tasklist/internal/model"
)

// TasksKey is the slot holding the serialized task collection.
const TasksKey = "tasks"

// TaskSlot reads and writes the whole task collection under TasksKey.
type TaskSlot struct {
	repo Repository
	key  string
}

func NewTaskSlot(repo Repository) *TaskSlot {
	return &TaskSlot{repo: repo, key: TasksKey}
}

func (s *TaskSlot) Save(ctx context.Context, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	payload, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := s.repo.PutSlot(ctx, s.key, string(payload)); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

// Load returns an empty collection when nothing has been saved yet. Stored
// content is decoded as-is; a decode failure is returned to the caller.
func (s *TaskSlot) Load(ctx context.Context) ([]model.Task, error) {
	raw, err := s.repo.GetSlot(ctx, s.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []model.Task{}, nil
		}
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	out := make([]model.Task, 0)
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	if out == nil {
		out = []model.Task{}
	}
	return out, nil
}

func (s *TaskSlot) Clear(ctx context.Context) error {
	if err := s.repo.DeleteSlot(ctx, s.key); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("clear tasks: %w", err)
	}
	return nil
}
