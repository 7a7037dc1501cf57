package model

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidID    = errors.New("model: task id must be positive")
	ErrTextRequired = errors.New("model: task text is required")
)

type TaskState string

const (
	TaskStatePending   TaskState = "Pending"
	TaskStateCompleted TaskState = "Completed"
)

// Task is one entry of the persisted collection. The JSON keys are the
// on-disk format of the tasks slot and must not change.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt Stamp  `json:"createdAt,omitzero"`
}

// Stamp is a creation time in its stored JSON form. It is never parsed, so
// whatever a loaded record carries is written back unchanged.
type Stamp struct {
	raw string
}

// NewStamp encodes t as a UTC RFC3339 string.
func NewStamp(t time.Time) Stamp {
	return Stamp{raw: strconv.Quote(t.UTC().Format(time.RFC3339Nano))}
}

func (s Stamp) IsZero() bool {
	return s.raw == ""
}

func (s Stamp) String() string {
	return s.raw
}

func (s Stamp) MarshalJSON() ([]byte, error) {
	if s.raw == "" {
		return []byte("null"), nil
	}
	return []byte(s.raw), nil
}

func (s *Stamp) UnmarshalJSON(data []byte) error {
	s.raw = string(data)
	return nil
}

func NewTask(id int64, text string, now time.Time) (Task, error) {
	t := Task{
		ID:        id,
		Text:      strings.TrimSpace(text),
		CreatedAt: NewStamp(now),
	}
	if err := t.Validate(); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (t Task) State() TaskState {
	if t.Completed {
		return TaskStateCompleted
	}
	return TaskStatePending
}

func (t Task) Toggled() Task {
	t.Completed = !t.Completed
	return t
}

func (t Task) Validate() error {
	if t.ID <= 0 {
		return ErrInvalidID
	}
	if strings.TrimSpace(t.Text) == "" {
		return ErrTextRequired
	}
	return nil
}

// CountCompleted returns how many tasks have their completion flag set.
func CountCompleted(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if t.Completed {
			n++
		}
	}
	return n
}
