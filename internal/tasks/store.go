package tasks

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/sandeepkv93/tasklist/internal/model"
)

// Persister stores the full collection. Save must replace whatever was
// stored before.
type Persister interface {
	Load(ctx context.Context) ([]model.Task, error)
	Save(ctx context.Context, tasks []model.Task) error
}

type Summary struct {
	Total     int
	Completed int
}

// Store owns the ordered task collection for a session. Every call that
// changes the collection saves it before returning. Store is not safe for
// concurrent use.
type Store struct {
	tasks  []model.Task
	slot   Persister
	now    func() time.Time
	lastID int64
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Open hydrates a store from slot.
func Open(ctx context.Context, slot Persister, opts ...Option) (*Store, error) {
	if slot == nil {
		return nil, errors.New("tasks: nil persister")
	}
	loaded, err := slot.Load(ctx)
	if err != nil {
		return nil, err
	}
	s := &Store{
		tasks: loaded,
		slot:  slot,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, t := range s.tasks {
		s.lastID = max(s.lastID, t.ID)
	}
	return s, nil
}

// Add appends a new pending task. Blank text is ignored and reported as
// ok=false with no error.
func (s *Store) Add(ctx context.Context, text string) (model.Task, bool, error) {
	if strings.TrimSpace(text) == "" {
		return model.Task{}, false, nil
	}
	now := s.now()
	task, err := model.NewTask(s.nextID(now), text, now)
	if err != nil {
		return model.Task{}, false, err
	}
	s.lastID = task.ID
	s.tasks = append(s.tasks, task)
	return task, true, s.persist(ctx)
}

// Toggle flips the completion flag of the first task with id.
func (s *Store) Toggle(ctx context.Context, id int64) (bool, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i] = s.tasks[i].Toggled()
			return true, s.persist(ctx)
		}
	}
	return false, nil
}

func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	kept := slices.DeleteFunc(slices.Clone(s.tasks), func(t model.Task) bool { return t.ID == id })
	if len(kept) == len(s.tasks) {
		return false, nil
	}
	s.tasks = kept
	return true, s.persist(ctx)
}

// ClearAll empties the collection once confirmer agrees. An empty store
// returns immediately without asking.
func (s *Store) ClearAll(ctx context.Context, confirmer Confirmer) (bool, error) {
	if len(s.tasks) == 0 {
		return false, nil
	}
	if confirmer == nil {
		return false, errors.New("tasks: nil confirmer")
	}
	ok, err := confirmer.Confirm(ctx, ClearPrompt)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	s.tasks = []model.Task{}
	return true, s.persist(ctx)
}

func (s *Store) Tasks() []model.Task {
	return slices.Clone(s.tasks)
}

func (s *Store) Len() int {
	return len(s.tasks)
}

func (s *Store) Get(id int64) (model.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func (s *Store) Counts() Summary {
	return Summary{Total: len(s.tasks), Completed: model.CountCompleted(s.tasks)}
}

// nextID is millisecond time based but never repeats or goes backwards,
// so adds within the same millisecond still get distinct ids.
func (s *Store) nextID(now time.Time) int64 {
	return max(now.UnixMilli(), s.lastID+1)
}

func (s *Store) persist(ctx context.Context) error {
	return s.slot.Save(ctx, s.tasks)
}
