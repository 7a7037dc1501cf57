package storage

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/sandeepkv93/tasklist/internal/model"
)

func sampleTasks() []model.Task {
	created := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	return []model.Task{
		{ID: 1739102400000, Text: "Buy milk", CreatedAt: model.NewStamp(created)},
		{ID: 1739102400001, Text: "Walk dog", Completed: true, CreatedAt: model.NewStamp(created.Add(time.Second))},
		{ID: 1739102400002, Text: "Write report", CreatedAt: model.NewStamp(created.Add(2 * time.Second))},
	}
}

func TestTaskSlotRoundTripAcrossBackends(t *testing.T) {
	dir := t.TempDir()
	backends := map[string]func() (Repository, error){
		"memory": func() (Repository, error) { return NewMemoryRepository(), nil },
		"file":   func() (Repository, error) { return OpenFile(filepath.Join(dir, "tasks.json")) },
		"sqlite": func() (Repository, error) {
			return OpenSQLite(context.Background(), DriverMattn, filepath.Join(dir, "tasks.db"))
		},
		"sqlite-pure-go": func() (Repository, error) {
			return OpenSQLite(context.Background(), DriverModernc, filepath.Join(dir, "tasks-modernc.db"))
		},
	}
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			repo, err := open()
			if err != nil {
				t.Fatalf("open %s: %v", name, err)
			}
			t.Cleanup(func() { _ = repo.Close() })

			slot := NewTaskSlot(repo)
			want := sampleTasks()
			if err := slot.Save(t.Context(), want); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, err := slot.Load(t.Context())
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("round trip mismatch:\n got  %#v\n want %#v", got, want)
			}
		})
	}
}

func TestTaskSlotLoadAbsentIsEmpty(t *testing.T) {
	slot := NewTaskSlot(NewMemoryRepository())
	got, err := slot.Load(t.Context())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil collection, got %#v", got)
	}
}

func TestTaskSlotSaveEmptyWritesArray(t *testing.T) {
	repo := NewMemoryRepository()
	if err := NewTaskSlot(repo).Save(t.Context(), nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := repo.GetSlot(t.Context(), TasksKey)
	if err != nil {
		t.Fatalf("get slot: %v", err)
	}
	if raw != "[]" {
		t.Fatalf("expected [] for empty collection, got %q", raw)
	}
}

func TestTaskSlotWireFormat(t *testing.T) {
	repo := NewMemoryRepository()
	created := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	if err := NewTaskSlot(repo).Save(t.Context(), []model.Task{{ID: 5, Text: "x", CreatedAt: model.NewStamp(created)}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, _ := repo.GetSlot(t.Context(), TasksKey)
	want := `[{"id":5,"text":"x","completed":false,"createdAt":"2026-02-09T12:00:00Z"}]`
	if raw != want {
		t.Fatalf("unexpected wire format:\n got  %s\n want %s", raw, want)
	}
}

func TestTaskSlotPreservesStoredCreatedAt(t *testing.T) {
	cases := map[string]string{
		"iso-ms":       `[{"id":1,"text":"a","completed":false,"createdAt":"2024-05-01T12:00:00.000Z"}]`,
		"epoch-number": `[{"id":2,"text":"b","completed":true,"createdAt":1714564800000}]`,
		"date-string":  `[{"id":3,"text":"c","completed":false,"createdAt":"Wed May 01 2024 12:00:00 GMT+0000 (Coordinated Universal Time)"}]`,
		"empty-string": `[{"id":4,"text":"d","completed":false,"createdAt":""}]`,
		"absent":       `[{"id":5,"text":"e","completed":false}]`,
	}
	for name, stored := range cases {
		t.Run(name, func(t *testing.T) {
			repo := NewMemoryRepository()
			if err := repo.PutSlot(t.Context(), TasksKey, stored); err != nil {
				t.Fatalf("put slot: %v", err)
			}
			slot := NewTaskSlot(repo)
			loaded, err := slot.Load(t.Context())
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if len(loaded) != 1 {
				t.Fatalf("expected one task, got %#v", loaded)
			}
			if err := slot.Save(t.Context(), loaded); err != nil {
				t.Fatalf("save: %v", err)
			}
			raw, err := repo.GetSlot(t.Context(), TasksKey)
			if err != nil {
				t.Fatalf("get slot: %v", err)
			}
			if raw != stored {
				t.Fatalf("stored form changed:\n got  %s\n want %s", raw, stored)
			}
		})
	}
}

func TestTaskSlotLoadMalformedIsError(t *testing.T) {
	repo := NewMemoryRepository()
	if err := repo.PutSlot(t.Context(), TasksKey, "{broken"); err != nil {
		t.Fatalf("put slot: %v", err)
	}
	_, err := NewTaskSlot(repo).Load(t.Context())
	if err == nil {
		t.Fatal("expected decode error for malformed slot")
	}
}

type failingRepo struct{ *MemoryRepository }

var errDiskFull = errors.New("disk full")

func (failingRepo) PutSlot(context.Context, string, string) error { return errDiskFull }

func TestTaskSlotSavePropagatesWriteError(t *testing.T) {
	slot := NewTaskSlot(failingRepo{NewMemoryRepository()})
	err := slot.Save(t.Context(), sampleTasks())
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("expected wrapped write error, got: %v", err)
	}
}

func TestTaskSlotClear(t *testing.T) {
	repo := NewMemoryRepository()
	slot := NewTaskSlot(repo)
	if err := slot.Clear(t.Context()); err != nil {
		t.Fatalf("clear absent slot: %v", err)
	}
	if err := slot.Save(t.Context(), sampleTasks()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := slot.Clear(t.Context()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := repo.GetSlot(t.Context(), TasksKey); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected slot removed, got: %v", err)
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	dir := t.TempDir()
	repo, err := Open(t.Context(), BackendFile, filepath.Join(dir, "a.json"), "")
	if err != nil {
		t.Fatalf("open file backend: %v", err)
	}
	if _, ok := repo.(*FileRepository); !ok {
		t.Fatalf("expected *FileRepository, got %T", repo)
	}
	repo, err = Open(t.Context(), BackendMemory, "", "")
	if err != nil {
		t.Fatalf("open memory backend: %v", err)
	}
	if _, ok := repo.(*MemoryRepository); !ok {
		t.Fatalf("expected *MemoryRepository, got %T", repo)
	}
	if _, err := Open(t.Context(), Backend("redis"), "", ""); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
