package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileRepository keeps every slot in one JSON object on disk. Each write
// rewrites the whole file through a temporary sibling and a rename.
type FileRepository struct {
	path string
}

func OpenFile(path string) (*FileRepository, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, fmt.Errorf("storage: empty file path")
	}
	return &FileRepository{path: trimmed}, nil
}

func (r *FileRepository) Path() string {
	return r.path
}

func (r *FileRepository) Close() error {
	return nil
}

func (r *FileRepository) GetSlot(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	slots, err := r.read()
	if err != nil {
		return "", err
	}
	value, ok := slots[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (r *FileRepository) PutSlot(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	slots, err := r.read()
	if err != nil {
		return err
	}
	slots[key] = value
	return r.write(slots)
}

func (r *FileRepository) DeleteSlot(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	slots, err := r.read()
	if err != nil {
		return err
	}
	if _, ok := slots[key]; !ok {
		return ErrNotFound
	}
	delete(slots, key)
	return r.write(slots)
}

func (r *FileRepository) read() (map[string]string, error) {
	out := make(map[string]string)
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return nil, err
	}
	if strings.TrimSpace(string(raw)) == "" {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.path, err)
	}
	return out, nil
}

func (r *FileRepository) write(slots map[string]string) error {
	dir := filepath.Dir(r.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	payload, err := json.MarshalIndent(slots, "", "  ")
	if err != nil {
		return err
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, r.path)
}
