package storage

import (
	"context"
	"fmt"
)

// Open returns the repository for backend. path is ignored for the memory
// backend; driver only applies to sqlite.
func Open(ctx context.Context, backend Backend, path, driver string) (Repository, error) {
	switch backend {
	case BackendSQLite, "":
		return OpenSQLite(ctx, driver, path)
	case BackendFile:
		return OpenFile(path)
	case BackendMemory:
		return NewMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}
