package persist

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Open returns the storage backend named by backend ("sqlite" or "file").
// log may be nil.
func Open(ctx context.Context, backend, path string, log *zap.Logger) (Storage, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", "sqlite":
		st, err := OpenSQLite(ctx, path, log)
		if err != nil {
			return nil, err
		}
		return st, nil
	case "file":
		st, err := OpenFile(path, log)
		if err != nil {
			return nil, err
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown state backend %q", backend)
	}
}
