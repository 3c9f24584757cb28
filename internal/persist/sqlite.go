package persist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/jask/demohost/internal/database"
	"github.com/jask/demohost/internal/database/repository"
)

// SQLiteStorage keeps values in the app_state table.
type SQLiteStorage struct {
	db   *sql.DB
	repo *repository.AppStateRepo
}

// OpenSQLite opens or creates the database at path and migrates it. A file
// that is not a readable database is renamed to path+".corrupt" and a fresh
// one takes its place.
func OpenSQLite(ctx context.Context, path string, log *zap.Logger) (*SQLiteStorage, error) {
	if log == nil {
		log = zap.NewNop()
	}
	st, err := openSQLite(ctx, path)
	if err == nil || !isCorruptDB(err) {
		return st, err
	}
	aside := path + ".corrupt"
	log.Warn("state database unreadable, starting empty",
		zap.String("path", path),
		zap.String("moved_to", aside),
		zap.Error(err))
	if err := os.Rename(path, aside); err != nil {
		return nil, fmt.Errorf("move aside %s: %w", path, err)
	}
	for _, sidecar := range []string{path + "-wal", path + "-shm"} {
		_ = os.Remove(sidecar)
	}
	return openSQLite(ctx, path)
}

func isCorruptDB(err error) bool {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code == sqlite3.ErrNotADB || se.Code == sqlite3.ErrCorrupt
}

func openSQLite(ctx context.Context, path string) (*SQLiteStorage, error) {
	db, err := database.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := database.RunMigrationsWithDB(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}
	return &SQLiteStorage{db: db, repo: repository.NewAppStateRepo(db)}, nil
}

func (s *SQLiteStorage) GetString(ctx context.Context, key string) (string, bool, error) {
	row, err := s.repo.Get(ctx, key)
	if err != nil || row == nil {
		return "", false, err
	}
	return row.Value, true, nil
}

func (s *SQLiteStorage) SetString(ctx context.Context, key, value string) error {
	return s.repo.Put(ctx, key, value)
}

func (s *SQLiteStorage) Delete(ctx context.Context, key string) error {
	return s.repo.Delete(ctx, key)
}

// Flush is a no-op: every write is its own transaction.
func (s *SQLiteStorage) Flush(context.Context) error { return nil }

func (s *SQLiteStorage) Close() error { return s.db.Close() }

// Entries lists every stored row.
func (s *SQLiteStorage) Entries(ctx context.Context) ([]repository.AppState, error) {
	return s.repo.List(ctx)
}
