package persist

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
)

// FileStorage keeps all values in one TOML file, rewritten on Flush.
type FileStorage struct {
	path string

	mu     sync.Mutex
	values map[string]string
	dirty  bool
}

// OpenFile reads path if it exists. A missing file is an empty store. A file
// that does not decode is renamed to path+".corrupt" and the store starts
// empty.
func OpenFile(path string, log *zap.Logger) (*FileStorage, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &FileStorage{path: path, values: map[string]string{}}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	if _, err := toml.Decode(string(data), &s.values); err != nil {
		aside := path + ".corrupt"
		log.Warn("state file unreadable, starting empty",
			zap.String("path", path),
			zap.String("moved_to", aside),
			zap.Error(err))
		if err := os.Rename(path, aside); err != nil {
			return nil, fmt.Errorf("move aside %s: %w", path, err)
		}
		s.values = map[string]string{}
	}
	return s, nil
}

func (s *FileStorage) GetString(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *FileStorage) SetString(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.values[key]; ok && cur == value {
		return nil
	}
	s.values[key] = value
	s.dirty = true
	return nil
}

func (s *FileStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[key]; ok {
		delete(s.values, key)
		s.dirty = true
	}
	return nil
}

// Flush writes the file through a temp file and rename.
func (s *FileStorage) Flush(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s.values); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

func (s *FileStorage) Close() error {
	return s.Flush(context.Background())
}
