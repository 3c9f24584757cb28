// Package persist stores UI state between runs. Values are strings under
// string keys; records are encoded as TOML.
package persist

import (
	"bytes"
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
)

// StateKey is the key the demo host's record is stored under.
const StateKey = "demo_windows"

// Storage is a string key/value store.
type Storage interface {
	GetString(ctx context.Context, key string) (string, bool, error)
	SetString(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// Flush makes previous writes durable.
	Flush(ctx context.Context) error
	Close() error
}

// LoadRecord decodes the record under key onto v. Fields missing from the
// stored record keep the values v already has. It reports false when
// nothing is stored.
func LoadRecord(ctx context.Context, st Storage, key string, v any) (bool, error) {
	raw, ok, err := st.GetString(ctx, key)
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if _, err := toml.Decode(raw, v); err != nil {
		return true, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// SaveRecord encodes v under key and flushes.
func SaveRecord(ctx context.Context, st Storage, key string, v any) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := st.SetString(ctx, key, buf.String()); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return st.Flush(ctx)
}
