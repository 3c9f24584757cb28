package repository

import "time"

// AppState represents an app_state row.
type AppState struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
