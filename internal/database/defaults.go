package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jask/demohost/internal/database/repository"
)

// InstallIDKey names the app_state row holding this installation's id.
const InstallIDKey = "install_id"

// SeedDefaults ensures baseline rows exist for new databases.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	repo := repository.NewAppStateRepo(db)
	existing, err := repo.Get(ctx, InstallIDKey)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	return repo.Put(ctx, InstallIDKey, uuid.NewString())
}
