package server

import (
	"fmt"
	"log"
	"time"

	"planner/internal/config"
	"planner/internal/repository"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenStore opens the backend named by cfg.StoreDriver and wraps it with
// retries. The returned func releases the backend.
func OpenStore(cfg *config.Config) (repository.Store, func() error, error) {
	var (
		store   repository.Store
		closeFn = func() error { return nil }
	)

	switch cfg.StoreDriver {
	case "postgres":
		gs, closeDB, err := openGormStore(postgres.Open(cfg.PostgresDSN()))
		if err != nil {
			return nil, nil, err
		}
		store, closeFn = gs, closeDB
		log.Println("✅ Connected to postgres")
	case "sqlite":
		ss, err := repository.OpenSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("❌ failed to open sqlite store: %w", err)
		}
		store, closeFn = ss, ss.Close
		log.Printf("✅ Opened sqlite store at %s", cfg.SQLitePath)
	case "memory":
		store = repository.NewMemoryStore()
		log.Println("⚠️  Using in-memory store, data is lost on exit")
	default:
		return nil, nil, fmt.Errorf("❌ unknown store driver %q", cfg.StoreDriver)
	}

	return repository.NewRetryingStore(store, retryConfig(cfg)), closeFn, nil
}

// openGormStore connects and migrates. The pool is closed when migration
// fails.
func openGormStore(dialector gorm.Dialector) (*repository.GormStore, func() error, error) {
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("❌ failed to get DB pool: %w", err)
	}

	gs := repository.NewGormStore(db)
	if err := gs.Migrate(); err != nil {
		closeLogged(sqlDB.Close)
		return nil, nil, fmt.Errorf("❌ failed to migrate DB: %w", err)
	}
	return gs, sqlDB.Close, nil
}

// closeLogged runs closeFn and logs its error instead of returning it.
func closeLogged(closeFn func() error) {
	if err := closeFn(); err != nil {
		log.Printf("⚠️  Failed to close store: %s", err)
	}
}

func retryConfig(cfg *config.Config) repository.RetryConfig {
	rc := repository.DefaultRetryConfig()
	if cfg.RetryAttempts > 0 {
		rc.MaxAttempts = cfg.RetryAttempts
	}
	if cfg.RetryInitialMS > 0 {
		rc.InitialInterval = time.Duration(cfg.RetryInitialMS) * time.Millisecond
	}
	return rc
}
