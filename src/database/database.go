package database

import (
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/username/moneymetrics/src/logger"
	_ "modernc.org/sqlite"
)

// Snapshot keys: one entry per independently persisted store. The names
// carry over from the original web app's local storage layout.
const (
	KeyTransactions = "money-counter-transactions"
	KeyGoals        = "money-counter-goals"
	KeyAchievements = "moneymetrics-achievements"
	KeyShown        = "moneymetrics-shown-achievements"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store persists whole-collection JSON snapshots in a local SQLite
// file, the closest analogue of the browser key-value storage the app
// grew up with. Each snapshot is written atomically as one row.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the snapshot database at databasePath and
// applies pending migrations.
func New(databasePath string) (*Store, error) {
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(on)", databasePath)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", databasePath, err)
	}

	// Limit open connections to 1 for SQLite to avoid locking issues
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err = runMigrations(db, databasePath); err != nil {
		db.Close()
		return nil, err
	}

	logger.L.Info("Snapshot database ready", "path", databasePath)
	return &Store{db: db}, nil
}

func runMigrations(db *sql.DB, databasePath string) error {
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create sqlite migration driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("could not load embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, databasePath, driver)
	if err != nil {
		return fmt.Errorf("migration instance creation failed: %w", err)
	}

	if err = m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.L.Debug("No new database migrations to apply.")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	logger.L.Info("Database migrations applied successfully.")
	return nil
}

// SaveSnapshot serializes v as JSON and upserts it under key.
func (s *Store) SaveSnapshot(key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot %s: %w", key, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(payload))
	if err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", key, err)
	}
	return nil
}

// LoadSnapshot reads the snapshot stored under key into dst. It returns
// false with a nil error when no snapshot exists, and an error when the
// stored payload cannot be parsed; callers are expected to fall back to
// a default value in either case.
func (s *Store) LoadSnapshot(key string, dst any) (bool, error) {
	var payload string
	err := s.db.QueryRow(`SELECT value FROM snapshots WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read snapshot %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(payload), dst); err != nil {
		return false, fmt.Errorf("failed to parse snapshot %s: %w", key, err)
	}
	return true, nil
}

// DeleteSnapshot removes the snapshot stored under key. Deleting a
// missing key is a no-op.
func (s *Store) DeleteSnapshot(key string) error {
	if _, err := s.db.Exec(`DELETE FROM snapshots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
