package database

import (
	"database/sql"
	"fmt"
	"log"
	"sort"
)

// Migration represents one schema migration, embedded in the binary
type Migration struct {
	Version int
	Name    string
	SQL     string
}

var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_argo_floats",
		SQL: `
			CREATE TABLE IF NOT EXISTS argo_floats (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				status TEXT NOT NULL DEFAULT 'active',
				battery_percent REAL NOT NULL DEFAULT 100,
				position_accuracy_km REAL NOT NULL DEFAULT 0,
				deployed_at INTEGER NOT NULL,
				last_contact_at INTEGER,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
		`,
	},
	{
		Version: 2,
		Name:    "create_trajectory_points",
		SQL: `
			CREATE TABLE IF NOT EXISTS trajectory_points (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				float_id INTEGER NOT NULL REFERENCES argo_floats(id),
				latitude REAL NOT NULL,
				longitude REAL NOT NULL,
				dataTime INTEGER NOT NULL,
				depth REAL,
				temperature REAL,
				salinity REAL,
				cycle_number INTEGER,
				qc_flag TEXT,
				status TEXT NOT NULL DEFAULT 'active'
			)
		`,
	},
	{
		Version: 3,
		Name:    "index_trajectory_points",
		SQL: `
			CREATE INDEX IF NOT EXISTS idx_trajectory_float_time
			ON trajectory_points(float_id, dataTime)
		`,
	},
	{
		Version: 4,
		Name:    "create_chat_messages",
		SQL: `
			CREATE TABLE IF NOT EXISTS chat_messages (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				session_id TEXT NOT NULL,
				role TEXT NOT NULL,
				content TEXT NOT NULL,
				created_at INTEGER NOT NULL
			)
		`,
	},
	{
		Version: 5,
		Name:    "index_chat_messages",
		SQL: `
			CREATE INDEX IF NOT EXISTS idx_chat_session
			ON chat_messages(session_id, created_at)
		`,
	},
}

// Migrate applies all pending migrations in version order
func Migrate(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	pending := make([]Migration, 0, len(migrations))
	for _, m := range migrations {
		if !applied[m.Version] {
			pending = append(pending, m)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].Version < pending[j].Version })

	for _, m := range pending {
		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		if _, err := db.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}

func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	return applied, rows.Err()
}
