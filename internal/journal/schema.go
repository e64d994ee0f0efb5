package journal

import (
	"database/sql"

	"codeberg.org/mutker/dwm-statusbar/internal/errors"
	"codeberg.org/mutker/dwm-statusbar/internal/logger"
)

const (
	SchemaVersion = 1

	createTablesSQL = `
	   CREATE TABLE IF NOT EXISTS schema_versions (
	       version     INTEGER PRIMARY KEY,
	       applied_at  TEXT NOT NULL
	   );
	   CREATE TABLE IF NOT EXISTS events (
	       id              INTEGER PRIMARY KEY AUTOINCREMENT,
	       timestamp       INTEGER NOT NULL,
	       kind            TEXT NOT NULL,
	       battery_percent REAL NOT NULL,
	       battery_state   TEXT NOT NULL,
	       command         TEXT NOT NULL DEFAULT ''
	   );`

	dropTablesSQL = `
	   DROP TABLE IF EXISTS events;
	   DROP TABLE IF EXISTS schema_versions;`

	insertEventSQL = `
    INSERT INTO events (timestamp, kind, battery_percent, battery_state, command)
    VALUES (?, ?, ?, ?, ?)`
)

// ensureSchema creates the schema on a new database and recreates it when
// the stored version differs. Journal rows are not migrated.
func ensureSchema(db *sql.DB, log logger.Logger) error {
	errFactory := errors.New()

	version, err := schemaVersion(db)
	if err != nil {
		return errFactory.Wrap(ErrSchemaValidationFailed, err)
	}

	if version == SchemaVersion {
		log.Debug().Int("version", version).Msg("Schema version is current")
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return errFactory.Wrap(ErrSchemaInitFailed, err)
	}

	committed := false
	defer func() {
		if !committed {
			if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
				log.Debug().Err(err).Msg("Failed to rollback transaction")
			}
		}
	}()

	if version != 0 {
		log.Info().Int("from", version).Int("to", SchemaVersion).Msg("Recreating journal schema")
		if _, err := tx.Exec(dropTablesSQL); err != nil {
			return errFactory.Wrap(ErrSchemaInitFailed, err)
		}
	}

	if _, err := tx.Exec(createTablesSQL); err != nil {
		return errFactory.WithData(ErrSchemaInitFailed, struct {
			Error string
			Phase string
		}{
			Error: err.Error(),
			Phase: "create_tables",
		})
	}

	if _, err := tx.Exec(`
        INSERT INTO schema_versions (version, applied_at)
        VALUES (?, datetime('now'))
    `, SchemaVersion); err != nil {
		return errFactory.WithData(ErrSchemaInitFailed, struct {
			Error string
			Phase string
		}{
			Error: err.Error(),
			Phase: "record_version",
		})
	}

	if err := tx.Commit(); err != nil {
		return errFactory.Wrap(ErrSchemaInitFailed, err)
	}
	committed = true

	log.Info().Int("version", SchemaVersion).Msg("Schema initialized successfully")

	return nil
}

// schemaVersion returns 0 for a database without a schema
func schemaVersion(db *sql.DB) (int, error) {
	var exists bool
	err := db.QueryRow(`
        SELECT EXISTS (
            SELECT 1 FROM sqlite_master
            WHERE type='table' AND name='schema_versions'
        )
    `).Scan(&exists)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, nil
	}

	var version int
	err = db.QueryRow(`
        SELECT version
        FROM schema_versions
        ORDER BY version DESC
        LIMIT 1
    `).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return version, nil
}
