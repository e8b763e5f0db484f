package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/ponyo877/pyxl/server/domain"
)

const driverName = "sqlite3_with_go_func"

func init() {
	sql.Register(driverName,
		&sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				if err := conn.RegisterFunc("pixel_x", pixelX, true); err != nil {
					return err
				}
				return conn.RegisterFunc("pixel_y", pixelY, true)
			},
		})
}

// pixelX and pixelY expose the coordinates of a record key to SQL.
func pixelX(key string) (int, error) {
	x, _, err := domain.DecodeKey(key)
	return x, err
}

func pixelY(key string) (int, error) {
	_, y, err := domain.DecodeKey(key)
	return y, err
}

const defaultBusyTimeout = 5 * time.Second

const schema = `
CREATE TABLE IF NOT EXISTS rooms (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	width      INTEGER NOT NULL,
	height     INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS room_colors (
	room_id  TEXT NOT NULL REFERENCES rooms(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	value    TEXT NOT NULL,
	PRIMARY KEY (room_id, position),
	UNIQUE (room_id, value)
);
CREATE TABLE IF NOT EXISTS partitions (
	room_id    TEXT PRIMARY KEY REFERENCES rooms(id) ON DELETE CASCADE,
	created_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS pixels (
	partition TEXT NOT NULL REFERENCES partitions(room_id) ON DELETE CASCADE,
	key       TEXT NOT NULL,
	value     TEXT NOT NULL,
	PRIMARY KEY (partition, key)
) WITHOUT ROWID;
`

// Open opens (creating if needed) the SQLite database at path in WAL mode
// with full fsync on commit, and applies the schema.
func Open(path string, busyTimeout time.Duration) (*sql.DB, error) {
	if busyTimeout <= 0 {
		busyTimeout = defaultBusyTimeout
	}
	params := url.Values{}
	params.Set("_journal_mode", "WAL")
	params.Set("_synchronous", "FULL")
	params.Set("_foreign_keys", "on")
	params.Set("_busy_timeout", fmt.Sprint(busyTimeout.Milliseconds()))
	dsn := fmt.Sprintf("file:%s?%s", path, params.Encode())

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect db %s: %w", path, err)
	}
	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}
