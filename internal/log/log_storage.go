// log_storage.go implements SQLite-based persistent audit logging.
//
// The project column holds a hash of the working directory, so history from
// different directories can share one database without recording paths of
// unrelated projects in clear. Tag data itself never lives here; the log is
// a record of operations, not a second copy of the attributes.
//
// Errors during logging are reported on stderr and otherwise ignored. A tag
// write succeeds even if it cannot be recorded.

package log

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// Logger writes audit log entries to a SQLite database.
type Logger struct {
	db      *sql.DB
	project string
}

func (l *Logger) log(e Entry) {
	detail := jsonOrNil(e.Detail, len(e.Detail) > 0)
	tags := jsonOrNil(e.Tags, len(e.Tags) > 0)

	success := 0
	if e.Success {
		success = 1
	}

	_, err := l.db.Exec(`
		INSERT INTO log (start, end, project, source, action, path, tags,
		                 success, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Start, e.End, l.project, e.Source, e.Action,
		nilIfEmpty(e.Path), tags, success, nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "finder-tags: audit log write failed: %v\n", err)
	}
}

func (l *Logger) recent(limit int, since int64) ([]Entry, error) {
	rows, err := l.db.Query(`
		SELECT id, start, end, source, action, path, tags, success, error, detail
		FROM log WHERE project = ? AND start >= ? ORDER BY id DESC LIMIT ?`,
		l.project, since, limit)
	if err != nil {
		return nil, fmt.Errorf("querying audit log: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e                          Entry
			path, tags, errMsg, detail sql.NullString
			success                    int
		)
		if err := rows.Scan(&e.ID, &e.Start, &e.End, &e.Source, &e.Action,
			&path, &tags, &success, &errMsg, &detail); err != nil {
			return nil, fmt.Errorf("reading audit log: %w", err)
		}
		e.Path = path.String
		e.Error = errMsg.String
		e.Success = success == 1
		if tags.Valid {
			_ = json.Unmarshal([]byte(tags.String), &e.Tags)
		}
		if detail.Valid {
			_ = json.Unmarshal([]byte(detail.String), &e.Detail)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// dbPathFunc is the function that returns the database path.
// Tests can override this to use a temp directory.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to current directory if home cannot be determined.
		return filepath.Join(".finder-tags", "log", "finder-tags-log.db")
	}
	return filepath.Join(home, ".finder-tags", "log", "finder-tags-log.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the log database.
func DBPath() string {
	return dbPath()
}

// hash creates a project identifier from the directory path.
func hash(s string) string {
	h, err := blake2b.New(8, nil) // 64-bit = 16 hex chars
	if err != nil {
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the log table if it doesn't exist. Safe for concurrent access.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS log (
			id      INTEGER PRIMARY KEY AUTOINCREMENT,
			start   INTEGER NOT NULL,
			end     INTEGER NOT NULL,
			project TEXT NOT NULL,
			source  TEXT NOT NULL,
			action  TEXT NOT NULL,
			path    TEXT,
			tags    TEXT,
			success INTEGER NOT NULL,
			error   TEXT,
			detail  TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_log_start ON log(start);
		CREATE INDEX IF NOT EXISTS idx_log_project ON log(project);
		CREATE INDEX IF NOT EXISTS idx_log_path ON log(path);
	`)
	return err
}

// jsonOrNil encodes v when present is true, returning nil for NULL columns.
func jsonOrNil(v any, present bool) *string {
	if !present {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	s := string(b)
	return &s
}

// nilIfEmpty returns nil for empty strings, reducing NULL checks in queries.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
