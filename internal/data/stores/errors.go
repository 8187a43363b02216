package stores

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/colonyops/innview/internal/data/db"
)

// sqliteCode returns the primary result code of the first SQLite error in
// err's chain.
func sqliteCode(err error) (int, bool) {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return 0, false
	}
	return sqliteErr.Code() & 0xff, true
}

// IsBusyError reports whether another process holds the database lock.
func IsBusyError(err error) bool {
	code, ok := sqliteCode(err)
	return ok && code == sqlite3.SQLITE_BUSY
}

// IsCorruptionError reports whether the database file is damaged or is not a
// SQLite database at all.
func IsCorruptionError(err error) bool {
	code, ok := sqliteCode(err)
	return ok && (code == sqlite3.SQLITE_CORRUPT || code == sqlite3.SQLITE_NOTADB)
}

// IsNotFoundError reports whether a single-row query matched nothing.
func IsNotFoundError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// RecoverFromCorruption moves the gallery database and its WAL/SHM sidecars
// aside so the next Open starts from an empty file. It returns the backup
// path of the main file.
func RecoverFromCorruption(dataDir string) (string, error) {
	dbPath := filepath.Join(dataDir, db.FileName)
	backup := fmt.Sprintf("%s.corrupt.%s", dbPath, time.Now().Format("20060102-150405"))

	for _, suffix := range []string{"", "-wal", "-shm"} {
		err := os.Rename(dbPath+suffix, backup+suffix)
		switch {
		case err == nil, errors.Is(err, fs.ErrNotExist):
		case suffix == "":
			return "", fmt.Errorf("move corrupted database aside: %w", err)
		default:
			// A sidecar left behind would be replayed into the new file.
			if rmErr := os.Remove(dbPath + suffix); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
				return "", fmt.Errorf("clear %s file: %w", suffix, err)
			}
		}
	}
	return backup, nil
}
