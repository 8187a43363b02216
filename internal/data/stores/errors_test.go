package stores

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/innview/internal/data/db"
)

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(sql.ErrNoRows))
	assert.True(t, IsNotFoundError(fmt.Errorf("wrapped: %w", sql.ErrNoRows)))
	assert.False(t, IsNotFoundError(errors.New("other")))
	assert.False(t, IsNotFoundError(nil))
}

func TestIsCorruptionError_FromOpen(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, db.FileName), bytes.Repeat([]byte{0xAB}, 4096), 0o644))

	_, err := db.Open(dataDir, db.DefaultOpenOptions())
	require.Error(t, err)
	assert.True(t, IsCorruptionError(err))
	assert.False(t, IsBusyError(err))
}

func TestSQLiteClassifiers_IgnorePlainErrors(t *testing.T) {
	// Only SQLite result codes count; matching text alone is not enough.
	for _, msg := range []string{"file is not a database", "database disk image is malformed", "database is locked"} {
		assert.False(t, IsCorruptionError(errors.New(msg)), msg)
		assert.False(t, IsBusyError(errors.New(msg)), msg)
	}
	assert.False(t, IsCorruptionError(nil))
}

func TestRecoverFromCorruption(t *testing.T) {
	dataDir := t.TempDir()
	dbPath := filepath.Join(dataDir, db.FileName)

	require.NoError(t, os.WriteFile(dbPath, []byte("not a database"), 0o644))
	require.NoError(t, os.WriteFile(dbPath+"-wal", []byte("wal"), 0o644))

	backup, err := RecoverFromCorruption(dataDir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(backup), db.FileName+".corrupt."))

	_, err = os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(dbPath + "-wal")
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(backup + "-wal")
	assert.NoError(t, err)

	database, err := db.Open(dataDir, db.DefaultOpenOptions())
	require.NoError(t, err)
	assert.NoError(t, database.Close())
}

func TestRecoverFromCorruption_MissingFile(t *testing.T) {
	_, err := RecoverFromCorruption(t.TempDir())
	assert.NoError(t, err)
}

func TestRecoverFromCorruption_MovesSHM(t *testing.T) {
	dataDir := t.TempDir()
	dbPath := filepath.Join(dataDir, db.FileName)
	require.NoError(t, os.WriteFile(dbPath, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(dbPath+"-shm", []byte("shm"), 0o644))

	backup, err := RecoverFromCorruption(dataDir)
	require.NoError(t, err)

	_, err = os.Stat(dbPath + "-shm")
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(backup + "-shm")
	assert.NoError(t, err)
}
