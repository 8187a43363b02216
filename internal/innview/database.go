package innview

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/innview/internal/core/config"
	"github.com/colonyops/innview/internal/data/db"
	"github.com/colonyops/innview/internal/data/stores"
)

// OpenDatabase opens the registered image database. A corrupted file is
// moved aside and replaced with a fresh one.
func OpenDatabase(cfg *config.Config, log zerolog.Logger) (*db.DB, error) {
	opts := db.OpenOptions{
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
		BusyTimeout:  cfg.Database.BusyTimeout,
	}

	database, err := db.Open(cfg.DataDir, opts)
	if err == nil {
		return database, nil
	}

	switch {
	case stores.IsBusyError(err):
		return nil, fmt.Errorf("database is locked by another process: %w", err)
	case stores.IsCorruptionError(err):
		backup, rerr := stores.RecoverFromCorruption(cfg.DataDir)
		if rerr != nil {
			return nil, fmt.Errorf("recover corrupted database: %w", rerr)
		}
		log.Warn().Err(err).Str("backup", backup).Msg("database was corrupted, started a new one")
		return db.Open(cfg.DataDir, opts)
	default:
		return nil, err
	}
}
