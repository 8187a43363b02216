package db

import (
	"cmp"
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"slices"
	"strconv"

	"github.com/colonyops/innview/internal/core/logging"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var migrationFile = regexp.MustCompile(`^(\d{4})_([a-z0-9_]+)\.(up|down)\.sql$`)

// migration is one step of the gallery schema. The schema version stored in
// PRAGMA user_version is the number of steps applied, so versions must run
// 1, 2, 3 ... without gaps.
type migration struct {
	version int
	name    string
	up      string
	down    string
}

func (m migration) String() string { return fmt.Sprintf("%04d_%s", m.version, m.name) }

// loadMigrations reads the embedded steps in version order.
func loadMigrations() ([]migration, error) {
	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	steps := make(map[int]*migration)
	for _, file := range files {
		version, name, direction, err := parseFilename(path.Base(file))
		if err != nil {
			return nil, fmt.Errorf("migration %q: %w", path.Base(file), err)
		}

		body, err := migrationsFS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}

		m, ok := steps[version]
		if !ok {
			m = &migration{version: version, name: name}
			steps[version] = m
		}
		if m.name != name {
			return nil, fmt.Errorf("version %04d is named both %q and %q", version, m.name, name)
		}

		half := &m.up
		if direction == "down" {
			half = &m.down
		}
		if *half != "" {
			return nil, fmt.Errorf("duplicate %s file for %s", direction, m)
		}
		*half = string(body)
	}

	out := make([]migration, 0, len(steps))
	for _, m := range steps {
		if m.up == "" || m.down == "" {
			return nil, fmt.Errorf("%s needs both an up and a down file", m)
		}
		out = append(out, *m)
	}
	slices.SortFunc(out, func(a, b migration) int { return cmp.Compare(a.version, b.version) })

	for i, m := range out {
		if m.version != i+1 {
			return nil, fmt.Errorf("migration versions must be contiguous: expected %04d, found %s", i+1, m)
		}
	}
	return out, nil
}

// parseFilename splits "NNNN_name.up.sql" into version, name and direction.
func parseFilename(filename string) (int, string, string, error) {
	parts := migrationFile.FindStringSubmatch(filename)
	if parts == nil {
		return 0, "", "", fmt.Errorf("expected NNNN_name.up.sql or NNNN_name.down.sql")
	}
	version, _ := strconv.Atoi(parts[1])
	if version == 0 {
		return 0, "", "", fmt.Errorf("version must be positive")
	}
	return version, parts[2], parts[3], nil
}

// schemaVersion returns the number of applied steps.
func schemaVersion(ctx context.Context, conn *sql.DB) (int, error) {
	var v int
	if err := conn.QueryRowContext(ctx, "PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return v, nil
}

// migrateUp brings the gallery schema to the newest embedded version.
func migrateUp(ctx context.Context, conn *sql.DB) error {
	steps, current, err := loadState(ctx, conn)
	if err != nil {
		return err
	}

	log := logging.Component("db")
	for _, m := range steps[current:] {
		log.Info().Int("schema", m.version).Str("step", m.name).Msg("upgrading gallery schema")
		if err := runStep(ctx, conn, m.up, m.version); err != nil {
			return fmt.Errorf("apply %s: %w", m, err)
		}
	}
	return nil
}

// MigrateDown reverts the newest n steps of the gallery schema.
func MigrateDown(ctx context.Context, conn *sql.DB, n int) error {
	if n <= 0 {
		return fmt.Errorf("n must be positive, got %d", n)
	}

	steps, current, err := loadState(ctx, conn)
	if err != nil {
		return err
	}
	if n > current {
		return fmt.Errorf("cannot revert %d steps: gallery schema is at version %d", n, current)
	}

	log := logging.Component("db")
	for _, m := range slices.Backward(steps[current-n : current]) {
		log.Info().Int("schema", m.version).Str("step", m.name).Msg("reverting gallery schema")
		if err := runStep(ctx, conn, m.down, m.version-1); err != nil {
			return fmt.Errorf("revert %s: %w", m, err)
		}
	}
	return nil
}

func loadState(ctx context.Context, conn *sql.DB) ([]migration, int, error) {
	steps, err := loadMigrations()
	if err != nil {
		return nil, 0, err
	}
	current, err := schemaVersion(ctx, conn)
	if err != nil {
		return nil, 0, err
	}
	if current > len(steps) {
		return nil, 0, fmt.Errorf("gallery schema version %d is newer than this build (%d)", current, len(steps))
	}
	return steps, current, nil
}

// runStep executes stmt and records version in one transaction.
func runStep(ctx context.Context, conn *sql.DB, stmt string, version int) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, stmt); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "PRAGMA user_version = "+strconv.Itoa(version)); err != nil {
		return fmt.Errorf("set schema version: %w", err)
	}
	return tx.Commit()
}
