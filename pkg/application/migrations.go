package application

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// MigrationManager collects embedded per-module schema files and applies them
// in registration order. Schema files are idempotent (CREATE TABLE IF NOT
// EXISTS), so reapplying on boot is safe.
type MigrationManager interface {
	RegisterSchema(fs ...*embed.FS)
	Run(ctx context.Context) error
}

func NewMigrationManager(pool *pgxpool.Pool) MigrationManager {
	return &migrationManager{pool: pool}
}

type migrationManager struct {
	pool    *pgxpool.Pool
	schemas []*embed.FS
}

func (m *migrationManager) RegisterSchema(fsys ...*embed.FS) {
	m.schemas = append(m.schemas, fsys...)
}

func (m *migrationManager) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	for _, schema := range m.schemas {
		files, err := listSQLFiles(schema)
		if err != nil {
			return err
		}
		for _, file := range files {
			contents, err := schema.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read schema %q: %w", file, err)
			}
			if _, err := m.pool.Exec(ctx, string(contents)); err != nil {
				return fmt.Errorf("failed to apply schema %q: %w", file, err)
			}
		}
	}
	return nil
}

func listSQLFiles(fsys fs.FS) ([]string, error) {
	var files []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error reading schema directory: %w", err)
	}
	sort.Strings(files)
	return files, nil
}
