package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Migrations contém os arquivos SQL versionados do schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir é o diretório dos arquivos dentro de Migrations.
const MigrationsDir = "migrations"

// RunMigrations executa um comando do goose (up, down, status, ...) com as migrations embutidas.
func RunMigrations(ctx context.Context, db *sql.DB, command string, args ...string) error {
	goose.SetBaseFS(Migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose: dialeto inválido: %w", err)
	}

	if err := goose.RunContext(ctx, command, db, MigrationsDir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}
