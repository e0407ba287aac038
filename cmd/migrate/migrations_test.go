package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/pressly/goose/v3"
)

func repoMigrationsDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	// this file lives in cmd/migrate/, so repo root is ../..
	repoRoot := filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", ".."))
	return filepath.Join(repoRoot, "db", "migrations")
}

func TestCollectMigrations_ParsesMigrationsDir(t *testing.T) {
	migrations, err := goose.CollectMigrations(repoMigrationsDir(t), 0, goose.MaxVersion)
	if err != nil {
		t.Fatalf("expected migrations to parse, got error: %v", err)
	}
	if len(migrations) == 0 {
		t.Fatal("expected at least one migration")
	}
}

func TestMigrations_DefineBooksTable(t *testing.T) {
	dir := repoMigrationsDir(t)
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir(%s): %v", dir, err)
	}

	var all strings.Builder
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			t.Fatalf("ReadFile(%s): %v", e.Name(), err)
		}
		if !strings.Contains(string(b), "-- +goose Up") || !strings.Contains(string(b), "-- +goose Down") {
			t.Fatalf("%s missing goose Up/Down directives", e.Name())
		}
		all.Write(b)
	}

	sql := all.String()
	for _, column := range []string{"book_id", "title", "authors", "description", "pages", "rating", "rating_count", "genres", "image_url"} {
		if !strings.Contains(sql, column) {
			t.Errorf("migrations never mention column %q", column)
		}
	}
}

func TestMigrationsDir(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv("MIGRATIONS_DIR", "/srv/bookshelf/migrations")
		if got := migrationsDir(); got != "/srv/bookshelf/migrations" {
			t.Fatalf("migrationsDir() = %q, want MIGRATIONS_DIR value", got)
		}
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv("MIGRATIONS_DIR", "")
		if got := migrationsDir(); got != "db/migrations" {
			t.Fatalf("migrationsDir() = %q, want db/migrations", got)
		}
	})
}
