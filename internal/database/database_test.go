package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func openTemp(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := Open(Config{Path: filepath.Join(t.TempDir(), "tracks.db")})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestRunMigrationsEmbedded(t *testing.T) {
	conn := openTemp(t)
	m := NewMigrationManager(conn, nil)

	if err := m.RunMigrations(); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	// second run is a no-op
	if err := m.RunMigrations(); err != nil {
		t.Fatalf("rerun migrations: %v", err)
	}

	applied, err := m.GetAppliedMigrations()
	if err != nil {
		t.Fatalf("applied: %v", err)
	}
	if !applied[1] || !applied[2] {
		t.Fatalf("expected migrations 1 and 2 applied, got %v", applied)
	}

	for _, table := range []string{"place_visits", "activity_intervals"} {
		var name string
		err := conn.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Fatalf("expected table %s: %v", table, err)
		}
	}
}

func TestLoadMigrationsOrderAndSkip(t *testing.T) {
	conn := openTemp(t)
	src := fstest.MapFS{
		"010_later.sql": {Data: []byte("CREATE TABLE later (id INTEGER);")},
		"002_first.sql": {Data: []byte("CREATE TABLE first (id INTEGER);")},
		"notes.txt":     {Data: []byte("ignored")},
		"bad_name.sql":  {Data: []byte("ignored")},
	}

	migrations, err := NewMigrationManager(conn, src).LoadMigrations()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(migrations) != 2 || migrations[0].Version != 2 || migrations[1].Version != 10 {
		t.Fatalf("unexpected migrations %+v", migrations)
	}
}

func TestTransactionRollback(t *testing.T) {
	conn := openTemp(t)
	if _, err := conn.Exec("CREATE TABLE t (v INTEGER)"); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	err := Transaction(context.Background(), conn, func(tx *sql.Tx) error {
		if _, err := tx.Exec("INSERT INTO t (v) VALUES (1)"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM t").Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("expected rollback, found %d rows", n)
	}
}
