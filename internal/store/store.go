// Package store persists the catalog, learner mastery, quiz attempts,
// sessions and LLM request events in SQLite through ent.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/masteryforge/ent"

	_ "modernc.org/sqlite"
)

// Pragmas set through the DSN apply to every pooled connection.
var connPragmas = []string{"foreign_keys(1)", "busy_timeout(5000)"}

// Pragmas that persist in the database file only need running once.
var filePragmas = []string{"journal_mode = WAL", "synchronous = NORMAL"}

// Store owns the database handle and hands out repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
}

// Open is OpenContext with a background context.
func Open(dsn string) (*Store, error) {
	return OpenContext(context.Background(), dsn)
}

// OpenContext opens the SQLite database at dsn and migrates the schema.
func OpenContext(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", withConnPragmas(dsn))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	for _, p := range filePragmas {
		if _, err := db.ExecContext(ctx, "PRAGMA "+p); err != nil {
			db.Close()
			return nil, fmt.Errorf("PRAGMA %s: %w", p, err)
		}
	}

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	if err := client.Schema.Create(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return &Store{db: db, client: client}, nil
}

func (s *Store) Client() *ent.Client { return s.client }

// DB exposes the raw handle for pragmas and diagnostics.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.client.Close() }

func (s *Store) CatalogRepo() CatalogRepo { return &catalogRepo{client: s.client} }

func (s *Store) MasteryRepo() MasteryRepo { return &masteryRepo{client: s.client} }

func (s *Store) SessionRepo() SessionRepo { return &sessionRepo{client: s.client} }

func (s *Store) EventRepo() EventRepo { return &eventRepo{client: s.client} }

// withConnPragmas appends connPragmas unless the DSN already sets its own.
func withConnPragmas(dsn string) string {
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	parts := make([]string, len(connPragmas))
	for i, p := range connPragmas {
		parts[i] = "_pragma=" + p
	}
	return dsn + sep + strings.Join(parts, "&")
}

// DefaultDBPath is $MASTERYFORGE_DB when set, otherwise masteryforge.db
// under $XDG_DATA_HOME (or ~/.local/share). The parent directory is
// created.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("MASTERYFORGE_DB"); p != "" {
		return p, EnsureDir(p)
	}
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}
	p := filepath.Join(base, "masteryforge", "masteryforge.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

// withTx commits when fn succeeds and rolls back otherwise, including on
// panic.
func withTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) (err error) {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err = fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rollback: %v", err, rerr)
		}
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
