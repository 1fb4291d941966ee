package repos

import (
	"context"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB connects to sqlite. Tables are created lazily by each repo on first use.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// one connection: ":memory:" databases are per-connection and sqlite serializes writers anyway
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// lazySchema runs its DDL once it first succeeds. A failed attempt is retried
// on the next call.
type lazySchema struct {
	ddl   string
	mu    sync.Mutex
	ready bool
}

func (s *lazySchema) ensure(ctx context.Context, db *sqlx.DB) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return nil
	}
	if _, err := db.ExecContext(ctx, s.ddl); err != nil {
		return err
	}
	s.ready = true
	return nil
}

const kvSchema = `
CREATE TABLE IF NOT EXISTS local_store(
  client_id  TEXT NOT NULL,
  key        TEXT NOT NULL,
  value      BLOB NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (client_id, key)
);
`

const enquirySchema = `
CREATE TABLE IF NOT EXISTS enquiries(
  id           INTEGER PRIMARY KEY AUTOINCREMENT,
  client_id    TEXT NOT NULL,
  type         TEXT NOT NULL,
  name         TEXT NOT NULL,
  phone        TEXT NOT NULL,
  email        TEXT NOT NULL DEFAULT '',
  location     TEXT NOT NULL DEFAULT '',
  message      TEXT NOT NULL DEFAULT '',
  product_name TEXT NOT NULL DEFAULT '',
  model_number TEXT NOT NULL DEFAULT '',
  date         TEXT NOT NULL,
  status       TEXT NOT NULL DEFAULT 'new'
);
CREATE INDEX IF NOT EXISTS idx_enquiries_client_date ON enquiries(client_id, date);
`
