package repos

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"omoro/internal/kv"
	applog "omoro/internal/log"
)

// KVRepo persists kv.Store values in sqlite, partitioned by client id.
type KVRepo struct {
	db     *sqlx.DB
	schema lazySchema
}

func NewKVRepo(db *sqlx.DB) *KVRepo {
	return &KVRepo{db: db, schema: lazySchema{ddl: kvSchema}}
}

// Store returns the kv.Store for one client. An empty client id has no storage.
func (r *KVRepo) Store(clientID string) kv.Store {
	if clientID == "" {
		return kv.Unavailable{}
	}
	return &clientStore{repo: r, client: clientID}
}

// Clients lists client ids that have stored at least one key.
func (r *KVRepo) Clients(ctx context.Context) ([]string, error) {
	if err := r.schema.ensure(ctx, r.db); err != nil {
		return nil, err
	}
	var out []string
	err := r.db.SelectContext(ctx, &out, `SELECT DISTINCT client_id FROM local_store ORDER BY client_id`)
	return out, err
}

func (r *KVRepo) get(ctx context.Context, client, key string) ([]byte, bool) {
	if err := r.schema.ensure(ctx, r.db); err != nil {
		applog.Error(nil, "kv.schema.fail", err, nil)
		return nil, false
	}
	var v []byte
	err := r.db.GetContext(ctx, &v, `SELECT value FROM local_store WHERE client_id=? AND key=?`, client, key)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			applog.Error(nil, "kv.get.fail", err, map[string]any{"key": key})
		}
		return nil, false
	}
	return v, true
}

func (r *KVRepo) set(ctx context.Context, client, key string, value []byte) error {
	if err := r.schema.ensure(ctx, r.db); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO local_store(client_id,key,value,updated_at) VALUES(?,?,?,CURRENT_TIMESTAMP)
ON CONFLICT(client_id,key) DO UPDATE SET value=excluded.value, updated_at=CURRENT_TIMESTAMP`,
		client, key, value)
	return err
}

type clientStore struct {
	repo   *KVRepo
	client string
}

func (s *clientStore) Get(ctx context.Context, key string) ([]byte, bool) {
	return s.repo.get(ctx, s.client, key)
}

func (s *clientStore) Set(ctx context.Context, key string, value []byte) error {
	return s.repo.set(ctx, s.client, key, value)
}
