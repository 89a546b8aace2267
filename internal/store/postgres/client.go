package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"fishguide/internal/store"
)

var _ store.KV = (*Client)(nil)

// Pool is the subset of *pgxpool.Pool the client uses.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

type Client struct {
	pool Pool
}

func New(ctx context.Context, dsn string) (*Client, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	return NewWithPool(pool), nil
}

func NewWithPool(pool Pool) *Client {
	return &Client{pool: pool}
}

func (c *Client) Close(ctx context.Context) error {
	c.pool.Close()
	return nil
}

func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := c.pool.QueryRow(ctx, `SELECT value FROM fishguide_kv WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading key %q: %w", key, err)
	}
	return value, nil
}

func (c *Client) Put(ctx context.Context, key string, value []byte) error {
	query := `
INSERT INTO fishguide_kv (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET
    value = EXCLUDED.value,
    updated_at = EXCLUDED.updated_at
`
	if _, err := c.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}

func (c *Client) Sizes(ctx context.Context) (map[string]int, error) {
	rows, err := c.pool.Query(ctx, `SELECT key, octet_length(value) FROM fishguide_kv`)
	if err != nil {
		return nil, fmt.Errorf("query key sizes: %w", err)
	}
	defer rows.Close()

	sizes := make(map[string]int)
	for rows.Next() {
		var key string
		var size int32
		if err := rows.Scan(&key, &size); err != nil {
			return nil, fmt.Errorf("scanning key size: %w", err)
		}
		sizes[key] = int(size)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating key sizes: %w", err)
	}

	return sizes, nil
}
