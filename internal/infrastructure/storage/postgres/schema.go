package postgres

import (
	"context"
	"fmt"
)

// schemaDDL creates the three collections: the append-only transaction
// ledger, the product catalog and the settings singleton, plus worker
// accounts. Transactions deliberately carry no foreign key to products:
// history must survive catalog deletions.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id          UUID PRIMARY KEY,
		name        TEXT NOT NULL,
		code        TEXT,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id            UUID PRIMARY KEY,
		date          DATE NOT NULL,
		product_id    UUID NOT NULL,
		product_name  TEXT NOT NULL,
		type          TEXT NOT NULL CHECK (type IN ('in', 'out')),
		quantity      BIGINT NOT NULL CHECK (quantity > 0),
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		worker_id     TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions (date)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_product ON transactions (product_id)`,
	`CREATE TABLE IF NOT EXISTS settings (
		id          INT PRIMARY KEY,
		unit_price  NUMERIC(15,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS workers (
		id             UUID PRIMARY KEY,
		email          TEXT NOT NULL UNIQUE,
		password_hash  TEXT NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema creates missing tables and indexes. Safe to run on every
// startup.
func EnsureSchema(ctx context.Context, pool *Pool) error {
	for _, ddl := range schemaDDL {
		if _, err := pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
