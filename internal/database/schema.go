package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is applied at startup. Every statement is idempotent so restarting
// the server against an existing database is a no-op.
//
// raffle_code_seq backs the human-facing raffle codes ("R1", "R2", ...).
// A sequence survives raffle deletions, so codes are never reused, and
// nextval is atomic, so concurrent creations cannot collide.
//
// The unique index on tickets(raffle_id, number) makes the lazy inventory
// seed a conditional insert: if two requests race the first read, only one
// set of rows lands.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	role          TEXT NOT NULL DEFAULT 'user',
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE SEQUENCE IF NOT EXISTS raffle_code_seq;

CREATE TABLE IF NOT EXISTS raffles (
	id         UUID PRIMARY KEY,
	code       TEXT NOT NULL UNIQUE,
	title      TEXT NOT NULL,
	slogan     TEXT NOT NULL,
	prize      TEXT NOT NULL,
	price      NUMERIC NOT NULL,
	draw_date  DATE,
	owner_id   UUID NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS tickets (
	id             UUID PRIMARY KEY,
	raffle_id      UUID NOT NULL REFERENCES raffles(id) ON DELETE CASCADE,
	number         CHAR(2) NOT NULL,
	status         TEXT NOT NULL DEFAULT 'available',
	paid           BOOLEAN NOT NULL DEFAULT FALSE,
	buyer          TEXT NOT NULL DEFAULT '',
	payment_method TEXT NOT NULL DEFAULT 'none',
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS tickets_raffle_number_idx
	ON tickets (raffle_id, number);
`

func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
