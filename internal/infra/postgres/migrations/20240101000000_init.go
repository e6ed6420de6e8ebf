package migrations

import (
	"context"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

var Migrations = migrate.NewMigrations()

const createUsersSQL = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email);
`

const createQuizzesSQL = `
CREATE TABLE IF NOT EXISTS quizzes (
	id TEXT PRIMARY KEY,
	created_by TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	data JSONB NOT NULL
);
`

const createResultsSQL = `
CREATE TABLE IF NOT EXISTS results (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	taken_at TIMESTAMPTZ NOT NULL,
	data JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS results_user_taken_idx ON results (user_id, taken_at DESC);
`

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			for _, stmt := range []string{createUsersSQL, createQuizzesSQL, createResultsSQL} {
				if _, err := db.ExecContext(ctx, stmt); err != nil {
					return err
				}
			}
			return nil
		},
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS results; DROP TABLE IF EXISTS quizzes; DROP TABLE IF EXISTS users`)
			return err
		},
	)
}
