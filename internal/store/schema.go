package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
)

// Every event table carries the shared sequence, a session id and a
// timestamp so events of different types can be merged in order.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS lesson_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		session_id TEXT NOT NULL,
		timestamp INTEGER NOT NULL,
		action TEXT NOT NULL,
		letter TEXT NOT NULL,
		letter_index INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS game_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		session_id TEXT NOT NULL,
		timestamp INTEGER NOT NULL,
		action TEXT NOT NULL,
		letter TEXT NOT NULL,
		game TEXT NOT NULL,
		score INTEGER NOT NULL DEFAULT 0,
		duration_ms INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS audio_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		session_id TEXT NOT NULL,
		timestamp INTEGER NOT NULL,
		backend TEXT NOT NULL,
		kind TEXT NOT NULL,
		text TEXT NOT NULL DEFAULT '',
		latency_ms INTEGER NOT NULL DEFAULT 0,
		success BOOLEAN NOT NULL,
		error_message TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS lesson_events_session ON lesson_events (session_id)`,
	`CREATE INDEX IF NOT EXISTS game_events_session ON game_events (session_id)`,
}

func migrate(ctx context.Context, drv dialect.ExecQuerier) error {
	for _, stmt := range schema {
		if err := drv.Exec(ctx, stmt, []any{}, nil); err != nil {
			return fmt.Errorf("exec schema: %w", err)
		}
	}
	return nil
}
