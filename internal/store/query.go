package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// eventTable describes how one event table maps onto EventRecord.
type eventTable struct {
	name    string
	typ     string
	columns []string
	scan    func(rows *entsql.Rows, rec *EventRecord) error
}

// Every table's first columns are sequence, timestamp and session_id.
var eventTables = []eventTable{
	{
		name:    "lesson_events",
		typ:     "lesson",
		columns: []string{"action", "letter", "letter_index"},
		scan: func(rows *entsql.Rows, rec *EventRecord) error {
			var (
				ts    int64
				index int
			)
			if err := rows.Scan(&rec.Sequence, &ts, &rec.SessionID, &rec.Action, &rec.Letter, &index); err != nil {
				return err
			}
			rec.Timestamp = time.UnixMilli(ts)
			rec.Detail = fmt.Sprintf("#%d", index+1)
			return nil
		},
	},
	{
		name:    "game_events",
		typ:     "game",
		columns: []string{"action", "letter", "game", "score"},
		scan: func(rows *entsql.Rows, rec *EventRecord) error {
			var (
				ts    int64
				game  string
				score int
			)
			if err := rows.Scan(&rec.Sequence, &ts, &rec.SessionID, &rec.Action, &rec.Letter, &game, &score); err != nil {
				return err
			}
			rec.Timestamp = time.UnixMilli(ts)
			rec.Detail = fmt.Sprintf("%s score=%d", game, score)
			return nil
		},
	},
	{
		name:    "audio_events",
		typ:     "audio",
		columns: []string{"kind", "backend", "success", "error_message"},
		scan: func(rows *entsql.Rows, rec *EventRecord) error {
			var (
				ts              int64
				backend, errMsg string
				success         bool
			)
			if err := rows.Scan(&rec.Sequence, &ts, &rec.SessionID, &rec.Action, &backend, &success, &errMsg); err != nil {
				return err
			}
			rec.Timestamp = time.UnixMilli(ts)
			rec.Detail = backend
			if !success {
				rec.Detail = backend + ": " + errMsg
			}
			return nil
		},
	},
}

// eventFilter turns opts into predicates over the common columns.
func eventFilter(opts QueryOpts) []*entsql.Predicate {
	var preds []*entsql.Predicate
	if opts.After > 0 {
		preds = append(preds, entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE("timestamp", opts.From.UnixMilli()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE("timestamp", opts.To.UnixMilli()))
	}
	if opts.SessionID != "" {
		preds = append(preds, entsql.EQ("session_id", opts.SessionID))
	}
	return preds
}

// QueryEvents reads the newest matching rows of each table and merges them.
// A limit applies per table first, which is enough to find the overall
// newest events.
func (r *eventRepo) QueryEvents(ctx context.Context, opts QueryOpts) ([]EventRecord, error) {
	var records []EventRecord
	for _, t := range eventTables {
		sel := builder.Select(append([]string{"sequence", "timestamp", "session_id"}, t.columns...)...).
			From(entsql.Table(t.name)).
			OrderBy(entsql.Desc("sequence"))
		if preds := eventFilter(opts); len(preds) > 0 {
			sel.Where(entsql.And(preds...))
		}
		if opts.Limit > 0 {
			sel.Limit(opts.Limit)
		}

		recs, err := r.queryTable(ctx, t, sel)
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", t.name, err)
		}
		records = append(records, recs...)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Sequence > records[j].Sequence
	})
	if opts.Limit > 0 && len(records) > opts.Limit {
		records = records[:opts.Limit]
	}
	return records, nil
}

func (r *eventRepo) queryTable(ctx context.Context, t eventTable, sel *entsql.Selector) ([]EventRecord, error) {
	q, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []EventRecord
	for rows.Next() {
		rec := EventRecord{Type: t.typ}
		if err := t.scan(&rows, &rec); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *eventRepo) Summary(ctx context.Context) (*Summary, error) {
	sum := &Summary{GamesCompleted: make(map[string]int)}

	var last int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT session_id), COALESCE(MAX(timestamp), 0)
		FROM (SELECT session_id, timestamp FROM lesson_events
			UNION ALL SELECT session_id, timestamp FROM game_events
			UNION ALL SELECT session_id, timestamp FROM audio_events)`,
	).Scan(&sum.Sessions, &last)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	if last > 0 {
		sum.LastActivity = time.UnixMilli(last)
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM audio_events WHERE NOT success`,
	).Scan(&sum.AudioFailures)
	if err != nil {
		return nil, fmt.Errorf("query audio failures: %w", err)
	}

	letters := make(map[string]*LetterStats)
	stat := func(l string) *LetterStats {
		s, ok := letters[l]
		if !ok {
			s = &LetterStats{Letter: l}
			letters[l] = s
		}
		return s
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT letter, action, COUNT(*) FROM lesson_events GROUP BY letter, action`)
	if err != nil {
		return nil, fmt.Errorf("query lesson stats: %w", err)
	}
	for rows.Next() {
		var (
			letter, action string
			n              int
		)
		if err := rows.Scan(&letter, &action, &n); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan lesson stats: %w", err)
		}
		switch action {
		case LessonOpened:
			stat(letter).Opens += n
		case LessonCompleted:
			stat(letter).Completions += n
			sum.LessonsCompleted += n
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query lesson stats: %w", err)
	}

	rows, err = r.db.QueryContext(ctx,
		`SELECT letter, game, COUNT(*) FROM game_events WHERE action = ? GROUP BY letter, game`,
		GameCompleted)
	if err != nil {
		return nil, fmt.Errorf("query game stats: %w", err)
	}
	for rows.Next() {
		var (
			letter, game string
			n            int
		)
		if err := rows.Scan(&letter, &game, &n); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan game stats: %w", err)
		}
		stat(letter).GamesCompleted += n
		sum.GamesCompleted[game] += n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query game stats: %w", err)
	}

	for _, s := range letters {
		sum.Letters = append(sum.Letters, *s)
	}
	sort.Slice(sum.Letters, func(i, j int) bool {
		return sum.Letters[i].Letter < sum.Letters[j].Letter
	})
	return sum, nil
}
