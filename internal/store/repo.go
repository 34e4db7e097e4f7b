package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	Before    int64     // sequence < Before
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
	SessionID string    // only this session when set
}

// Lesson actions.
const (
	LessonOpened    = "opened"
	LessonReplayed  = "replayed"
	LessonCompleted = "completed"
)

// Game actions.
const (
	GameOpened    = "opened"
	GameCompleted = "completed"
	GameClosed    = "closed"
)

// Audio event kinds.
const (
	AudioSpeak = "speak"
	AudioCue   = "cue"
)

// LessonEventData captures one lesson transition.
type LessonEventData struct {
	SessionID string
	Action    string
	Letter    string
	Index     int
}

// GameEventData captures one mini-game transition.
type GameEventData struct {
	SessionID  string
	Action     string
	Letter     string
	Game       string
	Score      int
	DurationMs int64
}

// AudioEventData captures one narration or cue request.
type AudioEventData struct {
	SessionID    string
	Backend      string
	Kind         string
	Text         string
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRecord is one row of any event table, merged by sequence.
type EventRecord struct {
	Sequence  int64
	Timestamp time.Time
	SessionID string
	Type      string // "lesson", "game" or "audio"
	Action    string
	Letter    string
	Detail    string
}

// LetterStats aggregates the collector's view of one letter.
type LetterStats struct {
	Letter         string
	Opens          int
	Completions    int
	GamesCompleted int
}

// Summary aggregates everything the collector has seen.
type Summary struct {
	Sessions         int
	LessonsCompleted int
	GamesCompleted   map[string]int
	AudioFailures    int
	LastActivity     time.Time
	Letters          []LetterStats
}

// EventRepo provides append access to collector events and the read-only
// queries used for reporting.
type EventRepo interface {
	AppendLessonEvent(ctx context.Context, data LessonEventData) error
	AppendGameEvent(ctx context.Context, data GameEventData) error
	AppendAudioEvent(ctx context.Context, data AudioEventData) error

	// QueryEvents returns events of all types, newest first.
	QueryEvents(ctx context.Context, opts QueryOpts) ([]EventRecord, error)

	// Summary aggregates all recorded events.
	Summary(ctx context.Context) (*Summary, error)
}

// eventRepo implements EventRepo on the ent SQL builder and the global
// sequence counter. Summary aggregates run as plain SQL on db.
type eventRepo struct {
	drv *entsql.Driver
	db  *sql.DB
	seq *sequenceCounter
}

var builder = entsql.Dialect(dialect.SQLite)

// insert stamps a row with the next sequence, the session and the current
// time and appends it to table. columns and values hold the table's own
// fields.
func (r *eventRepo) insert(ctx context.Context, table, sessionID string, columns []string, values ...any) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	q, args := builder.Insert(table).
		Columns(append([]string{"sequence", "session_id", "timestamp"}, columns...)...).
		Values(append([]any{seqNum, sessionID, time.Now().UnixMilli()}, values...)...).
		Query()
	return r.drv.Exec(ctx, q, args, nil)
}
