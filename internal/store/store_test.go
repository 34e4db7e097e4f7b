package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"lesson_events", "game_events", "audio_events", "global_sequence"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
	}
}

func TestReopenKeepsSequence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.EventRepo().AppendLessonEvent(ctx, LessonEventData{SessionID: "a", Action: LessonOpened, Letter: "A"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	if err := s.EventRepo().AppendLessonEvent(ctx, LessonEventData{SessionID: "b", Action: LessonOpened, Letter: "B"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := s.EventRepo().QueryEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 || events[0].Sequence != 2 || events[1].Sequence != 1 {
		t.Fatalf("events = %+v, want sequences [2 1]", events)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestQueryEventsMergesTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLessonEvent(ctx, LessonEventData{SessionID: "s1", Action: LessonOpened, Letter: "A", Index: 0}); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendAudioEvent(ctx, AudioEventData{SessionID: "s1", Backend: "command", Kind: AudioSpeak, Text: "A for Apple", Success: true}); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendGameEvent(ctx, GameEventData{SessionID: "s2", Action: GameCompleted, Letter: "A", Game: "letter-hunt", Score: 40}); err != nil {
		t.Fatal(err)
	}

	events, err := repo.QueryEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(events))
	}
	wantTypes := []string{"game", "audio", "lesson"}
	for i, e := range events {
		if e.Type != wantTypes[i] {
			t.Errorf("events[%d].Type = %q, want %q", i, e.Type, wantTypes[i])
		}
	}
	if events[0].Detail != "letter-hunt score=40" {
		t.Errorf("game detail = %q", events[0].Detail)
	}
	if events[2].Detail != "#1" {
		t.Errorf("lesson detail = %q", events[2].Detail)
	}

	events, err = repo.QueryEvents(ctx, QueryOpts{SessionID: "s1", Limit: 1})
	if err != nil {
		t.Fatalf("query session: %v", err)
	}
	if len(events) != 1 || events[0].Type != "audio" {
		t.Fatalf("events = %+v, want the single newest s1 event", events)
	}

	events, err = repo.QueryEvents(ctx, QueryOpts{After: 1, Before: 3})
	if err != nil {
		t.Fatalf("query range: %v", err)
	}
	if len(events) != 1 || events[0].Sequence != 2 {
		t.Fatalf("events = %+v, want sequence 2 only", events)
	}

	events, err = repo.QueryEvents(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	if err != nil {
		t.Fatalf("query from: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no future events, got %d", len(events))
	}
}

func TestQueryEventsLimitSpansTables(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	lesson := func(letter string, i int) {
		t.Helper()
		if err := repo.AppendLessonEvent(ctx, LessonEventData{SessionID: "s", Action: LessonOpened, Letter: letter, Index: i}); err != nil {
			t.Fatal(err)
		}
	}
	lesson("A", 0)
	if err := repo.AppendGameEvent(ctx, GameEventData{SessionID: "s", Action: GameOpened, Letter: "A", Game: "tracing"}); err != nil {
		t.Fatal(err)
	}
	lesson("B", 1)
	if err := repo.AppendAudioEvent(ctx, AudioEventData{SessionID: "s", Backend: "command", Kind: AudioSpeak, ErrorMessage: "boom"}); err != nil {
		t.Fatal(err)
	}
	lesson("C", 2)

	events, err := repo.QueryEvents(ctx, QueryOpts{Limit: 3})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	want := []struct {
		seq    int64
		typ    string
		detail string
	}{
		{5, "lesson", "#3"},
		{4, "audio", "command: boom"},
		{3, "lesson", "#2"},
	}
	if len(events) != len(want) {
		t.Fatalf("len(events) = %d, want %d", len(events), len(want))
	}
	for i, w := range want {
		e := events[i]
		if e.Sequence != w.seq || e.Type != w.typ || e.Detail != w.detail {
			t.Errorf("events[%d] = %d %s %q, want %d %s %q", i, e.Sequence, e.Type, e.Detail, w.seq, w.typ, w.detail)
		}
	}

	events, err = repo.QueryEvents(ctx, QueryOpts{Before: 5, After: 1, To: time.Now().Add(time.Minute)})
	if err != nil {
		t.Fatalf("query range: %v", err)
	}
	if len(events) != 3 || events[0].Sequence != 4 || events[2].Sequence != 2 {
		t.Fatalf("events = %+v, want sequences [4 3 2]", events)
	}
	if events[2].Detail != "tracing score=0" {
		t.Errorf("game detail = %q", events[2].Detail)
	}
}

func TestSummary(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	empty, err := repo.Summary(ctx)
	if err != nil {
		t.Fatalf("summary (empty): %v", err)
	}
	if empty.Sessions != 0 || !empty.LastActivity.IsZero() {
		t.Fatalf("empty summary = %+v", empty)
	}

	appends := []func() error{
		func() error {
			return repo.AppendLessonEvent(ctx, LessonEventData{SessionID: "s1", Action: LessonOpened, Letter: "A"})
		},
		func() error {
			return repo.AppendLessonEvent(ctx, LessonEventData{SessionID: "s1", Action: LessonCompleted, Letter: "A"})
		},
		func() error {
			return repo.AppendLessonEvent(ctx, LessonEventData{SessionID: "s2", Action: LessonOpened, Letter: "B", Index: 1})
		},
		func() error {
			return repo.AppendGameEvent(ctx, GameEventData{SessionID: "s2", Action: GameCompleted, Letter: "B", Game: "matching"})
		},
		func() error {
			return repo.AppendAudioEvent(ctx, AudioEventData{SessionID: "s2", Backend: "openai", Kind: AudioSpeak, Success: false, ErrorMessage: "rate limited"})
		},
	}
	for i, fn := range appends {
		if err := fn(); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	sum, err := repo.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Sessions != 2 {
		t.Errorf("sessions = %d, want 2", sum.Sessions)
	}
	if sum.LessonsCompleted != 1 {
		t.Errorf("lessons completed = %d, want 1", sum.LessonsCompleted)
	}
	if sum.GamesCompleted["matching"] != 1 {
		t.Errorf("matching completions = %d, want 1", sum.GamesCompleted["matching"])
	}
	if sum.AudioFailures != 1 {
		t.Errorf("audio failures = %d, want 1", sum.AudioFailures)
	}
	if sum.LastActivity.IsZero() {
		t.Error("expected last activity")
	}
	if len(sum.Letters) != 2 || sum.Letters[0].Letter != "A" || sum.Letters[1].Letter != "B" {
		t.Fatalf("letters = %+v", sum.Letters)
	}
	if sum.Letters[0].Opens != 1 || sum.Letters[0].Completions != 1 {
		t.Errorf("A stats = %+v", sum.Letters[0])
	}
	if sum.Letters[1].GamesCompleted != 1 {
		t.Errorf("B stats = %+v", sum.Letters[1])
	}
}

func TestCollectorStampsSession(t *testing.T) {
	s := openTestStore(t)
	c := NewCollector(s.EventRepo(), nil)
	if c.SessionID() == "" {
		t.Fatal("expected a session id")
	}

	c.Lesson(LessonOpened, "C", 2)
	c.Game(GameOpened, "C", "tracing", 0, 0)
	c.Audio(AudioEventData{Backend: "silent", Kind: AudioCue, Text: "success", Success: true})

	events, err := s.EventRepo().QueryEvents(context.Background(), QueryOpts{SessionID: c.SessionID()})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(events))
	}
}

func TestNilCollector(t *testing.T) {
	var c *Collector
	c.Lesson(LessonOpened, "A", 0)
	c.Game(GameOpened, "A", "tracing", 0, 0)
	c.Audio(AudioEventData{})
	if c.SessionID() != "" {
		t.Fatal("nil collector has no session")
	}
}
