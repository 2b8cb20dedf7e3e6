package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/SeamusWaldron/gocube_solver"
	"github.com/SeamusWaldron/gocube_solver/internal/solver"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)

	v, err := db.CurrentVersion()
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if v != 1 {
		t.Errorf("expected schema version 1, got %d", v)
	}

	// Migrating again is a no-op.
	if err := db.MigrateUp(); err != nil {
		t.Errorf("second migration failed: %v", err)
	}
}

func TestJournalRecordAndGet(t *testing.T) {
	j := NewJournal(openTestDB(t))

	solution := "R2 U F'"
	id, err := j.Record(Entry{
		SolverURL: "http://solver",
		Facelets:  gocube.SolvedFacelets,
		Solution:  &solution,
		Duration:  1500 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if id == "" {
		t.Fatal("expected generated request id")
	}

	e, err := j.Get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !e.Succeeded() || *e.Solution != solution {
		t.Errorf("unexpected solution %+v", e)
	}
	if e.ErrorKind != nil {
		t.Errorf("successful entry should have no error kind, got %q", *e.ErrorKind)
	}
	if e.Duration != 1500*time.Millisecond {
		t.Errorf("expected 1.5s duration, got %v", e.Duration)
	}
	if e.Facelets != gocube.SolvedFacelets || e.SolverURL != "http://solver" {
		t.Errorf("unexpected entry %+v", e)
	}

	moves, err := j.Moves(id)
	if err != nil {
		t.Fatalf("moves: %v", err)
	}
	if got := strings.Join(moves, " "); got != "R R U F'" {
		t.Errorf("expected expanded moves, got %q", got)
	}
}

func TestJournalGetMissing(t *testing.T) {
	j := NewJournal(openTestDB(t))
	if _, err := j.Get("nope"); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestJournalListNewestFirst(t *testing.T) {
	j := NewJournal(openTestDB(t))

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	offsets := []time.Duration{0, time.Minute, time.Minute + 500*time.Millisecond}
	for i, off := range offsets {
		kind, msg := solver.KindServer, "bad state"
		_, err := j.Record(Entry{
			CreatedAt:    base.Add(off),
			Facelets:     gocube.SolvedFacelets,
			ErrorKind:    &kind,
			ErrorMessage: &msg,
		})
		if err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	entries, err := j.List(2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if !entries[0].CreatedAt.Equal(base.Add(offsets[2])) || !entries[1].CreatedAt.Equal(base.Add(offsets[1])) {
		t.Errorf("entries should be newest first: %v, %v", entries[0].CreatedAt, entries[1].CreatedAt)
	}
	if entries[0].Succeeded() || *entries[0].ErrorKind != solver.KindServer {
		t.Errorf("unexpected entry %+v", entries[0])
	}

	n, err := j.Count()
	if err != nil || n != 3 {
		t.Errorf("expected 3 entries, got %d (%v)", n, err)
	}
}

type stubSolver struct {
	solution string
	err      error
	calls    int
}

func (s *stubSolver) GetSolution(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.solution, s.err
}

func TestJournaledSolverRecordsSuccessAndFailure(t *testing.T) {
	j := NewJournal(openTestDB(t))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ok := &stubSolver{solution: "U R"}
	s := NewJournaledSolver(ok, j, "http://solver", logger)
	got, err := s.GetSolution(context.Background(), gocube.SolvedFacelets)
	if err != nil || got != "U R" {
		t.Fatalf("expected pass-through solution, got %q, %v", got, err)
	}

	failing := &stubSolver{err: solver.ErrInvalidFormat}
	s = NewJournaledSolver(failing, j, "http://solver", logger)
	if _, err := s.GetSolution(context.Background(), gocube.SolvedFacelets); !errors.Is(err, solver.ErrInvalidFormat) {
		t.Fatalf("expected error to pass through, got %v", err)
	}

	entries, err := j.List(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 journal entries, got %d", len(entries))
	}

	var sawFailure bool
	for _, e := range entries {
		if e.ErrorKind != nil {
			sawFailure = true
			if *e.ErrorKind != solver.KindInvalidFormat {
				t.Errorf("expected invalid_format kind, got %q", *e.ErrorKind)
			}
			if *e.ErrorMessage != solver.ErrInvalidFormat.Error() {
				t.Errorf("unexpected message %q", *e.ErrorMessage)
			}
		}
	}
	if !sawFailure {
		t.Error("failed call was not journaled")
	}
}

func TestJournaledSolverIgnoresJournalFailure(t *testing.T) {
	db := openTestDB(t)
	j := NewJournal(db)
	db.Close()

	s := NewJournaledSolver(&stubSolver{solution: "F"}, j, "", slog.New(slog.NewTextHandler(io.Discard, nil)))
	got, err := s.GetSolution(context.Background(), gocube.SolvedFacelets)
	if err != nil || got != "F" {
		t.Errorf("journal failure must not affect the result, got %q, %v", got, err)
	}
}

func TestJournalListOrdersSubSecondTimes(t *testing.T) {
	j := NewJournal(openTestDB(t))

	base := time.Date(2026, 1, 1, 12, 0, 5, 0, time.UTC)
	for _, at := range []time.Time{
		base.Add(-400 * time.Millisecond),
		base.Add(120 * time.Millisecond),
		base,
		base.Add(100 * time.Millisecond),
		base.Add(500 * time.Millisecond),
	} {
		if _, err := j.Record(Entry{CreatedAt: at, Facelets: gocube.SolvedFacelets}); err != nil {
			t.Fatalf("record %v: %v", at, err)
		}
	}

	entries, err := j.List(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []time.Duration{500, 120, 100, 0, -400}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, ms := range want {
		if at := base.Add(ms * time.Millisecond); !entries[i].CreatedAt.Equal(at) {
			t.Errorf("entry %d: expected %v, got %v", i, at, entries[i].CreatedAt)
		}
	}
}
