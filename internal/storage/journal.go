package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/gocube_solver"
)

// ErrEntryNotFound is returned when a journal entry does not exist.
var ErrEntryNotFound = errors.New("storage: journal entry not found")

// Entry is one recorded call to the solving service.
type Entry struct {
	RequestID    string
	CreatedAt    time.Time
	SolverURL    string
	Facelets     string
	Solution     *string
	ErrorKind    *string
	ErrorMessage *string
	Duration     time.Duration
}

// Succeeded reports whether the solver returned a solution.
func (e Entry) Succeeded() bool {
	return e.Solution != nil
}

// Journal provides access to the solve_requests and solution_moves tables.
type Journal struct {
	db *DB
}

// NewJournal creates a journal backed by db.
func NewJournal(db *DB) *Journal {
	return &Journal{db: db}
}

// Record stores e together with the expanded quarter turns of its solution
// and returns the entry's ID. RequestID and CreatedAt are filled when empty.
func (j *Journal) Record(e Entry) (string, error) {
	if e.RequestID == "" {
		e.RequestID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	var moves []string
	if e.Solution != nil {
		moves = gocube.ExpandSequence(*e.Solution)
	}

	err := j.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO solve_requests (request_id, created_at, solver_url, facelets, solution, error_kind, error_message, duration_ms)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, e.RequestID, e.CreatedAt.UTC().Format(timestampLayout), e.SolverURL, e.Facelets,
			e.Solution, e.ErrorKind, e.ErrorMessage, e.Duration.Milliseconds())
		if err != nil {
			return fmt.Errorf("failed to create journal entry: %w", err)
		}

		for i, name := range moves {
			_, err := tx.Exec(`
				INSERT INTO solution_moves (request_id, move_index, notation)
				VALUES (?, ?, ?)
			`, e.RequestID, i, name)
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return e.RequestID, nil
}

// timestampLayout is fixed width so created_at sorts as text in time order.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

const entryColumns = `request_id, created_at, solver_url, facelets, solution, error_kind, error_message, duration_ms`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (Entry, error) {
	var e Entry
	var createdAt string
	var durationMs int64

	err := row.Scan(&e.RequestID, &createdAt, &e.SolverURL, &e.Facelets,
		&e.Solution, &e.ErrorKind, &e.ErrorMessage, &durationMs)
	if err != nil {
		return Entry{}, err
	}

	e.CreatedAt, _ = time.Parse(timestampLayout, createdAt)
	e.Duration = time.Duration(durationMs) * time.Millisecond
	return e, nil
}

// Get retrieves an entry by ID.
func (j *Journal) Get(requestID string) (*Entry, error) {
	row := j.db.QueryRow(`SELECT `+entryColumns+` FROM solve_requests WHERE request_id = ?`, requestID)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entry: %w", err)
	}
	return &e, nil
}

// List retrieves the most recent entries, newest first.
func (j *Journal) List(limit int) ([]Entry, error) {
	rows, err := j.db.Query(`
		SELECT `+entryColumns+`
		FROM solve_requests
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list journal: %w", err)
	}

	return entries, nil
}

// Moves returns the quarter turns recorded for an entry, in order.
func (j *Journal) Moves(requestID string) ([]string, error) {
	rows, err := j.db.Query(`
		SELECT notation FROM solution_moves
		WHERE request_id = ?
		ORDER BY move_index
	`, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, n)
	}
	return moves, rows.Err()
}

// Count returns the number of journal entries.
func (j *Journal) Count() (int, error) {
	var n int
	if err := j.db.QueryRow("SELECT COUNT(*) FROM solve_requests").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count journal: %w", err)
	}
	return n, nil
}
