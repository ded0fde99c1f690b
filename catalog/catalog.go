package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/labs/sequence"
)

var (
	// ErrNoPath is returned by Init when the store was created with an
	// empty database path.
	ErrNoPath = errors.New("catalog: sqlite path is required")

	// ErrNotInitialized is returned when Put/Get/List run before Init.
	ErrNotInitialized = errors.New("catalog: store not initialized")

	// ErrBadRecord is returned by Put for records whose sequence is
	// malformed or whose length disagrees with N.
	ErrBadRecord = errors.New("catalog: malformed record")
)

// Record is one persisted ground-truth result.
type Record struct {
	// N is the sequence length; the table's primary key.
	N int

	// Energy is the global minimum found for N.
	Energy int64

	// Best is the minimizing configuration, stored in "+-" notation.
	Best sequence.Sequence

	// RunID identifies the producing run; Put assigns a fresh UUID when
	// empty.
	RunID string

	// Workers is the worker count the search ran with.
	Workers int

	// Elapsed is the wall-clock duration of the search.
	Elapsed time.Duration

	// CreatedAt is the UTC insertion time; Put fills it when zero.
	CreatedAt time.Time
}

// Store is a SQLite-backed catalog of best-known configurations.
// Safe for concurrent use after Init.
type Store struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

// New creates a Store bound to the given database path. No I/O happens
// until Init.
func New(path string) *Store {
	return &Store{path: path}
}

// Init opens the database, verifies connectivity, and creates the
// schema if absent. Calling Init twice is a no-op.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return ErrNoPath
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	if err = createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

// Put upserts rec, keyed by rec.N. A zero RunID gets a fresh UUID and
// a zero CreatedAt gets the current UTC time; the (possibly updated)
// record is not written back to the caller.
func (s *Store) Put(ctx context.Context, rec Record) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	if rec.N < 0 || len(rec.Best) != rec.N {
		return ErrBadRecord
	}
	if err = sequence.Validate(rec.Best); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRecord, err)
	}

	if rec.RunID == "" {
		rec.RunID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO optima (n, energy, best, run_id, workers, elapsed_ns, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(n) DO UPDATE SET
			energy = excluded.energy,
			best = excluded.best,
			run_id = excluded.run_id,
			workers = excluded.workers,
			elapsed_ns = excluded.elapsed_ns,
			created_at = excluded.created_at
	`, rec.N, rec.Energy, rec.Best.String(), rec.RunID, rec.Workers,
		rec.Elapsed.Nanoseconds(), rec.CreatedAt.Format(time.RFC3339Nano))
	return err
}

// Get returns the record for n. A missing row is reported as
// (zero, false, nil), not as an error.
func (s *Store) Get(ctx context.Context, n int) (Record, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return Record{}, false, err
	}

	row := db.QueryRowContext(ctx, `
		SELECT n, energy, best, run_id, workers, elapsed_ns, created_at
		FROM optima WHERE n = ?
	`, n)

	rec, err := scanRecord(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, false, nil
		}
		return Record{}, false, err
	}
	return rec, true, nil
}

// List returns every record in ascending N order.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT n, energy, best, run_id, workers, elapsed_ns, created_at
		FROM optima ORDER BY n ASC
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Close releases the underlying database handle. Close on an
// uninitialized store is a no-op.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrNotInitialized
	}
	return s.db, nil
}

// scanRecord decodes one row through the given Scan function, shared
// by Get (sql.Row) and List (sql.Rows).
func scanRecord(scan func(...any) error) (Record, error) {
	var (
		rec       Record
		best      string
		elapsedNs int64
		createdAt string
	)
	if err := scan(&rec.N, &rec.Energy, &best, &rec.RunID, &rec.Workers, &elapsedNs, &createdAt); err != nil {
		return Record{}, err
	}

	seq, err := sequence.Parse(best)
	if err != nil {
		return Record{}, fmt.Errorf("catalog: decode best for n=%d: %w", rec.N, err)
	}
	if len(seq) != rec.N {
		return Record{}, fmt.Errorf("catalog: best length %d disagrees with n=%d", len(seq), rec.N)
	}
	rec.Best = seq

	rec.Elapsed = time.Duration(elapsedNs)
	if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return Record{}, fmt.Errorf("catalog: decode created_at for n=%d: %w", rec.N, err)
	}
	return rec, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS optima (
			n INTEGER PRIMARY KEY,
			energy INTEGER NOT NULL,
			best TEXT NOT NULL,
			run_id TEXT NOT NULL,
			workers INTEGER NOT NULL,
			elapsed_ns INTEGER NOT NULL,
			created_at TEXT NOT NULL
		)
	`)
	return err
}
