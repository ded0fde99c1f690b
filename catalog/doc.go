// Package catalog persists ground-truth search results in a local
// SQLite database, one row per sequence length.
//
// The store is a thin, concurrency-safe wrapper over database/sql with
// the pure-Go modernc.org/sqlite driver (no cgo). Each Record captures
// the outcome of one exhaustive search: the best configuration found,
// its exact energy, and run metadata (run id, worker count, elapsed
// time). Writes are upserts keyed by N, so re-running a search simply
// refreshes the row.
//
// Typical use is through labsctl:
//
//	labsctl search --n 16 --db optima.db
//	labsctl show --db optima.db
//
// but the Store API is public so longer-running experiments can record
// results directly.
package catalog
