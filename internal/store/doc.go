// Package store keeps the history of solver runs in SQLite.
//
// Every run, successful or not, is one row in the runs table keyed by its
// UUIDv7 run id. Rows are append-only: recording the same id twice is a
// no-op.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads while a verify batch writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait out lock contention
//   - user_version: schema migration tracking
package store
