// Package state holds the application state shared by all request handlers.
package state

import (
	"database/sql"
	"sync"
)

// AppState is constructed once at startup and shared by reference with
// every handler. The connection pool is safe for concurrent use; the
// visit counter is guarded by its own mutex.
type AppState struct {
	DB       *sql.DB
	Greeting string

	mu         sync.Mutex
	visitCount int
}

// New creates the application state around an established connection pool
func New(db *sql.DB, greeting string) *AppState {
	return &AppState{
		DB:       db,
		Greeting: greeting,
	}
}

// RecordVisit increments the visit counter and returns the new value.
// The lock is held only for the increment-and-read, never across I/O.
func (s *AppState) RecordVisit() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visitCount++
	return s.visitCount
}

// VisitCount returns the current visit count without incrementing it
func (s *AppState) VisitCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visitCount
}
