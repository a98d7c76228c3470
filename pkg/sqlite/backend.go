// Package sqlite provides the public API for the SQLite frontdesk backend.
// It exposes the backend factory for programs that embed frontdesk storage
// without the HTTP server, while keeping implementation details internal.
package sqlite

import (
	"time"

	"github.com/mesh-intelligence/frontdesk/internal/sqlite"
)

// Backend is the SQLite store of one variant.
type Backend = sqlite.Backend

// Option configures a Backend.
type Option = sqlite.Option

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	backend := sqlite.NewBackend()
//	err := backend.Attach(types.Config{
//	    Variant: types.VariantGym,
//	    DataDir: ".frontdesk-db",
//	})
//	defer backend.Detach()
func NewBackend(opts ...Option) *Backend {
	return sqlite.NewBackend(opts...)
}

// WithClock replaces the wall clock used for check-in dates and statistics
// windows.
func WithClock(now func() time.Time) Option {
	return sqlite.WithClock(now)
}
