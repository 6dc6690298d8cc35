package store

import "flightplanner/pkg/platform/sentinel"

// ErrNotFound keeps store-level absent-record errors consistent across the
// in-memory and Postgres implementations.
var ErrNotFound = sentinel.ErrNotFound
