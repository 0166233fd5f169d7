// Package rtsync is a thin, swappable layer over the stdlib concurrency
// primitives used by the parking-lot core: a mutex and a small set of
// atomic operations on a uint32 state word.
//
// The core does not call sync or sync/atomic directly, apart from the
// futex-backed ThreadParker (see parkinglot's package doc). Everything
// else goes through here instead, so that a single
// file can be swapped for a runtime-aware build when the core is
// re-targeted onto a different scheduler or a deterministic test harness,
// without touching bucket.go, park.go, or unpark.go.
package rtsync

import "sync"

// Mutex is the bucket lock's backing primitive. It is an alias, not a
// wrapper, so it stays zero-cost. This file is the single place where
// Lock/Unlock would be routed through another runtime's mutex; no such
// alternate build is included, so every build uses sync.Mutex.
type Mutex = sync.Mutex

// Cond is an alias of sync.Cond, used by the sparkinglot_condparker
// ThreadParker variant.
type Cond = sync.Cond

// NewCond is a wrapper around sync.NewCond.
func NewCond(l sync.Locker) *Cond {
	return sync.NewCond(l)
}
