package rtsync

import "sync/atomic"

// Uint32 is the state word used by every ThreadParker implementation and
// by any other place in the core that needs a small atomically-accessed
// integer. Aliasing atomic.Uint32 rather than wrapping it keeps
// Load/Store/CompareAndSwap inlinable on the fast, uncontended path the
// park/unpark handshake depends on.
type Uint32 = atomic.Uint32
