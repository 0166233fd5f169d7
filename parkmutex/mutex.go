// Package parkmutex is a mutual-exclusion lock built directly on top of
// parkinglot.Park/UnparkOne instead of a kernel lock, demonstrating the
// use case a bare park/unpark primitive is meant to serve as a
// foundation for higher-level synchronization objects.
package parkmutex

import (
	"sync/atomic"
	"unsafe"

	"github.com/JuliusEmperorOfRome/sparking-lot-core/parkinglot"
)

const (
	unlocked uint32 = 0
	locked   uint32 = 1
)

// Mutex is a mutual-exclusion lock whose slow path parks on the address
// of its own state word. It is not reentrant and, like sync.Mutex, its
// zero value is an unlocked mutex.
type Mutex struct {
	state uint32
}

func (m *Mutex) addr() parkinglot.Addr {
	return parkinglot.Addr(uintptr(unsafe.Pointer(&m.state)))
}

// TryLock acquires the lock without blocking, reporting whether it
// succeeded.
func (m *Mutex) TryLock() bool {
	return atomic.CompareAndSwapUint32(&m.state, unlocked, locked)
}

// Lock acquires the lock, parking the calling goroutine if it is already
// held.
func (m *Mutex) Lock() {
	for !m.TryLock() {
		parkinglot.Park(m.addr(), func() bool {
			// Only enqueue while the lock is still actually held; if it
			// was released between the failed TryLock above and now,
			// skip parking so the next TryLock picks it up directly
			// instead of waiting for an UnparkOne that may never come.
			return atomic.LoadUint32(&m.state) == locked
		})
	}
}

// Unlock releases the lock and wakes at most one parked waiter.
func (m *Mutex) Unlock() {
	atomic.StoreUint32(&m.state, unlocked)
	parkinglot.UnparkOne(m.addr())
}
