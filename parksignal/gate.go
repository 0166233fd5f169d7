// Package parksignal is a single-shot broadcast gate built on
// parkinglot.Park/UnparkAll. It exercises the unpark-all path the same
// way a condition variable's Broadcast would.
package parksignal

import (
	"sync/atomic"
	"unsafe"

	"github.com/JuliusEmperorOfRome/sparking-lot-core/parkinglot"
)

const (
	stateClosed uint32 = 0
	stateOpen   uint32 = 1
)

// Gate is a one-shot barrier: goroutines calling Wait block until some
// goroutine calls Open, after which Wait always returns immediately.
// Open is idempotent; only the first call has any effect. The zero value
// is a closed Gate.
type Gate struct {
	state uint32
}

func (g *Gate) addr() parkinglot.Addr {
	return parkinglot.Addr(uintptr(unsafe.Pointer(&g.state)))
}

// IsOpen reports whether Open has been called.
func (g *Gate) IsOpen() bool {
	return atomic.LoadUint32(&g.state) == stateOpen
}

// Wait blocks until the gate is opened. If it is already open, Wait
// returns immediately.
func (g *Gate) Wait() {
	for !g.IsOpen() {
		parkinglot.Park(g.addr(), func() bool {
			return atomic.LoadUint32(&g.state) == stateClosed
		})
	}
}

// Open opens the gate, waking every goroutine currently blocked in
// Wait, and unblocks all future Wait calls. Calling Open more than once
// has no additional effect.
func (g *Gate) Open() {
	if !atomic.CompareAndSwapUint32(&g.state, stateClosed, stateOpen) {
		return
	}
	parkinglot.UnparkAll(g.addr())
}
