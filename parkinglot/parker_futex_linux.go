//go:build sparkinglot_futexparker && linux

package parkinglot

import (
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// futexParker is the sparkinglot_futexparker ThreadParker: it blocks the
// calling goroutine's underlying OS thread with the real Linux futex(2)
// syscall instead of a channel or a condition variable.
//
// The state word is kept as a plain uint32 rather than going through
// internal/rtsync.Uint32: the kernel needs the bare memory address of the
// word to compare against in-kernel, which is incompatible with keeping
// it behind atomic.Uint32's opaque struct. This is the one place in the
// core that talks to sync/atomic directly; see DESIGN.md.
//
// Note: calling into the real futex syscall parks the whole OS thread,
// not just the goroutine, for the duration of the wait. That is a
// deliberate tradeoff of this build tag, not a bug.
type futexParker struct {
	state uint32
}

func newThreadParker() *futexParker {
	return &futexParker{}
}

func (p *futexParker) preparePark() {
	atomic.StoreUint32(&p.state, stateEmpty)
}

func (p *futexParker) parkThread() {
	for {
		if atomic.CompareAndSwapUint32(&p.state, stateNotified, stateEmpty) {
			return
		}
		atomic.CompareAndSwapUint32(&p.state, stateEmpty, stateParked)
		futexWait(&p.state, stateParked)
		// Either genuinely woken (state is now stateNotified) or a
		// spurious/unrelated wakeup: loop re-checks via the CAS above.
	}
}

// injectSpuriousWake wakes the futex without changing state, used only
// by tests that check spurious-wake tolerance.
func (p *futexParker) injectSpuriousWake() {
	futexWake(&p.state)
}

func (p *futexParker) unparkThread() {
	if atomic.SwapUint32(&p.state, stateNotified) == stateParked {
		futexWake(&p.state)
	}
}

// futexWait/futexWake constants, kept local rather than relying on
// unix.FUTEX_WAIT/unix.FUTEX_WAKE since the plain (non-PRIVATE) op codes
// are stable ABI values.
const (
	futexWaitOp = 0
	futexWakeOp = 1
)

func futexWait(addr *uint32, expect uint32) {
	_, _, errno := unix.Syscall6(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		futexWaitOp,
		uintptr(expect),
		0, 0, 0)
	// EAGAIN means *addr no longer equals expect (the notifying store
	// already landed); EINTR means a signal interrupted the wait; 0
	// means a real wake. In all three cases the caller's CAS loop
	// re-checks real state, so the error is not otherwise handled.
	_ = errno
}

func futexWake(addr *uint32) {
	unix.Syscall6(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		futexWakeOp,
		1, 0, 0, 0)
}
