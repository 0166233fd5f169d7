package parkinglot

import "math"

// UnparkOne wakes at most one waiter parked on addr, the oldest enqueued
// first. It reports whether a waiter was actually woken.
func UnparkOne(addr Addr) bool {
	return unparkSome(addr, 1) == 1
}

// UnparkAll wakes every waiter currently enqueued on addr and reports how
// many were woken. Order of the individual wakeups is unspecified beyond
// all being signaled before UnparkAll returns.
func UnparkAll(addr Addr) int {
	return unparkSome(addr, math.MaxInt)
}

// unparkSome unlinks up to n matching waiters under the bucket lock, then
// wakes them one at a time after releasing it. Both UnparkOne and
// UnparkAll are thin wrappers over this.
//
// Waking happens strictly outside the bucket lock: calling into a
// ThreadParker while holding the lock would let a woken goroutine
// immediately re-enter Park for a different address and contend on this
// same bucket, risking lock-order inversion and stretching the critical
// section.
func unparkSome(addr Addr, n int) int {
	b := lockBucket(addr)
	head, _, count := b.removeMatching(addr, n)
	b.mu.Unlock()

	for w := head; w != nil; {
		// Capture next before waking w: once unparkThread returns, w's
		// owning goroutine may resume Park and is free to do anything
		// with its waiter. Go's GC makes this safe regardless since
		// pushBack already forced w onto the heap, but reading next
		// first avoids depending on that at all.
		next := w.next
		w.parker.unparkThread()
		w = next
	}
	return count
}
