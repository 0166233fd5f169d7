package parkinglot

// Park conditionally blocks the calling goroutine on addr.
//
// It locks addr's bucket, calls validate under that lock, and:
//
//   - if validate returns false, releases the bucket and returns
//     immediately — the condition the caller wanted to wait on is no
//     longer true, so parking would be stale.
//   - otherwise enqueues a waiter for this goroutine, releases the
//     bucket, and blocks until a matching UnparkOne/UnparkAll call wakes
//     it.
//
// validate must be side-effect-free with respect to park state and must
// not call Park/UnparkOne/UnparkAll on addr itself — doing so is
// undefined behavior that this package does not detect.
//
// If validate panics, the bucket lock is released before the panic
// propagates and no waiter is left enqueued; Park never leaves the
// bucket table in an inconsistent state as a result of a panicking
// validate.
func Park(addr Addr, validate func() bool) {
	w := enqueue(addr, validate)
	if w == nil {
		return
	}

	// The only suspension point in Park: everything above ran with the
	// bucket unlocked by the time we get here (enqueue released it), so
	// blocking here never holds a bucket lock.
	w.parker.parkThread()
}

// enqueue locks addr's bucket, calls validate, pushes a waiter if
// validate held, and unlocks — returning the waiter it pushed, or nil if
// validate returned false. The bucket lock is always released before
// enqueue returns, whether by the normal path or by a panic unwinding
// through validate.
func enqueue(addr Addr, validate func() bool) *waiter {
	b := lockBucket(addr)
	defer b.mu.Unlock()

	if !validate() {
		return nil
	}

	w := &waiter{addr: addr, parker: newThreadParker()}
	w.parker.preparePark()
	b.pushBack(w)
	return w
}
