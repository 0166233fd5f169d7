package parkinglot

// waiter is the intrusive list element behind a single Park call. Each
// waiter is owned by the goroutine calling Park for the duration of that
// call: linked into exactly one bucket's list while the goroutine is
// parked, and unlinked — always under that same bucket's lock — before
// Park returns. Nothing outside this package ever retains a reference to
// it past that point.
type waiter struct {
	addr   Addr
	next   *waiter
	parker ThreadParker
}
