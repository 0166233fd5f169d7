package parkinglot

// ThreadParker is the per-waiter blocking capability. Exactly one
// goroutine ever calls parkThread on a given ThreadParker, and it always
// pairs each call with a preceding preparePark.
//
// Implementations live in parker_chan.go, parker_cond.go, and
// parker_futex_linux.go; exactly one is compiled in, selected by build
// tag (see the package doc). All three must satisfy the same contract:
//
//   - preparePark resets the parker to its EMPTY state, establishing the
//     baseline that a racing unparkThread will publish against.
//   - parkThread blocks until a matching unparkThread has been observed,
//     then returns. It must tolerate spurious wakeups by re-blocking —
//     it only returns once the NOTIFIED transition has actually been
//     observed.
//   - unparkThread is idempotent with respect to ordering: if it runs
//     before the matching parkThread call, the next parkThread call
//     returns immediately without blocking.
//   - unparkThread performs a release operation on the state transition;
//     parkThread performs an acquire when it observes the transition.
//     This is what carries the happens-before edge between the
//     unparker's pre-call actions and the parker's post-return actions.
type ThreadParker interface {
	preparePark()
	parkThread()
	unparkThread()
}

// spuriousInjector is an optional capability implemented by every
// ThreadParker variant purely for tests: it wakes the underlying blocker
// without performing the state transition unparkThread would, letting
// tests verify that parkThread tolerates spurious wakeups regardless of
// which build tag selected the parker.
type spuriousInjector interface {
	injectSpuriousWake()
}

// parkerState values, shared by every ThreadParker implementation that
// tracks an explicit state word (all of them, currently).
const (
	stateEmpty uint32 = iota
	stateParked
	stateNotified
)
