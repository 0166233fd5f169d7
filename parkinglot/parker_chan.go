//go:build !sparkinglot_condparker && !(sparkinglot_futexparker && linux)

package parkinglot

import "github.com/JuliusEmperorOfRome/sparking-lot-core/internal/rtsync"

// chanParker is the default ThreadParker. It pairs an atomic state word
// with a capacity-1 channel used purely as the blocking primitive — the
// channel send/receive is what actually suspends and resumes the
// goroutine, while the state word is what lets unparkThread be correct
// when called before parkThread has been entered.
//
// A goroutine is the unit that parks, and receiving from a channel is
// the goroutine-native way to block it.
type chanParker struct {
	state rtsync.Uint32
	wake  chan struct{}
}

func newThreadParker() *chanParker {
	return &chanParker{wake: make(chan struct{}, 1)}
}

func (p *chanParker) preparePark() {
	// Drain a stale wakeup left over from a fast-path unparkThread that
	// raced ahead of the previous parkThread call (see unparkThread).
	select {
	case <-p.wake:
	default:
	}
	p.state.Store(stateEmpty)
}

func (p *chanParker) parkThread() {
	for {
		if p.state.Load() == stateNotified {
			// atomic.Uint32.Load is an acquire operation under the Go
			// memory model; it pairs with the release Store below and
			// publishes everything the unparker did before that call.
			p.state.Store(stateEmpty)
			return
		}
		<-p.wake
	}
}

// injectSpuriousWake wakes the blocker without touching state, used only
// by tests to verify parkThread's spurious-wake tolerance.
func (p *chanParker) injectSpuriousWake() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *chanParker) unparkThread() {
	p.state.Store(stateNotified)
	select {
	case p.wake <- struct{}{}:
	default:
		// Already has a pending wakeup queued (or parkThread is about to
		// observe the state store directly); unparkThread is idempotent
		// either way.
	}
}
