//go:build sparkinglot_condparker

package parkinglot

import "github.com/JuliusEmperorOfRome/sparking-lot-core/internal/rtsync"

// condParker is the sparkinglot_condparker ThreadParker: a classic
// mutex + condition-variable blocker. Selected when callers want parkers
// that behave like a traditional OS thread parked on a condvar rather
// than on a channel.
type condParker struct {
	mu    rtsync.Mutex
	cond  *rtsync.Cond
	state uint32
}

func newThreadParker() *condParker {
	p := &condParker{}
	p.cond = rtsync.NewCond(&p.mu)
	return p
}

func (p *condParker) preparePark() {
	p.mu.Lock()
	p.state = stateEmpty
	p.mu.Unlock()
}

func (p *condParker) parkThread() {
	p.mu.Lock()
	for p.state != stateNotified {
		p.cond.Wait()
	}
	p.state = stateEmpty
	p.mu.Unlock()
}

// injectSpuriousWake signals the condition variable without changing
// state, used only by tests that check spurious-wake tolerance.
func (p *condParker) injectSpuriousWake() {
	p.cond.Signal()
}

func (p *condParker) unparkThread() {
	p.mu.Lock()
	p.state = stateNotified
	p.mu.Unlock()
	p.cond.Signal()
}
