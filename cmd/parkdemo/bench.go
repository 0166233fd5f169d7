package main

import (
	"context"
	"flag"
	"fmt"
	"sync"
	"time"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/JuliusEmperorOfRome/sparking-lot-core/parksignal"
)

// benchCmd implements subcommands.Command for the "bench" command: spins
// up a fleet of goroutines parked on a parksignal.Gate and measures the
// latency of UnparkAll waking all of them.
type benchCmd struct {
	waiters int
	rounds  int
}

func (*benchCmd) Name() string     { return "bench" }
func (*benchCmd) Synopsis() string { return "measure parksignal.Gate wake-all latency" }
func (*benchCmd) Usage() string {
	return "bench [flags]\n  Parks a fleet of goroutines on a gate, opens it, and reports how long\n  it took every goroutine to observe the open.\n"
}

func (b *benchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&b.waiters, "waiters", 128, "number of goroutines parked per round")
	f.IntVar(&b.rounds, "rounds", 5, "number of rounds to run")
}

func (b *benchCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	for round := 1; round <= b.rounds; round++ {
		if ctx.Err() != nil {
			logrus.WithError(ctx.Err()).Warn("bench aborted")
			return subcommands.ExitFailure
		}

		var gate parksignal.Gate
		var wg sync.WaitGroup
		readyCh := make(chan struct{}, b.waiters)
		wg.Add(b.waiters)
		for i := 0; i < b.waiters; i++ {
			go func() {
				defer wg.Done()
				readyCh <- struct{}{}
				gate.Wait()
			}()
		}
		for i := 0; i < b.waiters; i++ {
			<-readyCh
		}
		time.Sleep(5 * time.Millisecond) // let the last few goroutines reach Park

		start := time.Now()
		gate.Open()
		wg.Wait()
		elapsed := time.Since(start)

		fmt.Printf("bench round %d/%d: %d waiters woken in %s\n", round, b.rounds, b.waiters, elapsed)
	}
	return subcommands.ExitSuccess
}
