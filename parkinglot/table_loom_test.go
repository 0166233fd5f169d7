//go:build sparkinglot_loom

package parkinglot

import (
	"testing"
	"time"
)

// Under sparkinglot_loom the hash is deliberately degenerate: even
// addresses and odd addresses land in different buckets, and nothing
// else affects bucket choice. This test pins that contract down so a
// change to hashAddr under this tag is caught immediately.
func TestLoomHashIsEvenOddOnly(t *testing.T) {
	cases := []struct {
		a, b     Addr
		sameHash bool
	}{
		{0x1000, 0x1002, true},  // both even, same bucket
		{0x1000, 0x1001, false}, // even vs odd, different bucket
		{0x1001, 0x1003, true},  // both odd, same bucket
		{0x1000, 0x3000, true},  // differ only above bit 0: still same bucket
	}
	for _, c := range cases {
		got := hashAddr(c.a) == hashAddr(c.b)
		if got != c.sameHash {
			t.Errorf("hashAddr(%#x)==hashAddr(%#x): got %v, want %v", c.a, c.b, got, c.sameHash)
		}
	}
}

// Same-bucket unrelated wake: B parks on 0x1000, C parks on 0x1002
// (same bucket under the degenerate hash). UnparkOne(0x1000) must wake B
// only; C must remain parked until explicitly unparked.
func TestSameBucketUnrelatedWakeIsNotDelivered(t *testing.T) {
	const bAddr = Addr(0x1000)
	const cAddr = Addr(0x1002) // same bucket as bAddr under the loom hash

	bReady := make(chan struct{})
	bDone := make(chan struct{})
	go func() {
		Park(bAddr, func() bool { close(bReady); return true })
		close(bDone)
	}()
	<-bReady

	cReady := make(chan struct{})
	cDone := make(chan struct{})
	go func() {
		Park(cAddr, func() bool { close(cReady); return true })
		close(cDone)
	}()
	<-cReady

	waitUntilTrue(t, func() bool { return bucketLen(bAddr)+bucketLen(cAddr) >= 2 })

	if !UnparkOne(bAddr) {
		t.Fatal("UnparkOne(bAddr) found no waiter")
	}
	select {
	case <-bDone:
	case <-time.After(5 * time.Second):
		t.Fatal("B never woke")
	}

	select {
	case <-cDone:
		t.Fatal("C woke from an UnparkOne targeting a different address")
	case <-time.After(200 * time.Millisecond):
		// Expected: C is still parked.
	}

	if !UnparkOne(cAddr) {
		t.Fatal("UnparkOne(cAddr) found no waiter")
	}
	select {
	case <-cDone:
	case <-time.After(5 * time.Second):
		t.Fatal("C never woke after UnparkOne(cAddr)")
	}
}
