package parkinglot

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func addrsOf(w *waiter) []Addr {
	var out []Addr
	for ; w != nil; w = w.next {
		out = append(out, w.addr)
	}
	return out
}

func TestBucketPushBackPreservesOrder(t *testing.T) {
	var b bucket
	w1 := &waiter{addr: 1}
	w2 := &waiter{addr: 2}
	w3 := &waiter{addr: 3}
	b.pushBack(w1)
	b.pushBack(w2)
	b.pushBack(w3)

	got := addrsOf(b.head)
	want := []Addr{1, 2, 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("bucket order mismatch (-want +got):\n%s", diff)
	}
	if b.tail != w3 {
		t.Fatal("tail not updated to last pushed waiter")
	}
}

func TestBucketRemoveMatchingFIFOAndSkipsOthers(t *testing.T) {
	var b bucket
	w1 := &waiter{addr: 0x10}
	w2 := &waiter{addr: 0x20} // different addr, same bucket
	w3 := &waiter{addr: 0x10}
	b.pushBack(w1)
	b.pushBack(w2)
	b.pushBack(w3)

	head, tail, n := b.removeMatching(0x10, 10)
	if n != 2 {
		t.Fatalf("removeMatching removed %d waiters, want 2", n)
	}
	got := addrsOf(head)
	want := []Addr{0x10, 0x10}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("removed chain order mismatch (-want +got):\n%s", diff)
	}
	if tail != w3 {
		t.Fatal("wrong tail returned from removeMatching")
	}

	// w2 must remain the sole occupant of the bucket's own list.
	remaining := addrsOf(b.head)
	if diff := cmp.Diff([]Addr{0x20}, remaining); diff != "" {
		t.Fatalf("bucket list after removal mismatch (-want +got):\n%s", diff)
	}
	if b.head != w2 || b.tail != w2 {
		t.Fatal("head/tail not collapsed onto the single remaining waiter")
	}
}

func TestBucketRemoveMatchingRespectsLimit(t *testing.T) {
	var b bucket
	for i := 0; i < 5; i++ {
		b.pushBack(&waiter{addr: 0x30})
	}

	head, _, n := b.removeMatching(0x30, 2)
	if n != 2 {
		t.Fatalf("removeMatching(max=2) removed %d, want 2", n)
	}
	if got := len(addrsOf(head)); got != 2 {
		t.Fatalf("returned chain has %d nodes, want 2", got)
	}
	if got := len(addrsOf(b.head)); got != 3 {
		t.Fatalf("bucket retained %d waiters, want 3", got)
	}
}

func TestBucketRemoveMatchingEmptyBucket(t *testing.T) {
	var b bucket
	head, tail, n := b.removeMatching(0x40, 10)
	if head != nil || tail != nil || n != 0 {
		t.Fatalf("removeMatching on empty bucket returned head=%v tail=%v n=%d", head, tail, n)
	}
}
