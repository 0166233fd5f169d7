package parkinglot

import "github.com/JuliusEmperorOfRome/sparking-lot-core/internal/rtsync"

// cacheLineSize pads each bucket onto its own cache line to avoid false
// sharing between buckets under contention. 128 bytes covers both the
// common 64-byte line size and the paired-64-byte prefetch behavior of
// contemporary x86_64/arm64.
const cacheLineSize = 128

// bucket is one slot of the sharded wait-queue table: a mutex guarding a
// singly linked FIFO list of waiters. It is never destroyed — the table
// it belongs to is a package-level array initialized once at
// program start and lives for the process.
type bucket struct {
	mu   rtsync.Mutex
	head *waiter
	tail *waiter

	pad [cacheLineSize]byte
}

// pushBack appends w to the end of the bucket's list. Callers must hold
// b.mu.
func (b *bucket) pushBack(w *waiter) {
	w.next = nil
	if b.tail == nil {
		b.head = w
	} else {
		b.tail.next = w
	}
	b.tail = w
}

// removeMatching unlinks up to max waiters whose addr equals addr,
// oldest-enqueued first, and returns them as a singly linked chain
// (possibly nil). Callers must hold b.mu.
//
// This is the shared traversal behind unparkSome, which UnparkOne and
// UnparkAll both call with max=1 and max=MaxInt respectively.
func (b *bucket) removeMatching(addr Addr, max int) (head, tail *waiter, n int) {
	var prev *waiter
	cur := b.head
	for cur != nil && n < max {
		next := cur.next
		if cur.addr != addr {
			prev = cur
			cur = next
			continue
		}

		// Unlink cur.
		if prev == nil {
			b.head = next
		} else {
			prev.next = next
		}
		if cur == b.tail {
			b.tail = prev
		}

		cur.next = nil
		if head == nil {
			head = cur
		} else {
			tail.next = cur
		}
		tail = cur
		n++
		cur = next
	}
	return head, tail, n
}
