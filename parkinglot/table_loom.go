//go:build sparkinglot_loom

package parkinglot

// Exactly 2 buckets under the sparkinglot_loom build tag: one for even
// addresses, one for odd. This is not a performance choice, it's a
// testability one: it forces hand-written concurrency tests to exercise
// both "same bucket" and "different bucket" interleavings with minimal
// state (see DESIGN.md).
//
// Tests that want two *different* buckets for two otherwise-unrelated
// addresses must offset one of them by one byte (addr+1): two addresses
// differing only in bits above bit 0 still land in the same bucket here.
const (
	bucketBits  = 1
	bucketCount = 1 << bucketBits
)

var table [bucketCount]bucket

func hashAddr(addr Addr) uintptr {
	return uintptr(addr) & 1
}

func lockBucket(addr Addr) *bucket {
	b := &table[hashAddr(addr)]
	b.mu.Lock()
	return b
}
