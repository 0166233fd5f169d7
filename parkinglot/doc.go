// Package parkinglot implements a generic thread-parking primitive keyed
// by arbitrary integer addresses: two operations, Park and
// UnparkOne/UnparkAll, that give higher-level synchronization objects
// (mutexes, condition variables, semaphores) a shared wait-queue
// implementation instead of each paying for its own embedded queue.
//
// # Design
//
// An address (Addr) identifies a logical wait-queue. It is never
// dereferenced; two Park/Unpark calls on equal Addrs observe the same
// queue, and that is the only property that matters. Addresses hash into
// a small, fixed-size table of buckets (table_default.go and its
// build-tag variants); each bucket pairs a
// mutex with a singly linked list of waiters. Park locks the bucket,
// re-validates the caller's condition under that lock, and — only if the
// condition still holds — enqueues a waiter and blocks on
// its ThreadParker. UnparkOne/UnparkAll lock the same bucket, unlink the
// matching waiter(s), release the lock, and then wake each one outside
// the lock.
//
// Every atomic load/store and every mutex acquire/release in this
// package goes through internal/rtsync rather than sync/atomic or sync
// directly, so that a build targeting a different scheduler (or a
// deterministic concurrency-testing harness) can retarget the whole core
// by swapping that one package. The one exception is the
// sparkinglot_futexparker ThreadParker, which uses sync/atomic directly
// on a bare uint32 because futex(2) needs the word's address.
//
// # Build tags
//
// The table has three mutually exclusive shapes, selected at build time:
//
//   - (default): 32 buckets, calibrated for up to ~96 concurrent waiters.
//   - sparkinglot_moreconcurrency: 128 buckets, for up to ~384 waiters,
//     at a fixed cost of one more padded bucket (cacheLineSize bytes of
//     padding plus the lock and list pointers) per added bucket.
//   - sparkinglot_loom: exactly 2 buckets (even/odd addresses). This is
//     not a performance configuration; it exists so that concurrency
//     tests can deliberately force "same bucket" and "different bucket"
//     interleavings with minimal state. Tests built with this tag MUST
//     offset one of two unrelated addresses by a single byte (addr+1) to
//     land it in the other bucket; two addresses that differ only in
//     bits above bit 0 still hash identically under this tag.
//
// The per-waiter blocker (ThreadParker) also has three implementations,
// selected independently:
//
//   - (default): buffered channel + atomic state word.
//   - sparkinglot_condparker: sync.Mutex + sync.Cond.
//   - sparkinglot_futexparker (linux only): real futex(2) syscalls.
package parkinglot
