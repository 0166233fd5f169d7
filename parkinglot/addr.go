package parkinglot

// Addr is a logical wait-queue key. It is a plain integer: the core never
// loads or stores through it, so callers are free to use real pointers
// cast to uintptr, array indices, hashes, or any other value with the
// property that two logically-equal wait conditions produce equal Addrs.
//
// A dangling or sentinel value is fine. Only the integer value is ever
// compared.
type Addr uintptr
