// Package docpath addresses and mutates locations inside JSON-like
// documents using a compact dot/bracket path syntax.
//
// The backing store this engine was built for understands only whole
// values: opaque bytes under a key. All structural work happens here,
// client side, against a parsed document owned by the caller. The
// caller deserializes store bytes into an ir.Node before an
// operation, and re-serializes the mutated tree afterwards; the
// engine never touches storage.
//
// Every operation is a synchronous in-place tree walk with no
// internal state, so the package is safely reentrant across
// independent documents. A single document must not be mutated from
// two goroutines without external synchronization.
package docpath
