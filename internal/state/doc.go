// Package state holds the viewer's last accepted chain behind a mutex.
//
// # Overview
//
// The Store is the only shared mutable state between fetches. Every fetch
// result, whether it came from the ticker or a manual refresh, goes through
// Apply, which decides what the display has to do:
//
//	Apply(seq, chain, nil)  len differs        → Rerender  (held chain replaced)
//	Apply(seq, chain, nil)  len equal          → Unchanged (no redraw)
//	Apply(seq, chain, nil)  error panel is up  → Rerender  (diagram restored)
//	Apply(seq, nil, err)                       → ShowError (held chain kept)
//	Apply(seq, ...)         seq older than last applied → Stale (dropped)
//
// # Change Detection
//
// Only the chain length is compared. A node that rewrites an existing block in
// place without appending one goes unnoticed until the length changes.
//
// # Ordering
//
// Two fetches can be in flight at once. Each is tagged with a sequence number
// when issued; a response that completes after a newer one has been applied is
// reported as Stale and ignored, so the display always reflects the most
// recently issued request that has completed.
//
// # Concurrency Model
//
//   - Apply(): write lock, replaces the chain with a copy in one assignment
//   - Chain(), Snapshot(): read lock, return copies
//
// The lock is never held across network I/O.
package state
