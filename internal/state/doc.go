// Package state is the single source of truth for the clock wall.
//
// # Overview
//
// A Store holds the ordered list of clock records and, separately, the record
// currently being edited. Display surfaces and the edit form never mutate a
// record themselves: they call Store operations and react to the snapshots
// the Store publishes.
//
//	 form / key handlers          Store                 displays
//	┌──────────────────┐     ┌───────────────┐     ┌──────────────────┐
//	│ Add / Update     │────→│ records       │────→│ SubscribeRecords │
//	│ Delete / Adjust  │     │ editing       │────→│ SubscribeEditing │
//	│ SetEditingTarget │     └───────────────┘     │ Snapshot()       │
//	└──────────────────┘            ↑              └──────────────────┘
//	                     AdvanceAllByOneSecond
//	                     (external 1s ticker)
//
// # Snapshots
//
// The record slice is copy-on-write. Every change builds a new slice, and
// every subscriber and Snapshot caller receives its own copy, so a value
// handed out earlier never changes underfoot.
//
// # Concurrency Model
//
// The Store does no locking. It is owned by one event loop (the Bubble Tea
// program in clockwall) and every call must come from that loop. Ticks from
// the wall-clock timer arrive as messages on the same loop rather than as
// direct calls from the timer goroutine.
//
// Notifications are synchronous and run in registration order after the
// state transition has completed, so a callback that reads the Store sees
// state consistent with the value it was just handed.
//
// # Subscriptions
//
// SubscribeRecords and SubscribeEditing deliver the current value once on
// registration and then after each change. The returned Subscription must be
// released with Unsubscribe when the consumer is torn down:
//
//	sub := store.SubscribeRecords(func(recs []state.Record) { ... })
//	defer sub.Unsubscribe()
//
// # Tolerant Operations
//
// Update, Delete and AdjustTime on an unknown id are silent no-ops and emit
// nothing. The usual cause is benign: the record was deleted while a form
// still held it.
//
// Deleting the record under edit does not clear the editing target. The form
// is expected to notice that the target's id is missing from the latest
// records snapshot and leave edit mode itself.
package state
