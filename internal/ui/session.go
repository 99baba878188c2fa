package ui

import "github.com/five82/clockwall/internal/state"

// session mirrors the store's two channels for the model. The store notifies
// synchronously on the UI goroutine, so by the time a mutation returns the
// session already holds the new values.
type session struct {
	records []state.Record
	editing *state.Record

	recordsDirty bool
	editingDirty bool

	subs []*state.Subscription
}

func openSession(store *state.Store) *session {
	s := &session{}
	s.subs = append(s.subs,
		store.SubscribeRecords(func(recs []state.Record) {
			s.records = recs
			s.recordsDirty = true
		}),
		store.SubscribeEditing(func(rec *state.Record) {
			s.editing = rec
			s.editingDirty = true
		}),
	)
	// The replay on subscribe is the starting state, not a change.
	s.recordsDirty = false
	s.editingDirty = false
	return s
}

// takeRecords reports whether a records snapshot arrived since the last call.
func (s *session) takeRecords() bool {
	dirty := s.recordsDirty
	s.recordsDirty = false
	return dirty
}

// takeEditing returns the editing target and whether it changed since the
// last call.
func (s *session) takeEditing() (*state.Record, bool) {
	dirty := s.editingDirty
	s.editingDirty = false
	return s.editing, dirty
}

func (s *session) contains(id string) bool {
	for _, rec := range s.records {
		if rec.ID == id {
			return true
		}
	}
	return false
}

// Close releases both subscriptions. Safe to call more than once.
func (s *session) Close() {
	for _, sub := range s.subs {
		sub.Unsubscribe()
	}
	s.subs = nil
}
