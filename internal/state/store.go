package state

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/ksuid"
)

// Store owns the clock collection and the current editing target. It is the
// only writer of clock state.
//
// A Store is not safe for concurrent use. It is driven from a single event
// loop: every operation is a synchronous state transition followed by
// synchronous delivery to the current subscribers, in registration order.
type Store struct {
	records []Record
	editing *Record

	recordsChanged broadcast[[]Record]
	editingChanged broadcast[*Record]

	newID  func() string
	logger *slog.Logger
}

// Option customizes a Store.
type Option func(*Store)

// WithIDGenerator replaces the default KSUID generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithLogger sets the logger used for mutation debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		newID:  func() string { return ksuid.New().String() },
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add creates a record from cfg with a fresh ID, appends it and notifies
// records subscribers. The new record is returned.
func (s *Store) Add(cfg Config) Record {
	rec := Record{ID: s.newID(), Config: cfg}
	if s.indexOf(rec.ID) >= 0 {
		panic(fmt.Sprintf("state: generated duplicate record id %q", rec.ID))
	}

	next := make([]Record, len(s.records), len(s.records)+1)
	copy(next, s.records)
	s.records = append(next, rec)

	s.logger.Debug("clock added", "id", rec.ID, "start", rec.StartTime.Format(time.TimeOnly))
	s.emitRecords()
	return rec
}

// Update merges patch over the record with the given id, keeping its
// position. An unknown id is ignored and nothing is emitted.
func (s *Store) Update(id string, patch Patch) {
	idx := s.indexOf(id)
	if idx < 0 {
		s.logger.Debug("update ignored, clock not found", "id", id)
		return
	}

	next := cloneRecords(s.records)
	next[idx].Config = patch.Apply(next[idx].Config)
	s.records = next

	s.logger.Debug("clock updated", "id", id)
	s.emitRecords()
}

// Delete removes the record with the given id. An unknown id is ignored and
// nothing is emitted. The editing target is left alone even if it pointed at
// the removed record; consumers detect the stale target from the snapshot.
func (s *Store) Delete(id string) {
	idx := s.indexOf(id)
	if idx < 0 {
		s.logger.Debug("delete ignored, clock not found", "id", id)
		return
	}

	next := make([]Record, 0, len(s.records)-1)
	next = append(next, s.records[:idx]...)
	next = append(next, s.records[idx+1:]...)
	s.records = next

	s.logger.Debug("clock deleted", "id", id)
	s.emitRecords()
}

// AdvanceAllByOneSecond moves every clock forward by one second and emits a
// single snapshot covering the whole batch.
func (s *Store) AdvanceAllByOneSecond() {
	if len(s.records) == 0 {
		return
	}
	next := cloneRecords(s.records)
	for i := range next {
		next[i].StartTime = next[i].StartTime.Add(time.Second)
	}
	s.records = next
	s.emitRecords()
}

// AdjustTime shifts one clock's time by delta. It is Update with a StartTime
// patch, so an unknown id is ignored.
func (s *Store) AdjustTime(id string, delta time.Duration) {
	idx := s.indexOf(id)
	if idx < 0 {
		s.logger.Debug("adjust ignored, clock not found", "id", id)
		return
	}
	shifted := s.records[idx].StartTime.Add(delta)
	s.Update(id, Patch{StartTime: &shifted})
}

// ResetTime sets one clock's time to now, typically the current wall-clock
// time.
func (s *Store) ResetTime(id string, now time.Time) {
	s.Update(id, Patch{StartTime: &now})
}

// SetEditingTarget replaces the editing target and notifies editing
// subscribers. Pass nil to return to idle. The target is a copy of the record
// as it was in the snapshot it came from; it is not refreshed by later
// updates.
func (s *Store) SetEditingTarget(rec *Record) {
	if rec == nil {
		s.editing = nil
	} else {
		dup := *rec
		s.editing = &dup
	}
	if s.editing == nil {
		s.logger.Debug("editing cleared")
	} else {
		s.logger.Debug("editing target set", "id", s.editing.ID)
	}
	s.editingChanged.emit(s.editingValue)
}

// EditingTarget returns the current editing target, or nil when idle.
func (s *Store) EditingTarget() *Record {
	return s.editingValue()
}

// Snapshot returns a copy of the current record sequence.
func (s *Store) Snapshot() []Record {
	return cloneRecords(s.records)
}

// Contains reports whether a record with id is present.
func (s *Store) Contains(id string) bool {
	return s.indexOf(id) >= 0
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// SubscribeRecords registers fn for record list changes. fn is called once
// immediately with the current records, then after every change.
func (s *Store) SubscribeRecords(fn func([]Record)) *Subscription {
	sub := s.recordsChanged.subscribe(fn)
	fn(s.Snapshot())
	return sub
}

// SubscribeEditing registers fn for editing target changes. fn is called once
// immediately with the current target (nil when idle), then after every
// SetEditingTarget.
func (s *Store) SubscribeEditing(fn func(*Record)) *Subscription {
	sub := s.editingChanged.subscribe(fn)
	fn(s.editingValue())
	return sub
}

// Subscribers reports how many records and editing callbacks are registered.
func (s *Store) Subscribers() (records, editing int) {
	return s.recordsChanged.len(), s.editingChanged.len()
}

func (s *Store) emitRecords() {
	s.recordsChanged.emit(s.Snapshot)
}

func (s *Store) editingValue() *Record {
	if s.editing == nil {
		return nil
	}
	dup := *s.editing
	return &dup
}

func (s *Store) indexOf(id string) int {
	for i, rec := range s.records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

func cloneRecords(records []Record) []Record {
	if len(records) == 0 {
		return nil
	}
	dup := make([]Record, len(records))
	copy(dup, records)
	return dup
}
