// Package store owns the persisted collection of time entries. The whole
// collection lives as a JSON array under one slot of the kv port, read and
// rewritten whole on every mutation. That read-modify-persist pattern is
// safe because exactly one caller runs at a time.
package store

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/nkondratyk93/mvp-punchclock/internal/domain"
	"github.com/nkondratyk93/mvp-punchclock/internal/kv"
)

// SlotKey is the fixed kv slot holding the entry collection.
const SlotKey = "punchclock-data"

// EntryStore is the single owner of the entry collection.
type EntryStore struct {
	slots kv.Store
	now   func() time.Time
	newID func() string
}

// Option configures an EntryStore during construction.
type Option func(*EntryStore)

// WithClock overrides the instant source. Tests use this to get
// deterministic timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *EntryStore) { s.now = now }
}

// WithIDGenerator overrides the entry id source.
func WithIDGenerator(newID func() string) Option {
	return func(s *EntryStore) { s.newID = newID }
}

// NewEntryStore creates an EntryStore over the given slot store.
func NewEntryStore(slots kv.Store, opts ...Option) *EntryStore {
	s := &EntryStore{
		slots: slots,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListAll returns the persisted collection in insertion order. A missing
// slot, a storage read error, or content that fails to parse all degrade
// to an empty collection; nothing is surfaced.
func (s *EntryStore) ListAll() []domain.TimeEntry {
	raw, ok, err := s.slots.Get(SlotKey)
	if err != nil || !ok {
		return nil
	}
	var entries []domain.TimeEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil
	}
	return entries
}

// ClockIn appends a new open entry starting now and returns it. It does
// not check for an existing open entry; callers guard that themselves.
func (s *EntryStore) ClockIn() domain.TimeEntry {
	entries := s.ListAll()
	entry := domain.TimeEntry{
		ID:    s.newID(),
		Start: s.now(),
		Note:  "",
	}
	entries = append(entries, entry)
	s.persist(entries)
	return entry
}

// ClockOut closes the active entry, stamping its end with the current
// instant and overwriting its note with the supplied value (an empty note
// replaces any earlier one). Returns nil without touching storage when no
// entry is open.
func (s *EntryStore) ClockOut(note string) *domain.TimeEntry {
	entries := s.ListAll()
	for i := range entries {
		if entries[i].Open() {
			end := s.now()
			entries[i].End = &end
			entries[i].Note = note
			s.persist(entries)
			e := entries[i]
			return &e
		}
	}
	return nil
}

// Active returns the first open entry, or nil.
func (s *EntryStore) Active() *domain.TimeEntry {
	for _, e := range s.ListAll() {
		if e.Open() {
			entry := e
			return &entry
		}
	}
	return nil
}

// Update applies the patch to the entry with the given id and persists.
// An unknown id is a silent no-op. An end earlier than the entry's start
// is rejected with domain.ErrEndBeforeStart and nothing is written.
func (s *EntryStore) Update(id string, u domain.EntryUpdate) error {
	entries := s.ListAll()
	for i := range entries {
		if entries[i].ID == id {
			if err := u.Apply(&entries[i]); err != nil {
				return err
			}
			s.persist(entries)
			return nil
		}
	}
	return nil
}

// persist rewrites the slot. Write failures have no expressed failure
// path in the store's contract and are dropped.
func (s *EntryStore) persist(entries []domain.TimeEntry) {
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	_ = s.slots.Set(SlotKey, string(raw))
}
