package warn

import (
	"strings"
	"sync"
)

// Manager is the single point of truth for warnings raised during one unit of
// work (a CLI invocation, a build run). It owns an ordered collection of
// records and notifies subscribed observers synchronously as each warning is
// recorded.
//
// A single mutex covers append+notify and complete (clear+detach) as atomic
// units, so a Manager is safe for concurrent use. Queries return snapshot
// copies that later recording never alters.
type Manager struct {
	mu        sync.Mutex
	records   []Record
	observers []*subscriber
	completed bool
}

type subscriber struct {
	obs Observer
}

// NewManager creates an empty manager with no observers.
func NewManager() *Manager {
	return &Manager{}
}

// Record appends an already-constructed record and notifies every currently
// subscribed observer before returning. After Complete nothing is ever
// notified again, but recording keeps working.
func (m *Manager) Record(rec Record) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = append(m.records, rec)
	if m.completed {
		return
	}
	for _, s := range m.observers {
		notify(s.obs, rec)
	}
}

// notify isolates observer panics so one failing observer cannot prevent the
// rest from seeing the record.
func notify(obs Observer, rec Record) {
	defer func() {
		_ = recover()
	}()
	obs.Next(rec)
}

// RecordMessage constructs a record of the given kind from a plain message
// and records it. An unregistered kind makes the call a silent no-op
// (no append, no notification); the return value reports whether the record
// was stored.
func (m *Manager) RecordMessage(kind Kind, message string) bool {
	rec, ok := New(kind, message)
	if !ok {
		return false
	}
	m.Record(rec)
	return true
}

// RecordData constructs a record whose message is synthesized from data and
// records it. No-op for kinds without data-only construction.
func (m *Manager) RecordData(kind Kind, data Data) bool {
	rec, ok := FromData(kind, data)
	if !ok {
		return false
	}
	m.Record(rec)
	return true
}

// All returns a copy of every stored record in insertion order.
func (m *Manager) All() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Record, len(m.records))
	copy(out, m.records)
	return out
}

// MatchMessage returns the records whose message contains substr
// (case-sensitive). The empty string matches everything.
func (m *Manager) MatchMessage(substr string) []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Record, 0, len(m.records))
	for _, rec := range m.records {
		if strings.Contains(rec.Message, substr) {
			out = append(out, rec)
		}
	}
	return out
}

// OfKind returns the records whose kind is the given kind or one of its
// descendants, in insertion order.
func (m *Manager) OfKind(kind Kind) []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Record, 0, len(m.records))
	for _, rec := range m.records {
		if rec.Kind.Is(kind) {
			out = append(out, rec)
		}
	}
	return out
}

// GroupByKind partitions the stored records by their exact (most specific)
// kind. Each group preserves recording order; only kinds actually present
// appear as keys.
func (m *Manager) GroupByKind() map[Kind][]Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	groups := make(map[Kind][]Record)
	for _, rec := range m.records {
		groups[rec.Kind] = append(groups[rec.Kind], rec)
	}
	return groups
}

// Len returns the number of currently stored records.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

// Clear removes all stored records. Observers and the completed flag are
// untouched.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = nil
}

// Subscribe registers an observer and returns a cancel function that
// unsubscribes it. Cancel is idempotent. Subscribing after Complete is
// allowed but inert: a completed manager never notifies anyone.
func (m *Manager) Subscribe(obs Observer) func() {
	s := &subscriber{obs: obs}
	m.mu.Lock()
	m.observers = append(m.observers, s)
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, cur := range m.observers {
			if cur == s {
				m.observers = append(m.observers[:i], m.observers[i+1:]...)
				break
			}
		}
	}
}

// Complete performs the terminal lifecycle transition: it clears the stored
// records, detaches every observer and permanently disables notification.
// There is no way back to the active state.
func (m *Manager) Complete() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = nil
	m.observers = nil
	m.completed = true
}

// Completed reports whether Complete has been called.
func (m *Manager) Completed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.completed
}
