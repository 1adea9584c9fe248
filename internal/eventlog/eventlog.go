// Package eventlog records a bounded, subscribable trace of synchronization
// activity. Diagnostics are advisory: no operation in this package returns an
// error or panics, and persistence failures are swallowed.
package eventlog

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/claude/liftlog/internal/store"
)

// Status classifies the outcome a diagnostic event describes.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusInfo    Status = "info"
)

// Event is one immutable trace record of a synchronization step's outcome.
type Event struct {
	ID        string         `json:"id"`
	Timestamp int64          `json:"timestamp"` // epoch milliseconds
	Status    Status         `json:"status"`
	Source    string         `json:"source"`
	Action    string         `json:"action"`
	Message   string         `json:"message"`
	Meta      map[string]any `json:"meta,omitempty"`
}

// maxEvents bounds the log; oldest entries are dropped first.
const maxEvents = 100

// storeKey holds the persisted JSON sequence in the durable store.
const storeKey = "sync_events"

// Log is the diagnostic event log. Construct one per process with New and
// inject it into consumers; a fresh instance per test keeps tests isolated.
type Log struct {
	mu     sync.Mutex
	store  store.Store
	now    func() time.Time
	events []Event
	subs   map[int]func([]Event)
	nextID int
}

// New creates a Log, loading any previously persisted sequence from st.
// Absent or unparsable state starts the log empty; startup never fails on
// corrupt diagnostic state.
func New(st store.Store) *Log {
	l := &Log{
		store: st,
		now:   time.Now,
		subs:  make(map[int]func([]Event)),
	}
	if st != nil {
		if raw, ok, err := st.Get(storeKey); err == nil && ok {
			var events []Event
			if json.Unmarshal([]byte(raw), &events) == nil {
				if len(events) > maxEvents {
					events = events[len(events)-maxEvents:]
				}
				l.events = events
			}
		}
	}
	return l
}

// Record appends a new event, truncates to the most recent 100 entries,
// persists best-effort, and synchronously notifies subscribers with snapshot
// copies.
func (l *Log) Record(status Status, source, action, message string, meta map[string]any) Event {
	l.mu.Lock()
	ev := Event{
		ID:        uuid.NewString(),
		Timestamp: l.now().UnixMilli(),
		Status:    status,
		Source:    source,
		Action:    action,
		Message:   message,
		Meta:      meta,
	}

	events := make([]Event, 0, len(l.events)+1)
	events = append(events, l.events...)
	events = append(events, ev)
	if len(events) > maxEvents {
		events = events[len(events)-maxEvents:]
	}
	l.events = events

	l.persistLocked()
	subs := l.subscribersLocked()
	l.mu.Unlock()

	l.notify(subs)
	return ev
}

// List returns a snapshot copy of the current events, oldest first. The
// slice is never nil so an empty log serializes as [] rather than null.
func (l *Log) List() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Event{}, l.events...)
}

// Reset empties the log, persists the empty state, and notifies subscribers.
func (l *Log) Reset() {
	l.mu.Lock()
	l.events = nil
	l.persistLocked()
	subs := l.subscribersLocked()
	l.mu.Unlock()

	l.notify(subs)
}

// Subscribe registers fn to be invoked with a snapshot on every future Record
// or Reset. The returned function deregisters it; calling it during a
// notification is safe.
func (l *Log) Subscribe(fn func([]Event)) func() {
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.subs[id] = fn
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		delete(l.subs, id)
		l.mu.Unlock()
	}
}

// persistLocked writes the current sequence to the durable store. Failures
// are swallowed: the log must keep working without persistence.
func (l *Log) persistLocked() {
	if l.store == nil {
		return
	}
	events := l.events
	if events == nil {
		events = []Event{}
	}
	raw, err := json.Marshal(events)
	if err != nil {
		return
	}
	_ = l.store.Set(storeKey, string(raw))
}

// subscribersLocked copies the subscriber set so notification runs outside
// the lock and unsubscribes during notification cannot corrupt iteration.
func (l *Log) subscribersLocked() []func([]Event) {
	subs := make([]func([]Event), 0, len(l.subs))
	for _, fn := range l.subs {
		subs = append(subs, fn)
	}
	return subs
}

// notify delivers an independent snapshot to each subscriber. A panicking
// subscriber must not take down the log or starve the others.
func (l *Log) notify(subs []func([]Event)) {
	for _, fn := range subs {
		snapshot := l.List()
		func() {
			defer func() { _ = recover() }()
			fn(snapshot)
		}()
	}
}
