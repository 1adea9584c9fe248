package eventlog

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

// fakeStore is an in-memory store.Store with an optional injected failure.
type fakeStore struct {
	data    map[string]string
	failSet bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]string)}
}

func (f *fakeStore) Get(key string) (string, bool, error) {
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeStore) Set(key, value string) error {
	if f.failSet {
		return errors.New("storage quota exceeded")
	}
	f.data[key] = value
	return nil
}

// TestRecordAssignsIdentity verifies Record fills id and timestamp.
func TestRecordAssignsIdentity(t *testing.T) {
	l := New(newFakeStore())

	ev := l.Record(StatusInfo, "synchronizer", "log_workout", "starting", nil)
	if ev.ID == "" {
		t.Error("expected non-empty event ID")
	}
	if ev.Timestamp == 0 {
		t.Error("expected non-zero timestamp")
	}
	if ev.Status != StatusInfo || ev.Source != "synchronizer" || ev.Action != "log_workout" {
		t.Errorf("unexpected event fields: %+v", ev)
	}
}

// TestBound verifies the log keeps exactly the 100 most recent events,
// oldest first, after recording 150.
func TestBound(t *testing.T) {
	l := New(newFakeStore())

	for i := 0; i < 150; i++ {
		l.Record(StatusInfo, "test", "fill", fmt.Sprintf("event %d", i), nil)
	}

	events := l.List()
	if len(events) != 100 {
		t.Fatalf("len(List()) = %d, want 100", len(events))
	}
	if events[0].Message != "event 50" {
		t.Errorf("oldest retained = %q, want %q", events[0].Message, "event 50")
	}
	if events[99].Message != "event 149" {
		t.Errorf("newest retained = %q, want %q", events[99].Message, "event 149")
	}
}

// TestBoundEvictsOldest verifies that recording the 101st event drops the
// previously-first event.
func TestBoundEvictsOldest(t *testing.T) {
	l := New(newFakeStore())

	for i := 0; i < 100; i++ {
		l.Record(StatusInfo, "test", "fill", fmt.Sprintf("event %d", i), nil)
	}
	l.Record(StatusInfo, "test", "overflow", "one more", nil)

	events := l.List()
	if len(events) != 100 {
		t.Fatalf("len(List()) = %d, want 100", len(events))
	}
	for _, ev := range events {
		if ev.Message == "event 0" {
			t.Error("oldest event should have been evicted")
		}
	}
	if events[99].Message != "one more" {
		t.Errorf("newest = %q, want %q", events[99].Message, "one more")
	}
}

// TestSnapshotIsolation verifies a subscriber's snapshot is unaffected by
// later records (no shared mutable reference).
func TestSnapshotIsolation(t *testing.T) {
	l := New(newFakeStore())

	var first []Event
	unsub := l.Subscribe(func(events []Event) {
		if first == nil {
			first = events
		}
	})
	defer unsub()

	l.Record(StatusSuccess, "local", "write", "saved", nil)
	if len(first) != 1 {
		t.Fatalf("first snapshot length = %d, want 1", len(first))
	}

	l.Record(StatusError, "sheets", "append", "failed", nil)
	if len(first) != 1 {
		t.Errorf("earlier snapshot grew to %d entries", len(first))
	}
	if first[0].Message != "saved" {
		t.Errorf("earlier snapshot mutated: %+v", first[0])
	}

	// Mutating the List() result must not affect the log either.
	snap := l.List()
	snap[0].Message = "tampered"
	if l.List()[0].Message == "tampered" {
		t.Error("List() returned a live reference")
	}
}

// TestUnsubscribeDuringNotification verifies that unsubscribing from within a
// callback neither panics nor corrupts the subscriber set.
func TestUnsubscribeDuringNotification(t *testing.T) {
	l := New(newFakeStore())

	calls := 0
	var unsub func()
	unsub = l.Subscribe(func([]Event) {
		calls++
		unsub()
	})

	otherCalls := 0
	defer l.Subscribe(func([]Event) { otherCalls++ })()

	l.Record(StatusInfo, "test", "first", "", nil)
	l.Record(StatusInfo, "test", "second", "", nil)

	if calls != 1 {
		t.Errorf("self-unsubscribing callback ran %d times, want 1", calls)
	}
	if otherCalls != 2 {
		t.Errorf("independent subscriber ran %d times, want 2", otherCalls)
	}
}

// TestSubscriberPanicContained verifies that a panicking subscriber does not
// propagate out of Record or block other subscribers.
func TestSubscriberPanicContained(t *testing.T) {
	l := New(newFakeStore())

	defer l.Subscribe(func([]Event) { panic("bad subscriber") })()

	got := 0
	defer l.Subscribe(func([]Event) { got++ })()

	l.Record(StatusInfo, "test", "record", "", nil)
	if got != 1 {
		t.Errorf("healthy subscriber ran %d times, want 1", got)
	}
}

// TestPersistence verifies events survive a New from the same store, and that
// corrupt persisted state starts the log empty.
func TestPersistence(t *testing.T) {
	st := newFakeStore()

	l := New(st)
	l.Record(StatusSuccess, "local", "write", "saved", map[string]any{"entries": 3})

	l2 := New(st)
	events := l2.List()
	if len(events) != 1 {
		t.Fatalf("reloaded log has %d events, want 1", len(events))
	}
	if events[0].Message != "saved" {
		t.Errorf("reloaded message = %q, want %q", events[0].Message, "saved")
	}

	// Corrupt state is ignored, never fatal.
	st.data[storeKey] = "{not json"
	l3 := New(st)
	if got := len(l3.List()); got != 0 {
		t.Errorf("log from corrupt state has %d events, want 0", got)
	}
}

// TestPersistFailureSwallowed verifies Record keeps working when the store
// rejects writes.
func TestPersistFailureSwallowed(t *testing.T) {
	st := newFakeStore()
	st.failSet = true

	l := New(st)
	l.Record(StatusInfo, "test", "record", "still works", nil)

	if got := len(l.List()); got != 1 {
		t.Errorf("in-memory log has %d events, want 1", got)
	}
}

// TestReset verifies Reset empties the log, persists the empty state, and
// notifies subscribers.
func TestReset(t *testing.T) {
	st := newFakeStore()
	l := New(st)
	l.Record(StatusInfo, "test", "fill", "", nil)

	var last []Event
	notified := false
	defer l.Subscribe(func(events []Event) {
		notified = true
		last = events
	})()

	l.Reset()

	if got := len(l.List()); got != 0 {
		t.Errorf("log has %d events after reset, want 0", got)
	}
	if !notified {
		t.Error("expected subscriber notification on reset")
	}
	if len(last) != 0 {
		t.Errorf("reset snapshot has %d events, want 0", len(last))
	}

	var persisted []Event
	if err := json.Unmarshal([]byte(st.data[storeKey]), &persisted); err != nil {
		t.Fatalf("persisted state not valid JSON: %v", err)
	}
	if len(persisted) != 0 {
		t.Errorf("persisted %d events after reset, want 0", len(persisted))
	}
}

// TestNilStore verifies the log operates without a durable store at all.
func TestNilStore(t *testing.T) {
	l := New(nil)
	l.Record(StatusInfo, "test", "record", "", nil)
	if got := len(l.List()); got != 1 {
		t.Errorf("log has %d events, want 1", got)
	}
}
