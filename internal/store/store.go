// Package store provides the local durable key-value store backing the
// workout log fallback path and the diagnostic event log. It is the only
// persistence in the system guaranteed to need no network or credential.
package store

// Store is the durable key-value contract required by the synchronizer and
// the event log. Implementations must make Set atomic per key: a reader never
// observes a partial write.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	// Set writes value under key, replacing any previous value.
	Set(key, value string) error
}
