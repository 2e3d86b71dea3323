// Package inflight tracks actions that are currently running against a
// given item so duplicate submissions can be rejected while other items
// stay actionable.
package inflight

import (
	"fmt"
	"sync"
)

type Map struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func New() *Map {
	return &Map{keys: make(map[string]struct{})}
}

// Key builds the per-item key. Actions that must exclude each other for the
// same item (accept vs reject) share a key by omitting the action name.
func Key(kind string, id int64) string {
	return fmt.Sprintf("%s:%d", kind, id)
}

// TryAcquire marks the key in flight. It reports false when the key is
// already held; the caller must then refuse the duplicate submission.
func (m *Map) TryAcquire(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, held := m.keys[key]; held {
		return false
	}
	m.keys[key] = struct{}{}
	return true
}

// Release clears the key. Safe to call for keys that were never acquired.
func (m *Map) Release(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keys, key)
}

// Active reports whether the key is currently held.
func (m *Map) Active(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, held := m.keys[key]
	return held
}
