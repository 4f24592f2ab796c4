// Package syncutil provides concurrency helpers.
package syncutil

import (
	"maps"
	"slices"
	"sync"
)

// RWMap is a map protected by a [sync.RWMutex].
// The zero value is ready to use.
type RWMap[K comparable, V any] struct {
	mu   sync.RWMutex
	data map[K]V
}

// NewRWMap creates a map holding a copy of data.
func NewRWMap[K comparable, V any](data map[K]V) *RWMap[K, V] {
	return &RWMap[K, V]{data: maps.Clone(data)}
}

func (m *RWMap[K, V]) Get(key K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

// Swap stores val and returns the previous value, if any.
func (m *RWMap[K, V]) Swap(key K, val V) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[K]V)
	}
	old, ok := m.data[key]
	m.data[key] = val
	return old, ok
}

// GetOrSet returns the stored value if present, otherwise stores val.
func (m *RWMap[K, V]) GetOrSet(key K, val V) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.data[key]; ok {
		return v, true
	}
	if m.data == nil {
		m.data = make(map[K]V)
	}
	m.data[key] = val
	return val, false
}

func (m *RWMap[K, V]) Del(key K) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}

func (m *RWMap[K, V]) Len() int {
	if m == nil {
		return 0
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Keys returns the keys sorted with cmp.
func (m *RWMap[K, V]) Keys(cmp func(K, K) int) []K {
	if m == nil {
		return nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.SortedFunc(maps.Keys(m.data), cmp)
}
