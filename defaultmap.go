// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package collections

import (
	"fmt"
)

// DefaultMap is a mapping that materializes a default value the first
// time a missing key is accessed.
//
// Values are handed out as pointers, so that a lookup doubles as a
// read/write handle; mutations through the pointer are visible to
// subsequent lookups.
//
// The zero DefaultMap is usable once New is set.
type DefaultMap[K comparable, V any] struct {
	// New is called, with no arguments, to produce the value for
	// a key that is not already present.  New must not be nil.
	New func() V

	inner map[K]*V
}

// NewDefaultMap returns a DefaultMap that materializes missing values
// with newFn, seeded with the entries of init (which may be nil).
//
// It is invalid (runtime-panic) to call NewDefaultMap with a nil
// factory.
func NewDefaultMap[K comparable, V any](newFn func() V, init map[K]V) *DefaultMap[K, V] {
	if newFn == nil {
		panic(fmt.Errorf("collections.NewDefaultMap: nil factory"))
	}
	m := &DefaultMap[K, V]{
		New:   newFn,
		inner: make(map[K]*V, len(init)),
	}
	for k, v := range init {
		v := v
		m.inner[k] = &v
	}
	return m
}

// Acquire returns a handle to the value for k, first calling New
// exactly once to materialize and store the value if k is not already
// present.
func (m *DefaultMap[K, V]) Acquire(k K) *V {
	if p, ok := m.inner[k]; ok {
		return p
	}
	if m.inner == nil {
		m.inner = make(map[K]*V)
	}
	v := m.New()
	m.inner[k] = &v
	return &v
}

// Load is identical to Acquire.
//
// Unlike the Load of a plain Map, Load inserts a New-produced value
// for a missing key rather than reporting a miss; DefaultMap
// deliberately has no non-inserting accessor, so that the index-style
// and checked-style lookups agree.
func (m *DefaultMap[K, V]) Load(k K) *V {
	return m.Acquire(k)
}

// Store sets the value for k, replacing any previously materialized
// default.
func (m *DefaultMap[K, V]) Store(k K, v V) {
	if m.inner == nil {
		m.inner = make(map[K]*V)
	}
	m.inner[k] = &v
}

// Has reports whether k is present, without materializing a value.
func (m *DefaultMap[K, V]) Has(k K) bool {
	_, ok := m.inner[k]
	return ok
}

// Delete removes the entry for k, and reports whether an entry was
// actually removed.
func (m *DefaultMap[K, V]) Delete(k K) bool {
	if _, ok := m.inner[k]; !ok {
		return false
	}
	delete(m.inner, k)
	return true
}

// Len returns the number of stored entries, materialized defaults
// included.
func (m *DefaultMap[K, V]) Len() int {
	return len(m.inner)
}

// Range calls fn for each entry, in no particular order, until fn
// returns false.
func (m *DefaultMap[K, V]) Range(fn func(K, V) bool) {
	for k, p := range m.inner {
		if !fn(k, *p) {
			return
		}
	}
}
