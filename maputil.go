// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package collections implements generic (type-parameterized)
// container adapters layered on top of simple key/value mappings: a
// mapping that materializes default values for missing keys
// (DefaultMap), a multiset-style counting mapping (Counter), and a
// layered read/write view over several mappings (ChainMap).
//
// Everything in this package is single-threaded; no type provides any
// internal synchronization.
package collections

// A Map is the basic key/value mapping capability that the adapters
// in this package are built on; any associative container with
// unique-key semantics satisfies it.
type Map[K comparable, V any] interface {
	Store(K, V)
	Load(K) (V, bool)
	Has(K) bool
	// Delete removes the entry for a key, and reports whether an
	// entry was actually removed.
	Delete(K) bool
	Len() int
}

// A RangeMap is a Map that can also iterate over its entries, in no
// particular order.
type RangeMap[K comparable, V any] interface {
	Map[K, V]
	Range(func(K, V) bool)
}

// NativeMap wraps a plain Go map to implement RangeMap.
type NativeMap[K comparable, V any] map[K]V

var _ RangeMap[int, string] = NativeMap[int, string]{}

func (m NativeMap[K, V]) Store(k K, v V) {
	m[k] = v
}

func (m NativeMap[K, V]) Load(k K) (V, bool) {
	v, ok := m[k]
	return v, ok
}

func (m NativeMap[K, V]) Has(k K) bool {
	_, ok := m[k]
	return ok
}

func (m NativeMap[K, V]) Delete(k K) bool {
	if _, ok := m[k]; !ok {
		return false
	}
	delete(m, k)
	return true
}

func (m NativeMap[K, V]) Len() int {
	return len(m)
}

func (m NativeMap[K, V]) Range(fn func(K, V) bool) {
	for k, v := range m {
		if !fn(k, v) {
			return
		}
	}
}

// LoadOrElse returns the value for k in m, first storing a
// vFn-produced value if k is not already present.
func LoadOrElse[K comparable, V any](m Map[K, V], k K, vFn func(K) V) V {
	if v, ok := m.Load(k); ok {
		return v
	}
	v := vFn(k)
	m.Store(k, v)
	return v
}
