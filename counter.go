// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package collections

import (
	"sort"
)

// Counter is a multiset: a mapping from element to a signed number of
// occurrences.
//
// A Counter is a plain Go map, so native indexing (`c[v]++`,
// `c[v] = n`, `len(c)`, `range c`) is the mutable per-element access;
// absent elements read as 0 without being inserted.  Counts may go to
// zero or negative; such entries stay stored until Delete'd, but are
// skipped by Elements.
type Counter[T comparable] map[T]int

// Count returns the number of occurrences of v, 0 if v is absent.
//
// Unlike DefaultMap.Load, Count never inserts; all inserting access
// goes through Insert/Update/AddFrom/SubtractFrom or native indexing.
func (c Counter[T]) Count(v T) int {
	return c[v]
}

// Insert records one more occurrence of v, creating the entry at 0
// first if v is absent.
func (c Counter[T]) Insert(v T) {
	c[v]++
}

// Update counts every element of vs, and returns the receiver so that
// calls can be chained.
func (c Counter[T]) Update(vs ...T) Counter[T] {
	for _, v := range vs {
		c[v]++
	}
	return c
}

// AddFrom adds every count in p to the corresponding count in c,
// creating absent entries at 0 first.
func (c Counter[T]) AddFrom(p Counter[T]) {
	for v, n := range p {
		c[v] += n
	}
}

// SubtractFrom subtracts every count in p from the corresponding
// count in c.  Zero or negative resulting counts are kept; that is
// valid Counter state, not an error.
func (c Counter[T]) SubtractFrom(p Counter[T]) {
	for v, n := range p {
		c[v] -= n
	}
}

// Clone returns an independent copy of c.
func (c Counter[T]) Clone() Counter[T] {
	ret := make(Counter[T], len(c))
	for v, n := range c {
		ret[v] = n
	}
	return ret
}

// Delete removes the entry for v entirely (a zero or negative count
// is otherwise retained), and reports whether an entry was actually
// removed.
func (c Counter[T]) Delete(v T) bool {
	if _, ok := c[v]; !ok {
		return false
	}
	delete(c, v)
	return true
}

// Elements calls fn for each element with a positive count, repeating
// each element as many times as its count, until fn returns false.
// Elements with a non-positive count are skipped entirely.
//
// Repetitions of an element are consecutive, and elements come in map
// iteration order; mutating c during the traversal is undefined.
func (c Counter[T]) Elements(fn func(T) bool) {
	for v, n := range c {
		for i := 0; i < n; i++ {
			if !fn(v) {
				return
			}
		}
	}
}

// A Count pairs an element with its count, for MostCommon.
type Count[T comparable] struct {
	Val T
	N   int
}

// MostCommon returns the n entries with the largest counts, most
// common first.  If n is non-positive or exceeds the number of
// entries, all entries are returned.  The relative order of entries
// with equal counts is unspecified.
func (c Counter[T]) MostCommon(n int) []Count[T] {
	ret := make([]Count[T], 0, len(c))
	for v, cnt := range c {
		ret = append(ret, Count[T]{Val: v, N: cnt})
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i].N > ret[j].N
	})
	if 0 < n && n < len(ret) {
		ret = ret[:n]
	}
	return ret
}

// Total returns the sum of all stored counts, zero and negative ones
// included.
func (c Counter[T]) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}
