// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"git.lukeshu.com/go/collections"
)

var _ collections.RangeMap[string, int] = collections.NativeMap[string, int]{}

func TestNativeMap(t *testing.T) {
	t.Parallel()

	m := collections.NativeMap[string, int]{}
	m.Store("a", 1)
	m.Store("a", 2)
	m.Store("b", 3)

	v, ok := m.Load("a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = m.Load("z")
	assert.False(t, ok)

	assert.True(t, m.Has("b"))
	assert.Equal(t, 2, m.Len())

	got := make(map[string]int)
	m.Range(func(k string, v int) bool {
		got[k] = v
		return true
	})
	assert.Equal(t, map[string]int{"a": 2, "b": 3}, got)

	assert.True(t, m.Delete("a"))
	assert.False(t, m.Delete("a"))
	assert.Equal(t, 1, m.Len())
}

func TestLoadOrElse(t *testing.T) {
	t.Parallel()

	m := collections.NativeMap[string, int]{"a": 1}

	calls := 0
	vFn := func(k string) int {
		calls++
		return len(k)
	}

	assert.Equal(t, 1, collections.LoadOrElse[string, int](m, "a", vFn))
	assert.Equal(t, 0, calls)

	assert.Equal(t, 3, collections.LoadOrElse[string, int](m, "xyz", vFn))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 3, m["xyz"])

	assert.Equal(t, 3, collections.LoadOrElse[string, int](m, "xyz", vFn))
	assert.Equal(t, 1, calls)
}
