// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package maps implements generic (type-parameterized) utilities for
// working with simple Go maps.
//
// The functions take an `~map[K]V` type parameter rather than a plain
// `map[K]V`, so that named map types (such as
// collections.NativeMap and collections.Counter) can be passed
// without conversion.
package maps

import (
	"golang.org/x/exp/constraints"

	"git.lukeshu.com/go/collections/slices"
)

func Keys[M ~map[K]V, K comparable, V any](m M) []K {
	ret := make([]K, 0, len(m))
	for k := range m {
		ret = append(ret, k)
	}
	return ret
}

func Values[M ~map[K]V, K comparable, V any](m M) []V {
	ret := make([]V, 0, len(m))
	for _, v := range m {
		ret = append(ret, v)
	}
	return ret
}

func SortedKeys[M ~map[K]V, K constraints.Ordered, V any](m M) []K {
	ret := Keys(m)
	slices.Sort(ret)
	return ret
}
