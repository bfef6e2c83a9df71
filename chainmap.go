// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package collections

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is wrapped by ChainMap.Fetch when no layer
	// contains the requested key.
	ErrKeyNotFound = errors.New("key not found")
	// ErrOutOfRange is wrapped by ChainMap.Layer when the
	// requested index is not a valid layer index.
	ErrOutOfRange = errors.New("layer index out of range")
)

// ChainMap groups several mappings ("layers") into a single
// updateable view.  Reads search the layers front to back and resolve
// to the first match; writes and deletes only ever touch the front
// layer.
//
// A ChainMap holds (non-owning) references to its layers, never
// copies of them; the layers must outlive the ChainMap, and mutating
// a layer from outside while a ChainMap operation is running is
// undefined.
//
// ChainMap itself implements RangeMap, so a ChainMap may be used as a
// layer of another ChainMap.
type ChainMap[K comparable, V any] struct {
	layers []RangeMap[K, V]
}

var _ RangeMap[int, string] = (*ChainMap[int, string])(nil)

// NewChainMap returns a ChainMap over the given layers, front first.
//
// It is invalid (runtime-panic) to call NewChainMap with no layers.
func NewChainMap[K comparable, V any](layers ...RangeMap[K, V]) *ChainMap[K, V] {
	if len(layers) == 0 {
		panic(fmt.Errorf("collections.NewChainMap: no layers"))
	}
	return &ChainMap[K, V]{layers: layers}
}

// Depth returns the number of layers.
func (c *ChainMap[K, V]) Depth() int {
	return len(c.layers)
}

// Layer returns the i'th layer (0 = front) by reference, or an error
// wrapping ErrOutOfRange if i is not a valid layer index.
func (c *ChainMap[K, V]) Layer(i int) (RangeMap[K, V], error) {
	if i < 0 || i >= len(c.layers) {
		return nil, fmt.Errorf("collections.ChainMap.Layer: index %d of %d layers: %w",
			i, len(c.layers), ErrOutOfRange)
	}
	return c.layers[i], nil
}

// NewChild returns a new ChainMap with m as the new front layer,
// followed by all of the layers of c, in order.  The existing layers
// are shared with c, not copied.
func (c *ChainMap[K, V]) NewChild(m RangeMap[K, V]) *ChainMap[K, V] {
	layers := make([]RangeMap[K, V], 0, len(c.layers)+1)
	layers = append(layers, m)
	layers = append(layers, c.layers...)
	return &ChainMap[K, V]{layers: layers}
}

// Load returns the value from the first (front-most) layer that
// contains k.  Load never mutates any layer.
func (c *ChainMap[K, V]) Load(k K) (V, bool) {
	for _, layer := range c.layers {
		if v, ok := layer.Load(k); ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// Fetch is like Load, but a total miss is reported as an error
// wrapping ErrKeyNotFound.
func (c *ChainMap[K, V]) Fetch(k K) (V, error) {
	v, ok := c.Load(k)
	if !ok {
		return v, fmt.Errorf("collections.ChainMap.Fetch: key=%v: %w", k, ErrKeyNotFound)
	}
	return v, nil
}

// Acquire returns the value for k, ensuring that the front layer
// contains it: if k is present only in a deeper layer its value is
// copied into the front layer first, and if k is absent from every
// layer a zero V is stored into the front layer.  If the front layer
// already contains k, deeper layers are not consulted.
//
// Mutation after an Acquire goes through Store, so it only ever
// affects the front layer.
func (c *ChainMap[K, V]) Acquire(k K) V {
	front := c.layers[0]
	if v, ok := front.Load(k); ok {
		return v
	}
	v, _ := c.Load(k)
	front.Store(k, v)
	return v
}

// Store sets the value for k in the front layer; deeper layers are
// never written to.
func (c *ChainMap[K, V]) Store(k K, v V) {
	c.layers[0].Store(k, v)
}

// Delete removes k from the front layer only, and reports whether an
// entry was actually removed from it.  k stays visible through the
// ChainMap if a deeper layer also contains it.
func (c *ChainMap[K, V]) Delete(k K) bool {
	return c.layers[0].Delete(k)
}

// Has reports whether any layer contains k.
func (c *ChainMap[K, V]) Has(k K) bool {
	for _, layer := range c.layers {
		if layer.Has(k) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct keys across all layers.
func (c *ChainMap[K, V]) Len() int {
	seen := make(map[K]struct{})
	for _, layer := range c.layers {
		layer.Range(func(k K, _ V) bool {
			seen[k] = struct{}{}
			return true
		})
	}
	return len(seen)
}

// Range calls fn once for each distinct key, with the value from the
// front-most layer that contains it, until fn returns false.
func (c *ChainMap[K, V]) Range(fn func(K, V) bool) {
	seen := make(map[K]struct{})
	for _, layer := range c.layers {
		stopped := false
		layer.Range(func(k K, v V) bool {
			if _, ok := seen[k]; ok {
				return true
			}
			seen[k] = struct{}{}
			if !fn(k, v) {
				stopped = true
				return false
			}
			return true
		})
		if stopped {
			return
		}
	}
}

// Flatten returns a new, independently owned mapping containing, for
// every key present in any layer, the value from the front-most layer
// that contains it.
func (c *ChainMap[K, V]) Flatten() NativeMap[K, V] {
	ret := make(NativeMap[K, V])
	for _, layer := range c.layers {
		layer.Range(func(k K, v V) bool {
			if !ret.Has(k) {
				ret[k] = v
			}
			return true
		})
	}
	return ret
}
