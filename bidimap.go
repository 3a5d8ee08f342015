package bidimap

import (
	"fmt"
	"iter"
	"maps"
)

// Map is a generic bidirectional map between unique keys and unique values.
// Lookups in either direction are O(1); the items are stored twice, once per
// direction. The zero value is ready to use and carries the all-[Fail] policy.
//
// A Map is not safe for concurrent use.
type Map[K comparable, V comparable] struct {
	fwd   map[K]V
	inv   map[V]K
	pair  *Map[V, K]
	onDup OnDup
	hooks storeHooks[K, V]
}

// New builds a [Map] from the given sources, consumed left to right under
// [OnDupDefault]. A duplication error from construction leaves nothing usable behind;
// rollback is only performed for updates to an existing Map.
func New[K comparable, V comparable](sources ...Source[K, V]) (*Map[K, V], error) {
	return NewWith(OnDupDefault, sources...)
}

// NewWith is [New] with an explicit policy, which also becomes the instance default
// used by [Map.Put] and [Map.PutAll].
func NewWith[K comparable, V comparable](onDup OnDup, sources ...Source[K, V]) (*Map[K, V], error) {
	m := &Map[K, V]{onDup: onDup}
	m.init()
	if err := m.update(true, onDup, sources); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Map[K, V]) init() {
	if m == nil {
		panic("nil Map!")
	}
	if m.fwd == nil {
		m.fwd = map[K]V{}
	}
	if m.inv == nil {
		m.inv = map[V]K{}
	}
	if m.hooks == nil {
		m.hooks = m
	}
}

// Inverse returns the paired view of this Map with the key and value roles swapped.
// The pair shares both backing stores with this Map rather than copying them, so
// mutations through either are visible through both, and m.Inverse().Inverse() is m
// itself. At most one pair is ever allocated per Map; repeated calls return the same
// instance. The pair inherits this Map's default policy.
func (m *Map[K, V]) Inverse() *Map[V, K] {
	m.init()
	if m.pair == nil {
		pair := &Map[V, K]{fwd: m.inv, inv: m.fwd, onDup: m.onDup, pair: m}
		pair.hooks = pair
		m.pair = pair
	}
	return m.pair
}

// Get returns the value mapped to key, or a [KeyNotFoundError] if there is none.
func (m *Map[K, V]) Get(key K) (V, error) {
	val, ok := m.ValueOk(key)
	if !ok {
		return val, &KeyNotFoundError{Key: key}
	}
	return val, nil
}

func (m *Map[K, V]) ValueOk(key K) (V, bool) {
	m.init()
	val, ok := m.fwd[key]
	return val, ok
}

func (m *Map[K, V]) Value(key K) V {
	val, _ := m.ValueOk(key)
	return val
}

func (m *Map[K, V]) KeyOk(val V) (K, bool) {
	m.init()
	key, ok := m.inv[val]
	return key, ok
}

func (m *Map[K, V]) Key(val V) K {
	key, _ := m.KeyOk(val)
	return key
}

func (m *Map[K, V]) HasKey(key K) bool {
	_, ok := m.ValueOk(key)
	return ok
}

func (m *Map[K, V]) HasValue(val V) bool {
	_, ok := m.KeyOk(val)
	return ok
}

func (m *Map[K, V]) Len() int {
	return len(m.fwd)
}

// All returns an iterator over all items. Order is unspecified.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for key, val := range m.fwd {
			if !yield(key, val) {
				return
			}
		}
	}
}

// items makes a *Map a [Source] of its own items, which lets bulk updates into an
// empty Map skip dedup checking entirely.
func (m *Map[K, V]) items() iter.Seq2[K, V] {
	return m.All()
}

// Keys returns an iterator over the contained keys. Order is unspecified.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range m.fwd {
			if !yield(key) {
				return
			}
		}
	}
}

// Values returns an iterator over the contained values, backed by the inverse store.
// Values are unique by construction, so together with [Map.HasValue] this behaves as
// a set view.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for val := range m.inv {
			if !yield(val) {
				return
			}
		}
	}
}

// Equal reports whether both maps contain exactly the same items, regardless of the
// order they were inserted in. A nil Map equals an empty one.
func (m *Map[K, V]) Equal(other *Map[K, V]) bool {
	if other == nil {
		return m.Len() == 0
	}
	return m.EqualMap(other.fwd)
}

// EqualMap is [Map.Equal] against a plain map.
func (m *Map[K, V]) EqualMap(other map[K]V) bool {
	if m.Len() != len(other) {
		return false
	}
	for key, val := range other {
		if have, ok := m.fwd[key]; !ok || have != val {
			return false
		}
	}
	return true
}

// Copy returns an independent Map with the same items and default policy. The
// backing stores are cloned directly instead of replaying the items through the
// insert path, and the copy gets its own inverse pairing.
func (m *Map[K, V]) Copy() *Map[K, V] {
	m.init()
	cp := &Map[K, V]{fwd: maps.Clone(m.fwd), inv: maps.Clone(m.inv), onDup: m.onDup}
	cp.init()
	return cp
}

// Put inserts or updates an item under the Map's default policy.
func (m *Map[K, V]) Put(key K, val V) error {
	return m.PutWith(key, val, m.onDup)
}

// PutWith inserts or updates an item under an explicit policy. An exact (key, val)
// match is a no-op. Otherwise the applicable [OnDup] slot decides: [Fail] returns a
// [KeyDuplicationError], [ValueDuplicationError], or [KeyAndValueDuplicationError];
// [Keep] drops the new item; [Overwrite] writes it, displacing whatever it collided
// with from both stores.
func (m *Map[K, V]) PutWith(key K, val V, onDup OnDup) error {
	m.init()
	return m.putItem(key, val, onDup)
}

// ForcePut unconditionally associates key with val, displacing any existing items
// either side collides with.
func (m *Map[K, V]) ForcePut(key K, val V) {
	m.init()
	_ = m.putItem(key, val, OnDupOverwrite)
}

// PutAll inserts every item from the given sources under the Map's default policy,
// with the atomicity guarantees described on [Map.PutAllWith].
func (m *Map[K, V]) PutAll(sources ...Source[K, V]) error {
	return m.PutAllWith(m.onDup, sources...)
}

// PutAllWith inserts every item from the given sources, consumed left to right in a
// single pass, under an explicit policy. If any slot of the policy is [Fail], the
// whole batch is atomic: the first rejected item undoes every previously applied
// write before the error is returned, leaving the Map exactly as it was.
func (m *Map[K, V]) PutAllWith(onDup OnDup, sources ...Source[K, V]) error {
	m.init()
	return m.update(false, onDup, sources)
}

// ForcePutAll inserts every item from the given sources, displacing existing items
// on any collision.
func (m *Map[K, V]) ForcePutAll(sources ...Source[K, V]) {
	m.init()
	_ = m.update(false, OnDupOverwrite, sources)
}

// Remove deletes the item with the given key from both stores and returns its value,
// or a [KeyNotFoundError] if there is none.
func (m *Map[K, V]) Remove(key K) (V, error) {
	m.init()
	val, ok := m.pop(key)
	if !ok {
		return val, &KeyNotFoundError{Key: key}
	}
	return val, nil
}

// Clear removes every item. The stores are cleared in place, so the inverse view
// observes the reset.
func (m *Map[K, V]) Clear() {
	m.init()
	clear(m.fwd)
	clear(m.inv)
}

// String formats the Map for debugging output.
func (m *Map[K, V]) String() string {
	// fmt renders the builtin map as "map[k:v ...]" with sorted keys,
	// so this comes out as "bidimap[k:v ...]".
	return "bidi" + fmt.Sprintf("%v", m.fwd)
}
