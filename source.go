package bidimap

import "iter"

// Pair is a single key/value association.
type Pair[K comparable, V comparable] struct {
	Key K `json:"key"`
	Val V `json:"value"`
}

// Item is shorthand for a [Pair] literal.
func Item[K comparable, V comparable](key K, val V) Pair[K, V] {
	return Pair[K, V]{Key: key, Val: val}
}

// Source produces key/value pairs for construction and bulk updates.
// A Source may be one-shot; consumers make a single left-to-right pass and never
// re-read it. A [*Map] is itself a Source over its own items.
type Source[K comparable, V comparable] interface {
	items() iter.Seq2[K, V]
}

type pairSource[K comparable, V comparable] []Pair[K, V]

func (s pairSource[K, V]) items() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range s {
			if !yield(p.Key, p.Val) {
				return
			}
		}
	}
}

// Pairs is a [Source] over the given pairs, in order.
func Pairs[K comparable, V comparable](pairs ...Pair[K, V]) Source[K, V] {
	return pairSource[K, V](pairs)
}

type mapSource[K comparable, V comparable] map[K]V

func (s mapSource[K, V]) items() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for key, val := range s {
			if !yield(key, val) {
				return
			}
		}
	}
}

// Entries is a [Source] over the entries of a plain map, in no particular order.
func Entries[K comparable, V comparable](m map[K]V) Source[K, V] {
	return mapSource[K, V](m)
}

type seqSource[K comparable, V comparable] iter.Seq2[K, V]

func (s seqSource[K, V]) items() iter.Seq2[K, V] {
	return iter.Seq2[K, V](s)
}

// Seq2 adapts an arbitrary iterator to a [Source]. The iterator is consumed at most
// once, so one-shot iterators are fine.
func Seq2[K comparable, V comparable](seq iter.Seq2[K, V]) Source[K, V] {
	return seqSource[K, V](seq)
}
