package bidimap

import "encoding/json"

// MarshalJSON encodes the Map as an array of key/value pairs, in unspecified order.
// The inverse pairing is wiring rather than state and is not part of the payload.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	pairs := make([]Pair[K, V], 0, len(m.fwd))
	for key, val := range m.fwd {
		pairs = append(pairs, Pair[K, V]{Key: key, Val: val})
	}
	return json.Marshal(pairs)
}

// UnmarshalJSON rebuilds the Map from a pair array produced by [Map.MarshalJSON],
// re-deriving the inverse wiring on this side. Payloads containing a duplicate key
// or value are rejected with the corresponding duplication error; like failed
// construction, a rejected import leaves the Map unusable rather than rolled back.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	var pairs []Pair[K, V]
	if err := json.Unmarshal(data, &pairs); err != nil {
		return err
	}
	m.init()
	clear(m.fwd)
	clear(m.inv)
	return m.update(true, OnDupFail, []Source[K, V]{Pairs(pairs...)})
}
