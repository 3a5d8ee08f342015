package bidimap

import "github.com/saylorsolutions/bidimap/internal/assert"

// dedupResult classifies how a candidate item collides with existing items. It is
// computed fresh immediately before each write and never stored.
type dedupResult[K comparable, V comparable] struct {
	isDupKey bool // key is already mapped to oldVal
	isDupVal bool // val is already mapped back from oldKey
	oldKey   K    // meaningful only when isDupVal
	oldVal   V    // meaningful only when isDupKey
}

// writeRecord captures one applied write together with the items it displaced, which
// is enough to reverse the write exactly.
type writeRecord[K comparable, V comparable] struct {
	key    K
	val    V
	oldKey K
	oldVal V
}

// appliedWrite is one rollback log entry.
type appliedWrite[K comparable, V comparable] struct {
	ded dedupResult[K, V]
	rec writeRecord[K, V]
}

// storeHooks are the operations a variant with extra bookkeeping (such as an
// insertion-ordered store) would replace: the exact-duplicate check and the
// write/undo primitives. The dedup decision table and the batch driver mutate the
// stores only through these, and a Map is its own default implementation.
type storeHooks[K comparable, V comparable] interface {
	alreadyHave(key K, val V, oldKey K, oldVal V) bool
	writeItem(key K, val V, ded dedupResult[K, V]) writeRecord[K, V]
	undoWrite(ded dedupResult[K, V], rec writeRecord[K, V])
}

// dedupItem applies the policy decision table to a candidate item. A nil result with
// a nil error means drop the item as a no-op, a non-nil result means proceed to
// write, and an error means the policy rejected the item.
func (m *Map[K, V]) dedupItem(key K, val V, onDup OnDup) (*dedupResult[K, V], error) {
	oldVal, isDupKey := m.fwd[key]
	oldKey, isDupVal := m.inv[val]
	ded := &dedupResult[K, V]{isDupKey: isDupKey, isDupVal: isDupVal, oldKey: oldKey, oldVal: oldVal}
	switch {
	case isDupKey && isDupVal:
		if m.hooks.alreadyHave(key, val, oldKey, oldVal) {
			// The exact item is already present. Not a duplication.
			return nil, nil
		}
		// key and val each duplicate a different existing item.
		switch onDup.KV {
		case Fail:
			return nil, &KeyAndValueDuplicationError{Key: key, Val: val}
		case Keep:
			return nil, nil
		}
	case isDupKey:
		switch onDup.Key {
		case Fail:
			return nil, &KeyDuplicationError{Key: key}
		case Keep:
			return nil, nil
		}
	case isDupVal:
		switch onDup.Val {
		case Fail:
			return nil, &ValueDuplicationError{Val: val}
		case Keep:
			return nil, nil
		}
	}
	return ded, nil
}

// alreadyHave reports whether the exact (key, val) item is already present. The two
// stores must agree on that; disagreement means a store was corrupted.
func (m *Map[K, V]) alreadyHave(key K, val V, oldKey K, oldVal V) bool {
	have := oldKey == key
	assert.Truef(have == (oldVal == val), "forward and inverse stores disagree on key %v / value %v", key, val)
	return have
}

// writeItem applies one item to both stores, removing whatever stale entries the
// dedup check found, and returns the record needed to undo it.
func (m *Map[K, V]) writeItem(key K, val V, ded dedupResult[K, V]) writeRecord[K, V] {
	m.fwd[key] = val
	m.inv[val] = key
	if ded.isDupKey {
		delete(m.inv, ded.oldVal)
	}
	if ded.isDupVal {
		delete(m.fwd, ded.oldKey)
	}
	return writeRecord[K, V]{key: key, val: val, oldKey: ded.oldKey, oldVal: ded.oldVal}
}

// undoWrite reverses one applied write: a plain insert is popped, and a displacing
// write has the displaced items restored and its residual entries removed.
func (m *Map[K, V]) undoWrite(ded dedupResult[K, V], rec writeRecord[K, V]) {
	if !ded.isDupKey && !ded.isDupVal {
		m.pop(rec.key)
		return
	}
	if ded.isDupKey {
		m.fwd[rec.key] = rec.oldVal
		m.inv[rec.oldVal] = rec.key
		if !ded.isDupVal {
			delete(m.inv, rec.val)
		}
	}
	if ded.isDupVal {
		m.inv[rec.val] = rec.oldKey
		m.fwd[rec.oldKey] = rec.val
		if !ded.isDupKey {
			delete(m.fwd, rec.key)
		}
	}
}

// pop removes key from both stores if present.
func (m *Map[K, V]) pop(key K) (V, bool) {
	val, ok := m.fwd[key]
	if !ok {
		return val, false
	}
	delete(m.fwd, key)
	delete(m.inv, val)
	return val, true
}

// putItem runs the dedup check and applies the write unless the policy resolved the
// item as a no-op.
func (m *Map[K, V]) putItem(key K, val V, onDup OnDup) error {
	ded, err := m.dedupItem(key, val, onDup)
	if err != nil || ded == nil {
		return err
	}
	m.hooks.writeItem(key, val, *ded)
	return nil
}

// update is the batch driver behind construction and PutAll.
func (m *Map[K, V]) update(init bool, onDup OnDup, sources []Source[K, V]) error {
	if len(sources) == 0 {
		return nil
	}
	if len(m.fwd) == 0 && len(sources) == 1 {
		// Another Map's internal bijection guarantees no duplicates within it, and
		// with nothing here yet there is nothing to collide with.
		if other, ok := sources[0].(*Map[K, V]); ok {
			m.updateNoDupCheck(other)
			return nil
		}
	}
	if init || !onDup.hasFail() {
		// Keep and Overwrite outcomes never invalidate a previously applied item, and
		// construction has no prior state to restore, so no log is needed.
		return m.updateNoRollback(onDup, sources)
	}
	return m.updateWithRollback(onDup, sources)
}

func (m *Map[K, V]) updateNoDupCheck(other *Map[K, V]) {
	var noDup dedupResult[K, V]
	for key, val := range other.All() {
		m.hooks.writeItem(key, val, noDup)
	}
}

func (m *Map[K, V]) updateNoRollback(onDup OnDup, sources []Source[K, V]) error {
	for _, src := range sources {
		for key, val := range src.items() {
			if err := m.putItem(key, val, onDup); err != nil {
				return err
			}
		}
	}
	return nil
}

// updateWithRollback applies items one at a time, logging each applied write. The
// first rejected item replays the log in reverse, restoring the exact pre-batch
// state before the error is returned. Items after the rejected one are never read.
func (m *Map[K, V]) updateWithRollback(onDup OnDup, sources []Source[K, V]) error {
	var log []appliedWrite[K, V]
	for _, src := range sources {
		for key, val := range src.items() {
			ded, err := m.dedupItem(key, val, onDup)
			if err != nil {
				for i := len(log) - 1; i >= 0; i-- {
					m.hooks.undoWrite(log[i].ded, log[i].rec)
				}
				return err
			}
			if ded == nil {
				continue
			}
			log = append(log, appliedWrite[K, V]{ded: *ded, rec: m.hooks.writeItem(key, val, *ded)})
		}
	}
	return nil
}
