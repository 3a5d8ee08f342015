package bidimap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_PutWith_DecisionTable(t *testing.T) {
	base := map[int]string{1: "one", 2: "two"}
	tests := []struct {
		name    string
		key     int
		val     string
		onDup   OnDup
		wantErr error
		want    map[int]string
	}{
		{"no duplication", 3, "three", OnDupFail, nil, map[int]string{1: "one", 2: "two", 3: "three"}},
		{"exact item is a no-op even under Fail", 1, "one", OnDupFail, nil, base},
		{"key dup fail", 1, "uno", OnDupFail, &KeyDuplicationError{}, base},
		{"key dup keep", 1, "uno", OnDup{Key: Keep}, nil, base},
		{"key dup overwrite", 1, "uno", OnDup{Key: Overwrite}, nil, map[int]string{1: "uno", 2: "two"}},
		{"value dup fail", 3, "one", OnDupFail, &ValueDuplicationError{}, base},
		{"value dup keep", 3, "one", OnDup{Val: Keep}, nil, base},
		{"value dup overwrite", 3, "one", OnDup{Val: Overwrite}, nil, map[int]string{2: "two", 3: "one"}},
		{"both dup fail", 1, "two", OnDupFail, &KeyAndValueDuplicationError{}, base},
		{"both dup keep", 1, "two", OnDup{KV: Keep}, nil, base},
		{"both dup overwrite", 1, "two", OnDupOverwrite, nil, map[int]string{1: "two"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := New(Entries(base))
			require.NoError(t, err)
			err = m.PutWith(tc.key, tc.val, tc.onDup)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, m.EqualMap(tc.want), "have %v", m)
			checkBijection(t, m)
		})
	}
}

func TestMap_Put_DefaultPolicy(t *testing.T) {
	m, err := New(Pairs(Item(1, "one"), Item(2, "two")))
	require.NoError(t, err)

	// a duplicate key overwrites, like plain map assignment
	require.NoError(t, m.Put(1, "uno"))
	assert.Equal(t, "uno", m.Value(1))
	assert.False(t, m.HasValue("one"))

	// a duplicate value fails rather than silently rebinding it
	err = m.Put(3, "two")
	assert.ErrorIs(t, err, &ValueDuplicationError{})
	assert.False(t, m.HasKey(3))
	checkBijection(t, m)
}

func TestMap_PutWith_NoopKeepsState(t *testing.T) {
	keepAll := OnDup{Key: Keep, Val: Keep, KV: Keep}
	m, err := New(Pairs(Item(1, "a")))
	require.NoError(t, err)

	require.NoError(t, m.PutWith(1, "a", keepAll))
	assert.True(t, m.EqualMap(map[int]string{1: "a"}))

	// dropped items leave no trace either
	require.NoError(t, m.PutWith(1, "z", keepAll))
	require.NoError(t, m.PutWith(9, "a", keepAll))
	assert.True(t, m.EqualMap(map[int]string{1: "a"}))
	checkBijection(t, m)
}

func TestMap_ForcePut_DisplacesBoth(t *testing.T) {
	m, err := New(Pairs(Item(1, "a"), Item(2, "b")))
	require.NoError(t, err)
	// key 1 and value "b" each collide with a different item; both are displaced
	m.ForcePut(1, "b")
	assert.True(t, m.EqualMap(map[int]string{1: "b"}))
	assert.Equal(t, 1, m.Len())
	checkBijection(t, m)
}

func TestMap_PutAllWith_RollbackAtomicity(t *testing.T) {
	m, err := New(Pairs(Item(1, "a"), Item(2, "b")))
	require.NoError(t, err)
	before := m.Copy()

	err = m.PutAllWith(OnDupFail, Pairs(Item(3, "c"), Item(1, "z")))
	require.Error(t, err)
	var dup *KeyDuplicationError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, 1, dup.Key)

	assert.True(t, m.Equal(before), "rollback left %v", m)
	assert.False(t, m.HasKey(3))
	checkBijection(t, m)
}

func TestMap_PutAllWith_RollbackRestoresDisplaced(t *testing.T) {
	m, err := New(Pairs(Item(1, "a"), Item(2, "b"), Item(3, "c")))
	require.NoError(t, err)
	before := m.Copy()

	// the first item overwrites by key, the second displaces two items at once,
	// then the third hits the Fail slot and the whole batch must unwind
	err = m.PutAllWith(
		OnDup{Key: Overwrite, Val: Fail, KV: Overwrite},
		Pairs(Item(1, "x"), Item(2, "c"), Item(4, "x")),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, &ValueDuplicationError{})

	assert.True(t, m.Equal(before), "rollback left %v", m)
	checkBijection(t, m)
}

func TestMap_PutAll_MultipleSources(t *testing.T) {
	m, err := New[int, string]()
	require.NoError(t, err)
	err = m.PutAll(
		Pairs(Item(1, "one")),
		Entries(map[int]string{2: "two"}),
	)
	require.NoError(t, err)
	assert.True(t, m.EqualMap(map[int]string{1: "one", 2: "two"}))
	checkBijection(t, m)
}

func TestMap_PutAllWith_OneShotSource(t *testing.T) {
	pairs := []Pair[int, string]{Item(1, "a"), Item(2, "b")}
	next := 0
	// a source that cannot be replayed; the driver must finish in one pass
	oneShot := Seq2(func(yield func(int, string) bool) {
		for ; next < len(pairs); next++ {
			if !yield(pairs[next].Key, pairs[next].Val) {
				return
			}
		}
	})
	var m Map[int, string]
	require.NoError(t, m.PutAllWith(OnDupFail, oneShot))
	assert.True(t, m.EqualMap(map[int]string{1: "a", 2: "b"}))
	assert.Equal(t, len(pairs), next)
}

func TestNew_FromMapFastPathEquivalence(t *testing.T) {
	other, err := New(Pairs(Item(1, "a"), Item(2, "b"), Item(3, "c")))
	require.NoError(t, err)

	// a single Map source into an empty Map skips dedup checking entirely
	fast, err := New[int, string](other)
	require.NoError(t, err)

	checked, err := NewWith(OnDupFail, Seq2(other.All()))
	require.NoError(t, err)

	assert.True(t, fast.Equal(other))
	assert.True(t, fast.Equal(checked))
	checkBijection(t, fast)

	// the fast copy is still independent of its source
	require.NoError(t, fast.Put(4, "d"))
	assert.False(t, other.HasKey(4))
}

func TestMap_CorruptedStoresPanic(t *testing.T) {
	m, err := New(Pairs(Item(1, "a")))
	require.NoError(t, err)
	// wound the inverse store behind the engine's back
	m.inv["a"] = 2
	assert.Panics(t, func() {
		_ = m.PutWith(1, "a", OnDupFail)
	})
}
