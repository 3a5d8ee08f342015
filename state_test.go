package bidimap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_JSONRoundTrip(t *testing.T) {
	orig, err := New(Pairs(Item(1, "one"), Item(2, "two")))
	require.NoError(t, err)

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var restored Map[int, string]
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.True(t, restored.Equal(orig))
	checkBijection(t, &restored)

	// the inverse wiring is re-derived on this side, not carried in the payload
	assert.Equal(t, 1, restored.Inverse().Value("one"))
	assert.Same(t, &restored, restored.Inverse().Inverse())
}

func TestMap_MarshalJSON_Empty(t *testing.T) {
	m, err := New[int, string]()
	require.NoError(t, err)
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestMap_UnmarshalJSON_RejectsDuplicates(t *testing.T) {
	var m Map[int, string]

	err := json.Unmarshal([]byte(`[{"key":1,"value":"a"},{"key":1,"value":"b"}]`), &m)
	require.Error(t, err)
	assert.ErrorIs(t, err, &KeyDuplicationError{})

	err = json.Unmarshal([]byte(`[{"key":1,"value":"a"},{"key":2,"value":"a"}]`), &m)
	require.Error(t, err)
	assert.ErrorIs(t, err, &ValueDuplicationError{})
}

func TestMap_UnmarshalJSON_ReplacesContents(t *testing.T) {
	m, err := New(Pairs(Item(9, "nine")))
	require.NoError(t, err)
	inv := m.Inverse()

	require.NoError(t, json.Unmarshal([]byte(`[{"key":1,"value":"one"}]`), m))
	assert.True(t, m.EqualMap(map[int]string{1: "one"}))

	// the existing inverse view observes the imported state through the shared stores
	assert.Equal(t, 1, inv.Value("one"))
	assert.False(t, inv.HasKey("nine"))
	checkBijection(t, m)
}
