package model_test

import (
	"stay/shared/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDs_Unique(t *testing.T) {
	ids := model.IDs{"a", "b", "a", "c", "b"}

	assert.Equal(t, model.IDs{"a", "b", "c"}, ids.Unique())
	assert.Equal(t, model.IDs{}, model.IDs(nil).Unique())
}

func TestIDs_With(t *testing.T) {
	ids := model.IDs{"a"}

	added, changed := ids.With("b")
	assert.True(t, changed)
	assert.Equal(t, model.IDs{"a", "b"}, added)
	assert.Equal(t, model.IDs{"a"}, ids, "receiver must not be modified")

	same, changed := added.With("b")
	assert.False(t, changed)
	assert.Equal(t, model.IDs{"a", "b"}, same)
}

func TestIDs_Without(t *testing.T) {
	ids := model.IDs{"a", "b", "c"}

	removed, changed := ids.Without("b")
	assert.True(t, changed)
	assert.Equal(t, model.IDs{"a", "c"}, removed)
	assert.Equal(t, model.IDs{"a", "b", "c"}, ids, "receiver must not be modified")

	same, changed := removed.Without("x")
	assert.False(t, changed)
	assert.Equal(t, model.IDs{"a", "c"}, same)
}

func TestIDs_ValueAndScan(t *testing.T) {
	value, err := model.IDs{"a", "b"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"a","b"}`, value)

	empty, err := model.IDs(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, `{}`, empty)

	var ids model.IDs
	require.NoError(t, ids.Scan([]byte(`{"x","y"}`)))
	assert.Equal(t, model.IDs{"x", "y"}, ids)
}
