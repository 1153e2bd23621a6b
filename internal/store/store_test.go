package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefine_FirstDefinitionWins(t *testing.T) {
	s := New()

	require.True(t, s.DefinePrimitive(1, "INT32", 6))
	assert.False(t, s.DefinePrimitive(1, "UINT8", 8))
	assert.False(t, s.DefineAlias(1, 2, 0, "shadow"))

	e, ok := s.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, KindPrimitive, e.Kind)
	assert.Equal(t, "INT32", e.DataSetID)
	assert.Equal(t, 6, e.Code)
}

func TestDefine_OutOfRange(t *testing.T) {
	s := New()

	assert.False(t, s.DefinePrimitive(0, "INT32", 6))
	assert.False(t, s.DefinePrimitive(-3, "INT32", 6))
	assert.False(t, s.DefinePrimitive(MaxID+1, "INT32", 6))

	_, ok := s.Lookup(0)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestDefine_SynthesizedCodes(t *testing.T) {
	s := New()

	require.True(t, s.DefineAlias(52, 1, 8, ""))
	e, ok := s.Lookup(52)
	require.True(t, ok)
	assert.Equal(t, KindAlias, e.Kind)
	assert.Equal(t, 1052, e.Code)
	assert.Equal(t, "1052", e.DataSetID)
	assert.Equal(t, 8, e.Count)
	assert.True(t, e.IsArray())

	require.True(t, s.DefineStruct(7, []ID{8, 9}))
	e, ok = s.Lookup(7)
	require.True(t, ok)
	assert.Equal(t, KindStruct, e.Kind)
	assert.Equal(t, "1007", e.DataSetID)
	assert.Equal(t, []ID{8, 9}, e.Fields)
	assert.False(t, e.IsArray())

	assert.Equal(t, ID(52), s.Max())
}

func TestPropagateName(t *testing.T) {
	s := New()
	require.True(t, s.DefineStruct(2, []ID{3}))
	require.True(t, s.DefineAlias(4, 2, 0, "MyStruct"))

	// Aliases never carry data-set names; only the struct target does.
	assert.False(t, s.PropagateName(4, "MyStruct", "Pkg"))

	require.True(t, s.PropagateName(2, "MyStruct", "Pkg"))
	e, _ := s.Lookup(2)
	assert.Equal(t, "Pkg_MyStruct", e.Name)

	// Conflicting proposal is rejected, first name wins.
	assert.False(t, s.PropagateName(2, "OtherName", ""))
	e, _ = s.Lookup(2)
	assert.Equal(t, "Pkg_MyStruct", e.Name)

	// Undefined target.
	assert.False(t, s.PropagateName(99, "Ghost", ""))
}

func TestPropagateName_TruncatesKeepingSuffix(t *testing.T) {
	s := New()
	require.True(t, s.DefineStruct(2, []ID{3}))

	prefix := strings.Repeat("N", 40)
	require.True(t, s.PropagateName(2, "Leaf", prefix))

	e, _ := s.Lookup(2)
	require.Len(t, e.Name, DataSetNameMax)
	assert.True(t, strings.HasSuffix(e.Name, "_Leaf"))
}
