package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/plox/value"
)

func TestDefineAndGet(t *testing.T) {
	g := NewGlobal()
	g.Define("x", value.Number(1))

	v, ok := g.Get("x")
	require.True(t, ok)
	assert.Equal(t, value.Number(1), v)
}

func TestGetMissingReportsNotFound(t *testing.T) {
	g := NewGlobal()
	_, ok := g.Get("missing")
	assert.False(t, ok)
}

func TestChildSeesParentBinding(t *testing.T) {
	g := NewGlobal()
	g.Define("x", value.Number(1))
	child := NewEnclosed(g)

	v, ok := child.Get("x")
	require.True(t, ok)
	assert.Equal(t, value.Number(1), v)
}

func TestChildShadowsParentBinding(t *testing.T) {
	g := NewGlobal()
	g.Define("x", value.Number(1))
	child := NewEnclosed(g)
	child.Define("x", value.Number(2))

	v, _ := child.Get("x")
	assert.Equal(t, value.Number(2), v)

	pv, _ := g.Get("x")
	assert.Equal(t, value.Number(1), pv)
}

func TestAssignUpdatesDefiningFrame(t *testing.T) {
	g := NewGlobal()
	g.Define("x", value.Number(1))
	child := NewEnclosed(g)

	ok := child.Assign("x", value.Number(9))
	require.True(t, ok)

	pv, _ := g.Get("x")
	assert.Equal(t, value.Number(9), pv)
}

func TestAssignUndefinedFails(t *testing.T) {
	g := NewGlobal()
	ok := g.Assign("nope", value.Number(1))
	assert.False(t, ok)
}

func TestGetAtAndAssignAt(t *testing.T) {
	g := NewGlobal()
	g.Define("x", value.Number(1))
	block1 := NewEnclosed(g)
	block2 := NewEnclosed(block1)

	v, ok := block2.GetAt(2, "x")
	require.True(t, ok)
	assert.Equal(t, value.Number(1), v)

	block2.AssignAt(2, "x", value.Number(42))
	v2, _ := g.Get("x")
	assert.Equal(t, value.Number(42), v2)
}

func TestAncestorZeroIsSelf(t *testing.T) {
	g := NewGlobal()
	assert.Same(t, g, g.Ancestor(0))
}

func TestRedefineInSameFrameOverwrites(t *testing.T) {
	g := NewGlobal()
	g.Define("x", value.Number(1))
	g.Define("x", value.Number(2))

	v, _ := g.Get("x")
	assert.Equal(t, value.Number(2), v)
}
