// SPDX-License-Identifier: MIT
// File: types_test.go
// Role: Contract tests for construction, identifiers, Direction, and the
//       adjacency accessor copy semantics.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/propgraph/core"
)

func TestNewGraph_StartsEmpty(t *testing.T) {
	g := core.NewGraph()

	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Nodes())
	assert.Empty(t, g.Edges())
}

func TestNewGraph_CapacityHints(t *testing.T) {
	// Hints only pre-size storage; behavior is identical with or without them.
	g := core.NewGraph(core.WithNodeCapacity(64), core.WithEdgeCapacity(128))

	assert.Equal(t, 0, g.NodeCount())
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	mustAddEdge(t, g, a, labelKnows, b)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestZeroIdentifiers_NeverLive(t *testing.T) {
	g := core.NewGraph()

	assert.Equal(t, core.NodeID(1), g.AddNode(nil), "first node is 1, zero stays dead")
	assert.False(t, g.HasNode(0))

	eid := mustAddEdge(t, g, 1, labelKnows, 1)
	assert.Equal(t, core.EdgeID(1), eid, "first edge is 1, zero stays dead")
	assert.False(t, g.HasEdge(0))
}

func TestDirection_String(t *testing.T) {
	cases := []struct {
		dir  core.Direction
		want string
	}{
		{core.DirectionOut, "out"},
		{core.DirectionIn, "in"},
		{core.DirectionBoth, "both"},
		{core.Direction(9), "invalid"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.dir.String())
	}
}

func TestNode_AdjacencyAccessors_FreshCopies(t *testing.T) {
	f := newLucyFixture(t)

	lucy, err := f.g.GetNode(f.lucy)
	require.NoError(t, err)

	out := lucy.Outgoing()
	require.Len(t, out, 2)
	out[0] = core.EdgeID(777) // scribbling on the copy must be harmless

	again := lucy.Outgoing()
	assert.Equal(t, []core.EdgeID{f.bornIn, f.livesIn}, again)
}
