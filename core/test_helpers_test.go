// SPDX-License-Identifier: MIT
// File: test_helpers_test.go
// Role: Shared fixtures and helpers for core tests.

package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/propgraph/core"
)

// Relationship labels shared across core tests.
const (
	labelBornIn  = "BORN_IN"
	labelLivesIn = "LIVES_IN"
	labelWithin  = "WITHIN"
	labelKnows   = "KNOWS"
)

// mustAddEdge adds an edge and aborts the test on error.
func mustAddEdge(t *testing.T, g *core.Graph, tail core.NodeID, label string, head core.NodeID) core.EdgeID {
	t.Helper()
	id, err := g.AddEdge(tail, label, head, nil)
	require.NoError(t, err)

	return id
}

// buildWithinChain returns a graph holding a WITHIN chain of n places
// (place-0 WITHIN place-1 WITHIN ... place-(n-1)) and the node IDs in chain
// order.
func buildWithinChain(t *testing.T, n int) (*core.Graph, []core.NodeID) {
	t.Helper()
	g := core.NewGraph(core.WithNodeCapacity(n), core.WithEdgeCapacity(n-1))
	ids := make([]core.NodeID, n)
	for i := 0; i < n; i++ {
		ids[i] = g.AddNode(core.Properties{"name": fmt.Sprintf("place-%d", i)})
	}
	for i := 0; i+1 < n; i++ {
		mustAddEdge(t, g, ids[i], labelWithin, ids[i+1])
	}

	return g, ids
}

// lucyFixture is the three-node scenario exercised by several tests:
// lucy BORN_IN idaho, lucy LIVES_IN london.
type lucyFixture struct {
	g                   *core.Graph
	idaho, lucy, london core.NodeID
	bornIn, livesIn     core.EdgeID
}

func newLucyFixture(t *testing.T) lucyFixture {
	t.Helper()
	g := core.NewGraph()
	f := lucyFixture{g: g}
	f.idaho = g.AddNode(core.Properties{"type": "State", "name": "Idaho"})
	f.lucy = g.AddNode(core.Properties{"type": "Person", "name": "Lucy"})
	f.london = g.AddNode(core.Properties{"type": "City", "name": "London"})
	f.bornIn = mustAddEdge(t, g, f.lucy, labelBornIn, f.idaho)
	f.livesIn = mustAddEdge(t, g, f.lucy, labelLivesIn, f.london)

	return f
}
