// File: methods_clone.go
// Role: Deep-copying a Graph.
// Determinism:
//   - Clone carries both ID counters, so identifiers keep their meaning on
//     the copy and future allocation on either graph never collides.

package core

// Clone returns a deep copy of the Graph: nodes, edges, adjacency sets and
// both ID counters. The copy shares nothing mutable with the source, so
// changes to one are invisible to the other. Property maps are copied one
// level deep, matching the insertion contract.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := NewGraph(WithNodeCapacity(len(g.nodes)), WithEdgeCapacity(len(g.edges)))
	clone.nextNodeID = g.nextNodeID
	clone.nextEdgeID = g.nextEdgeID

	for id, n := range g.nodes {
		cn := &Node{
			ID:         n.ID,
			Properties: n.Properties.clone(),
			outgoing:   make(map[EdgeID]struct{}, len(n.outgoing)),
			incoming:   make(map[EdgeID]struct{}, len(n.incoming)),
		}
		for eid := range n.outgoing {
			cn.outgoing[eid] = struct{}{}
		}
		for eid := range n.incoming {
			cn.incoming[eid] = struct{}{}
		}
		clone.nodes[id] = cn
	}

	for id, e := range g.edges {
		clone.edges[id] = &Edge{
			ID:         e.ID,
			Tail:       e.Tail,
			Head:       e.Head,
			Label:      e.Label,
			Properties: e.Properties.clone(),
		}
	}

	return clone
}
