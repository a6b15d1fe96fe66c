// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/HasNode/GetNode/Nodes/NodeCount,
//       plus the node ID allocator.
// Determinism:
//   - Nodes() returns nodes sorted by Node.ID asc.
//   - allocNodeID() is monotonic: 1, 2, 3, ...

package core

import "sort"

// AddNode allocates the next node ID, stores a Node with a copy of props and
// empty adjacency sets, and returns the new ID.
//
// There are no error conditions: any property map (including nil) is valid.
// The returned ID is never zero and never reused.
//
// Complexity: O(1) amortized (+ O(len(props)) for the property copy).
func (g *Graph) AddNode(props Properties) NodeID {
	id := g.allocNodeID()
	g.nodes[id] = &Node{
		ID:         id,
		Properties: props.clone(),
		outgoing:   make(map[EdgeID]struct{}),
		incoming:   make(map[EdgeID]struct{}),
	}

	return id
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1)
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.nodes[id]

	return ok
}

// GetNode returns the Node with the given ID, or ErrNodeNotFound.
//
// The returned *Node is the live record and must be treated as read-only;
// use errors.Is(err, ErrNodeNotFound) to detect the miss.
//
// Complexity: O(1)
func (g *Graph) GetNode(id NodeID) (*Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return n, nil
}

// Nodes returns all nodes sorted by Node.ID asc (stable enumeration order).
// Complexity: O(V log V)
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NodeCount returns the current number of nodes.
// Complexity: O(1)
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// allocNodeID reserves and returns the next node identifier.
// The counter only ever moves forward; a failed operation never burns an ID
// because callers validate before allocating.
func (g *Graph) allocNodeID() NodeID {
	g.nextNodeID++

	return NodeID(g.nextNodeID)
}
