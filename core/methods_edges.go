// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/GetEdge/Edges/EdgeCount,
//       plus the edge ID allocator.
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - allocEdgeID() is monotonic and independent of the node counter.

package core

import "sort"

// AddEdge creates a directed, labeled edge from tail to head, registers its
// ID in both endpoints' adjacency sets, and returns the new edge ID.
//
// Steps:
//  1. Validate label (ErrEmptyLabel) and both endpoints (ErrNodeNotFound).
//  2. Allocate the edge ID, strictly after validation, so a rejected call
//     leaves every map, set and counter untouched.
//  3. Store the Edge with a copy of props.
//  4. Link: tail.outgoing and head.incoming both gain the new ID.
//
// Self-loops (tail == head) are permitted: the ID then appears in both sets
// of the same node. Parallel edges are permitted and never deduplicated.
//
// Complexity: O(1) amortized (+ O(len(props)) for the property copy).
func (g *Graph) AddEdge(tail NodeID, label string, head NodeID, props Properties) (EdgeID, error) {
	// 1) Input validation; nothing below may run until both endpoints resolve.
	if label == "" {
		return 0, ErrEmptyLabel
	}
	tn, ok := g.nodes[tail]
	if !ok {
		return 0, ErrNodeNotFound
	}
	hn, ok := g.nodes[head]
	if !ok {
		return 0, ErrNodeNotFound
	}

	// 2) Reserve the ID.
	id := g.allocEdgeID()

	// 3) Store the record.
	g.edges[id] = &Edge{
		ID:         id,
		Tail:       tail,
		Head:       head,
		Label:      label,
		Properties: props.clone(),
	}

	// 4) Link both adjacency sets.
	tn.outgoing[id] = struct{}{}
	hn.incoming[id] = struct{}{}

	return id, nil
}

// HasEdge reports whether an edge with the given ID exists.
// Complexity: O(1)
func (g *Graph) HasEdge(id EdgeID) bool {
	_, ok := g.edges[id]

	return ok
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
//
// The returned *Edge is the live record and must be treated as read-only;
// use errors.Is(err, ErrEdgeNotFound) to detect the miss.
//
// Complexity: O(1)
func (g *Graph) GetEdge(id EdgeID) (*Edge, error) {
	e, ok := g.edges[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by Edge.ID asc (stable enumeration order).
// Complexity: O(E log E)
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the current number of edges.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// allocEdgeID reserves and returns the next edge identifier.
// Callers validate before allocating, so the sequence has no gaps.
func (g *Graph) allocEdgeID() EdgeID {
	g.nextEdgeID++

	return EdgeID(g.nextEdgeID)
}
