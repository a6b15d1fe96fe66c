// File: methods_adjacent.go
// Role: Neighborhood APIs: Neighbors, NeighborIDs, Degree.
// Determinism:
//   - Neighbors() sorts by Edge.ID asc.
//   - NeighborIDs() returns unique node IDs sorted asc.

package core

import "sort"

// Neighbors returns the edges incident to the given node under dir:
// DirectionOut for edges leaving it, DirectionIn for edges arriving at it,
// DirectionBoth for the union. A self-loop sits in both adjacency sets but
// appears once in the result.
//
// Returned pointers are live records, read-only by convention, sorted by
// Edge.ID asc. Pure read, no mutation.
//
// Errors:
//   - ErrBadDirection: dir is not one of the three Direction constants.
//   - ErrNodeNotFound: the node does not exist.
//
// Complexity: O(d log d), where d is the number of incident edges collected.
func (g *Graph) Neighbors(id NodeID, dir Direction) ([]*Edge, error) {
	if dir > DirectionBoth {
		return nil, ErrBadDirection
	}
	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	// Gather IDs into a set first: under DirectionBoth a self-loop would
	// otherwise surface twice.
	ids := make(map[EdgeID]struct{}, len(n.outgoing)+len(n.incoming))
	if dir == DirectionOut || dir == DirectionBoth {
		for eid := range n.outgoing {
			ids[eid] = struct{}{}
		}
	}
	if dir == DirectionIn || dir == DirectionBoth {
		for eid := range n.incoming {
			ids[eid] = struct{}{}
		}
	}

	out := make([]*Edge, 0, len(ids))
	for eid := range ids {
		out = append(out, g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the unique node IDs adjacent to id via dir, ascending.
// A self-loop makes the node its own neighbor.
//
// Errors: propagated from Neighbors.
// Complexity: O(d + k log k), where k is the number of unique neighbors.
func (g *Graph) NeighborIDs(id NodeID, dir Direction) ([]NodeID, error) {
	edges, err := g.Neighbors(id, dir)
	if err != nil {
		return nil, err
	}

	// For each incident edge take the endpoint on the far side; Neighbors
	// already filtered by direction, so both checks together cover out, in
	// and both without further branching.
	seen := make(map[NodeID]struct{}, len(edges))
	for _, e := range edges {
		if e.Tail == id {
			seen[e.Head] = struct{}{}
		}
		if e.Head == id {
			seen[e.Tail] = struct{}{}
		}
	}

	ids := make([]NodeID, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}

// Degree returns the sizes of the node's adjacency sets. A self-loop
// contributes one to each count.
//
// Errors:
//   - ErrNodeNotFound: the node does not exist.
//
// Complexity: O(1)
func (g *Graph) Degree(id NodeID) (in, out int, err error) {
	n, ok := g.nodes[id]
	if !ok {
		return 0, 0, ErrNodeNotFound
	}

	return len(n.incoming), len(n.outgoing), nil
}
