// File: methods_find.go
// Role: Property and label lookups: FindNode/FindNodes,
//       OutgoingWithLabel/IncomingWithLabel, FollowLabel.
// Determinism:
//   - FindNodes() sorts by Node.ID asc; FindNode() is the lowest-ID match.
//   - Label walks always follow the lowest-ID matching edge.

package core

import (
	"reflect"
	"sort"
)

// FindNodes returns the nodes whose property map contains every key of want
// with an equal value, sorted by Node.ID asc. Matching is one level deep;
// structured values compare via reflect.DeepEqual. An empty or nil want
// matches nothing.
//
// Complexity: O(V·len(want) + m log m), where m is the number of matches.
func (g *Graph) FindNodes(want Properties) []*Node {
	if len(want) == 0 {
		return nil
	}

	var out []*Node
	for _, n := range g.nodes {
		if matchesAll(n.Properties, want) {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// FindNode returns the lowest-ID node matching want, and whether one exists.
func (g *Graph) FindNode(want Properties) (*Node, bool) {
	matches := g.FindNodes(want)
	if len(matches) == 0 {
		return nil, false
	}

	return matches[0], true
}

// matchesAll reports whether have contains every key of want with an equal
// value. One level deep, no recursive map semantics beyond DeepEqual.
func matchesAll(have, want Properties) bool {
	for k, v := range want {
		got, ok := have[k]
		if !ok || !reflect.DeepEqual(got, v) {
			return false
		}
	}

	return true
}

// OutgoingWithLabel returns the node's outgoing edges carrying exactly the
// given label, sorted by Edge.ID asc.
//
// Errors:
//   - ErrEmptyLabel: label is "".
//   - ErrNodeNotFound: the node does not exist.
//
// Complexity: O(out-degree + m log m)
func (g *Graph) OutgoingWithLabel(id NodeID, label string) ([]*Edge, error) {
	if label == "" {
		return nil, ErrEmptyLabel
	}
	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return g.edgesWithLabel(n.outgoing, label), nil
}

// IncomingWithLabel returns the node's incoming edges carrying exactly the
// given label, sorted by Edge.ID asc. Errors as in OutgoingWithLabel.
//
// Complexity: O(in-degree + m log m)
func (g *Graph) IncomingWithLabel(id NodeID, label string) ([]*Edge, error) {
	if label == "" {
		return nil, ErrEmptyLabel
	}
	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return g.edgesWithLabel(n.incoming, label), nil
}

// edgesWithLabel filters an adjacency set by label, sorted by Edge.ID asc.
func (g *Graph) edgesWithLabel(set map[EdgeID]struct{}, label string) []*Edge {
	var out []*Edge
	for eid := range set {
		if e := g.edges[eid]; e.Label == label {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// FollowLabel walks the chain of outgoing edges carrying label, starting at
// the given node, and returns the last node reached that has no such edge.
// At each step the lowest-ID matching edge is followed, so the walk is
// deterministic even when several edges share the label. A step that would
// revisit a node ends the walk instead, so label cycles terminate.
//
// Errors:
//   - ErrEmptyLabel: label is "".
//   - ErrNodeNotFound: the start node does not exist.
//   - ErrLabelNotFound: the start node has no outgoing edge with label.
//
// Complexity: O(chain length × max out-degree)
func (g *Graph) FollowLabel(id NodeID, label string) (*Node, error) {
	if label == "" {
		return nil, ErrEmptyLabel
	}
	curr, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	// The first step is mandatory: a start node without the label is a miss,
	// not a zero-length walk.
	e, ok := g.lowestWithLabel(curr, label)
	if !ok {
		return nil, ErrLabelNotFound
	}

	seen := map[NodeID]struct{}{curr.ID: {}}
	for {
		next := g.nodes[e.Head]
		if _, dup := seen[next.ID]; dup {
			return curr, nil
		}
		curr = next
		seen[curr.ID] = struct{}{}

		if e, ok = g.lowestWithLabel(curr, label); !ok {
			return curr, nil
		}
	}
}

// lowestWithLabel returns the lowest-ID outgoing edge of n carrying label.
func (g *Graph) lowestWithLabel(n *Node, label string) (*Edge, bool) {
	var best *Edge
	for eid := range n.outgoing {
		e := g.edges[eid]
		if e.Label != label {
			continue
		}
		if best == nil || e.ID < best.ID {
			best = e
		}
	}

	return best, best != nil
}
