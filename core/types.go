// File: types.go
// Role: Identifiers, Node, Edge, Graph, GraphOption, Direction,
//       sentinel errors, and the NewGraph constructor.

package core

import (
	"errors"
	"sort"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEmptyLabel indicates an edge operation received an empty label.
	ErrEmptyLabel = errors.New("core: edge label is empty")

	// ErrBadDirection indicates an adjacency query received an unknown Direction.
	ErrBadDirection = errors.New("core: unknown direction")

	// ErrLabelNotFound indicates a label walk started at a node that has no
	// outgoing edge carrying the requested label.
	ErrLabelNotFound = errors.New("core: no outgoing edge with label")
)

// NodeID uniquely identifies a Node within its Graph.
//
// IDs are allocated monotonically starting at 1 and are never reused;
// the zero value never names a live node.
type NodeID uint64

// EdgeID uniquely identifies an Edge within its Graph.
//
// Edge IDs come from a counter independent of node IDs, also starting at 1;
// the zero value never names a live edge.
type EdgeID uint64

// Properties holds arbitrary key/value data attached to a Node or an Edge.
//
// The Graph copies the map on insertion (one level deep), so callers may
// reuse or mutate their argument afterwards. Maps reachable through returned
// records are read-only by convention.
type Properties map[string]interface{}

// clone returns a one-level copy of p. A nil receiver yields an empty,
// non-nil map, so stored records never carry nil property maps.
func (p Properties) clone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}

	return out
}

// Direction selects which adjacency set an adjacency query consults.
type Direction uint8

const (
	// DirectionOut selects edges whose tail is the queried node.
	DirectionOut Direction = iota

	// DirectionIn selects edges whose head is the queried node.
	DirectionIn

	// DirectionBoth selects both incident sets.
	DirectionBoth
)

// String returns "out", "in" or "both" ("invalid" for unknown values).
func (d Direction) String() string {
	switch d {
	case DirectionOut:
		return "out"
	case DirectionIn:
		return "in"
	case DirectionBoth:
		return "both"
	default:
		return "invalid"
	}
}

// Node represents a vertex in the property graph.
//
// A Node is created only by Graph.AddNode and never deleted. Its adjacency
// sets grow as edges referencing it are added; they are exposed through
// Outgoing and Incoming as sorted copies.
type Node struct {
	// ID is the unique identifier for this Node.
	ID NodeID

	// Properties stores arbitrary user data, copied in at creation.
	Properties Properties

	outgoing map[EdgeID]struct{} // edge IDs where this node is the tail
	incoming map[EdgeID]struct{} // edge IDs where this node is the head
}

// Outgoing returns the IDs of edges leaving this node, ascending.
// The slice is freshly allocated on every call.
func (n *Node) Outgoing() []EdgeID {
	return sortedEdgeIDs(n.outgoing)
}

// Incoming returns the IDs of edges arriving at this node, ascending.
// The slice is freshly allocated on every call.
func (n *Node) Incoming() []EdgeID {
	return sortedEdgeIDs(n.incoming)
}

// sortedEdgeIDs copies a set of edge IDs into an ascending slice.
func sortedEdgeIDs(set map[EdgeID]struct{}) []EdgeID {
	ids := make([]EdgeID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Edge represents a directed, labeled connection between two nodes.
//
// An Edge is created only by Graph.AddEdge and never deleted. Endpoints are
// stored by identifier; resolve them with Graph.GetNode when needed.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID EdgeID

	// Tail is the node ID where the edge originates.
	Tail NodeID

	// Head is the node ID where the edge terminates.
	Head NodeID

	// Label names the kind of relationship, e.g. "BORN_IN". Never empty.
	Label string

	// Properties stores arbitrary user data, copied in at creation.
	Properties Properties
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithNodeCapacity pre-sizes node storage for an expected node count.
func WithNodeCapacity(n int) GraphOption {
	return func(g *Graph) { g.nodeCap = n }
}

// WithEdgeCapacity pre-sizes edge storage for an expected edge count.
func WithEdgeCapacity(n int) GraphOption {
	return func(g *Graph) { g.edgeCap = n }
}

// Graph is the in-memory property graph: the sole owner and mutator of all
// nodes and edges, and the single source of truth for identifier allocation
// and adjacency consistency.
//
// A Graph performs no internal locking and is not safe for concurrent use;
// callers sharing one across goroutines must add external synchronization.
// There is no deletion: nodes and edges live as long as the Graph itself.
type Graph struct {
	// ID counters; the value after increment is the allocated ID, so the
	// first node and the first edge are both ID 1. Reset only by NewGraph.
	nextNodeID uint64
	nextEdgeID uint64

	nodes map[NodeID]*Node // node ID → Node
	edges map[EdgeID]*Edge // edge ID → Edge

	nodeCap int // construction hint, see WithNodeCapacity
	edgeCap int // construction hint, see WithEdgeCapacity
}

// NewGraph creates an empty Graph. Both ID counters start fresh; constructing
// a new Graph is the only way to reset them.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	// Apply options first so capacity hints reach the map allocations.
	for _, opt := range opts {
		opt(g)
	}
	g.nodes = make(map[NodeID]*Node, g.nodeCap)
	g.edges = make(map[EdgeID]*Edge, g.edgeCap)

	return g
}
