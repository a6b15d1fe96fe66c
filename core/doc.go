// Package core provides an in-memory property graph: nodes and directed,
// labeled edges, each carrying an arbitrary key/value property map.
//
// The Graph is the sole owner and mutator of its nodes and edges. It
// allocates monotonic integer identifiers (independent counters for nodes
// and edges, starting at 1, never reused) and keeps both adjacency sets of
// every node consistent with the edge catalog at all times: for every edge e,
// e.ID is a member of nodes[e.Tail].outgoing and of nodes[e.Head].incoming.
//
// There is no deletion: nodes and edges live as long as the Graph. There is
// no internal synchronization: a Graph is not safe for concurrent use, and
// callers sharing one across goroutines must serialize access themselves.
//
// Mutations either fully apply or fully reject: a failed AddEdge leaves the
// node map, the edge map, every adjacency set and both ID counters exactly
// as they were.
//
// Configuration Options (GraphOption):
//
//	– WithNodeCapacity(n)
//	    Pre-sizes node storage for an expected node count.
//
//	– WithEdgeCapacity(n)
//	    Pre-sizes edge storage for an expected edge count.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(props Properties) NodeID               // O(1), never fails
//	HasNode(id NodeID) bool                        // O(1)
//	GetNode(id NodeID) (*Node, error)              // O(1)
//
//	// Edge lifecycle
//	AddEdge(tail NodeID, label string, head NodeID, props Properties) (EdgeID, error) // O(1)
//	HasEdge(id EdgeID) bool                        // O(1)
//	GetEdge(id EdgeID) (*Edge, error)              // O(1)
//
//	// Enumeration & counts (deterministic: ascending by ID)
//	Nodes() []*Node                                // O(V log V)
//	Edges() []*Edge                                // O(E log E)
//	NodeCount() int                                // O(1)
//	EdgeCount() int                                // O(1)
//
//	// Adjacency
//	Neighbors(id NodeID, dir Direction) ([]*Edge, error)    // O(d log d)
//	NeighborIDs(id NodeID, dir Direction) ([]NodeID, error) // O(d + k log k)
//	Degree(id NodeID) (in, out int, err error)              // O(1)
//
//	// Property & label lookups
//	FindNodes(want Properties) []*Node                            // O(V)
//	FindNode(want Properties) (*Node, bool)                       // O(V)
//	OutgoingWithLabel(id NodeID, label string) ([]*Edge, error)   // O(deg)
//	IncomingWithLabel(id NodeID, label string) ([]*Edge, error)   // O(deg)
//	FollowLabel(id NodeID, label string) (*Node, error)           // chain walk
//
//	// Cloning
//	Clone() *Graph                                 // O(V+E) deep copy
//
// Errors (strict sentinels, compare with errors.Is):
//
//	ErrNodeNotFound  – referenced node does not exist
//	ErrEdgeNotFound  – referenced edge does not exist
//	ErrEmptyLabel    – edge label is empty
//	ErrBadDirection  – unknown Direction value
//	ErrLabelNotFound – label walk started where no such edge leaves
package core
