// SPDX-License-Identifier: MIT
// Package: propgraph/scenario
//
// api.go - declarative dataset types and the Build replay.
//
// Contract:
//   - Keys are the Dataset-local names of nodes; EdgeSpecs refer to nodes
//     only by key, never by core ID.
//   - Build validates everything first and replays second, so a rejected
//     Dataset leaves no graph behind at all.
//   - Replay follows declaration order, which pins the IDs the core graph
//     assigns: nodes get 1..len(Nodes), edges get 1..len(Edges).

package scenario

import (
	"fmt"

	"github.com/katalvlaran/propgraph/core"
)

// methodBuild tags Build's wrapped error messages.
const methodBuild = "Build"

// NodeSpec declares one node: a Dataset-unique key and its properties.
type NodeSpec struct {
	Key        string                 `yaml:"key"`
	Properties map[string]interface{} `yaml:"properties,omitempty"`
}

// EdgeSpec declares one directed edge between two node keys.
type EdgeSpec struct {
	Tail       string                 `yaml:"tail"`
	Label      string                 `yaml:"label"`
	Head       string                 `yaml:"head"`
	Properties map[string]interface{} `yaml:"properties,omitempty"`
}

// Dataset is a replayable description of a property graph.
type Dataset struct {
	Name  string     `yaml:"name,omitempty"`
	Nodes []NodeSpec `yaml:"nodes"`
	Edges []EdgeSpec `yaml:"edges"`
}

// Result is the outcome of a successful Build.
type Result struct {
	// Graph is the freshly built graph; the caller owns it exclusively.
	Graph *core.Graph

	// NodeIDs maps every Dataset key to the core ID the replay assigned.
	NodeIDs map[string]core.NodeID

	// EdgeIDs lists the created edge IDs in Dataset declaration order.
	EdgeIDs []core.EdgeID
}

// Build validates ds and replays it into a new graph.
//
// Steps:
//  1. Validate every NodeSpec: non-empty key (ErrEmptyNodeKey), no repeats
//     (ErrDuplicateNodeKey).
//  2. Validate every EdgeSpec: non-empty label (ErrEmptyEdgeLabel), both
//     endpoint keys declared (ErrUnknownNodeKey).
//  3. Replay nodes, then edges, in declaration order.
//
// opts are forwarded to core.NewGraph after capacity hints sized to ds, so
// callers may still override any graph option.
//
// Complexity: O(n + e) time and space for n nodes and e edges.
func Build(ds Dataset, opts ...core.GraphOption) (*Result, error) {
	// 1) Node validation: keys present and unique.
	keys := make(map[string]struct{}, len(ds.Nodes))
	for i, ns := range ds.Nodes {
		if ns.Key == "" {
			return nil, fmt.Errorf("%s: nodes[%d]: %w", methodBuild, i, ErrEmptyNodeKey)
		}
		if _, dup := keys[ns.Key]; dup {
			return nil, fmt.Errorf("%s: nodes[%d] %q: %w", methodBuild, i, ns.Key, ErrDuplicateNodeKey)
		}
		keys[ns.Key] = struct{}{}
	}

	// 2) Edge validation: labels present, endpoints declared.
	for i, es := range ds.Edges {
		if es.Label == "" {
			return nil, fmt.Errorf("%s: edges[%d]: %w", methodBuild, i, ErrEmptyEdgeLabel)
		}
		if _, ok := keys[es.Tail]; !ok {
			return nil, fmt.Errorf("%s: edges[%d] tail %q: %w", methodBuild, i, es.Tail, ErrUnknownNodeKey)
		}
		if _, ok := keys[es.Head]; !ok {
			return nil, fmt.Errorf("%s: edges[%d] head %q: %w", methodBuild, i, es.Head, ErrUnknownNodeKey)
		}
	}

	// 3) Replay into a fresh graph sized for the Dataset.
	opts = append([]core.GraphOption{
		core.WithNodeCapacity(len(ds.Nodes)),
		core.WithEdgeCapacity(len(ds.Edges)),
	}, opts...)
	g := core.NewGraph(opts...)

	res := &Result{
		Graph:   g,
		NodeIDs: make(map[string]core.NodeID, len(ds.Nodes)),
		EdgeIDs: make([]core.EdgeID, 0, len(ds.Edges)),
	}
	for _, ns := range ds.Nodes {
		res.NodeIDs[ns.Key] = g.AddNode(ns.Properties)
	}
	for i, es := range ds.Edges {
		id, err := g.AddEdge(res.NodeIDs[es.Tail], es.Label, res.NodeIDs[es.Head], es.Properties)
		if err != nil {
			// Unreachable after step 2, but never swallow a core error.
			return nil, fmt.Errorf("%s: edges[%d] %s -[%s]-> %s: %w",
				methodBuild, i, es.Tail, es.Label, es.Head, err)
		}
		res.EdgeIDs = append(res.EdgeIDs, id)
	}
	return res, nil
}
