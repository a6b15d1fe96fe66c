// SPDX-License-Identifier: MIT
// Package: propgraph/scenario
//
// impl_lucy.go - the canonical people-and-places preset.
//
// Lucy was born in Idaho, inside the United States, inside North America,
// and now lives in London, inside England, inside Europe. Two WITHIN
// chains of places plus one person make the smallest dataset that gives
// FindNodes, OutgoingWithLabel and FollowLabel something real to do.

package scenario

// Lucy returns the built-in people-and-places Dataset.
//
// Replayed with Build, the nodes receive IDs 1..7 and the edges 1..6 in
// the order listed here. The fixture is value-typed; callers may mutate
// their copy freely.
func Lucy() Dataset {
	return Dataset{
		Name: "people-and-places",
		Nodes: []NodeSpec{
			{Key: "north-america", Properties: map[string]interface{}{"type": "Continent", "name": "North America"}},
			{Key: "united-states", Properties: map[string]interface{}{"type": "Country", "name": "United States"}},
			{Key: "idaho", Properties: map[string]interface{}{"type": "State", "name": "Idaho"}},
			{Key: "europe", Properties: map[string]interface{}{"type": "Continent", "name": "Europe"}},
			{Key: "england", Properties: map[string]interface{}{"type": "Country", "name": "England"}},
			{Key: "london", Properties: map[string]interface{}{"type": "City", "name": "London"}},
			{Key: "lucy", Properties: map[string]interface{}{"type": "Person", "name": "Lucy"}},
		},
		Edges: []EdgeSpec{
			{Tail: "united-states", Label: "WITHIN", Head: "north-america"},
			{Tail: "idaho", Label: "WITHIN", Head: "united-states"},
			{Tail: "england", Label: "WITHIN", Head: "europe"},
			{Tail: "london", Label: "WITHIN", Head: "england"},
			{Tail: "lucy", Label: "BORN_IN", Head: "idaho"},
			{Tail: "lucy", Label: "LIVES_IN", Head: "london"},
		},
	}
}
