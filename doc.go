// Package propgraph is an in-memory property graph: integer-identified
// nodes and directed, labeled edges, each carrying a free-form property map.
//
// 🚀 What is propgraph?
//
//	A small, deterministic library that brings together:
//		• Core primitives: append-only nodes & edges with graph-assigned IDs
//		• Property search: conjunctive matching over node property maps
//		• Label queries: outgoing/incoming filters and chained label walks
//		• Scenarios: declarative YAML datasets replayed into fresh graphs
//
// ✨ Why choose propgraph?
//
//   - Beginner-friendly: minimal API, clear, intuitive naming
//   - Deterministic: monotonic IDs and sorted enumeration keep replays reproducible
//   - Single-owner semantics: no hidden locks; wrap it if you must share it
//   - Pure data model: no schema validation and no query engine
//
// Everything is organized under two subpackages:
//
//	core/     - Node, Edge, Graph: mutation, adjacency and label queries
//	scenario/ - declarative Datasets, the YAML codec, the Lucy preset
//
// Quick ASCII example:
//
//	Lucy ─BORN_IN──▶ Idaho  ─WITHIN─▶ United States ─WITHIN─▶ North America
//	  └──LIVES_IN──▶ London ─WITHIN─▶ England       ─WITHIN─▶ Europe
//
//	one person, six places, and every question the graph can answer about
//	where that person comes from.
//
//	go get github.com/katalvlaran/propgraph
package propgraph
