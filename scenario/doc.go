// Package scenario assembles core graphs from declarative datasets.
//
// A Dataset names its nodes with string keys and describes its edges by
// those keys, so a whole graph fixture can live in a YAML file next to the
// code and be replayed into a fresh *core.Graph on demand. The package
// offers:
//
//   - Declarative types:
//     – NodeSpec:  string key plus an optional property map.
//     – EdgeSpec:  tail/label/head keys plus an optional property map.
//     – Dataset:   a named list of NodeSpecs and EdgeSpecs.
//   - Replay:
//     – Build:     validate a Dataset, then replay it into a new graph,
//       returning the key-to-NodeID mapping and the created edge IDs.
//   - Codec:
//     – Decode:    unmarshal a YAML document into a Dataset.
//     – LoadFile:  read and decode a YAML file.
//   - Presets:
//     – Lucy:      the canonical people-and-places fixture used across
//       tests and the runnable example.
//
// Guarantees:
//
//   - Build validates the whole Dataset before touching the graph, so a
//     rejected Dataset never produces a half-built graph.
//   - Replay order is declaration order: node and edge identifiers in the
//     resulting graph are assigned 1,2,3,... in the order the Dataset
//     lists them, which keeps fixtures and golden outputs deterministic.
//   - Only sentinel errors (ErrEmptyNodeKey, ErrDuplicateNodeKey,
//     ErrUnknownNodeKey, ErrEmptyEdgeLabel) are returned for validation
//     failures; branch on them with errors.Is.
//
// See the function documentation for detailed contracts and costs.
package scenario
