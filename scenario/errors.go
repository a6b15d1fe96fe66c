// SPDX-License-Identifier: MIT
// Package: propgraph/scenario
//
// errors.go - sentinel errors for dataset validation.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Implementations attach context by wrapping a sentinel with %w.
//   - Sentinels carry no parameters; parameters live in the wrapping message.

package scenario

import "errors"

// ErrEmptyNodeKey indicates a NodeSpec with an empty key. Keys name nodes
// inside a Dataset, so every node must have one.
var ErrEmptyNodeKey = errors.New("scenario: node key is empty")

// ErrDuplicateNodeKey indicates two NodeSpecs in the same Dataset share a
// key. Keys must be unique so EdgeSpecs can reference nodes unambiguously.
var ErrDuplicateNodeKey = errors.New("scenario: duplicate node key")

// ErrUnknownNodeKey indicates an EdgeSpec whose tail or head key does not
// match any NodeSpec in the Dataset.
var ErrUnknownNodeKey = errors.New("scenario: edge references unknown node key")

// ErrEmptyEdgeLabel indicates an EdgeSpec with an empty label. Labels are
// mandatory on every edge.
var ErrEmptyEdgeLabel = errors.New("scenario: edge label is empty")
