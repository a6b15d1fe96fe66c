// SPDX-License-Identifier: MIT
// Package: propgraph/scenario
//
// impl_yaml.go - YAML codec for Datasets.
//
// Format (all property values are free-form YAML scalars or collections):
//
//	name: people-and-places
//	nodes:
//	  - key: lucy
//	    properties: {type: Person, name: Lucy}
//	edges:
//	  - {tail: lucy, label: BORN_IN, head: idaho}
//
// Decode does not validate graph semantics; Build does that on replay.

package scenario

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Decode unmarshals one YAML document into a Dataset.
func Decode(data []byte) (Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return Dataset{}, errors.Wrap(err, "scenario: decode dataset")
	}
	return ds, nil
}

// LoadFile reads path and decodes it as a YAML Dataset.
func LoadFile(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, errors.Wrapf(err, "scenario: read %s", path)
	}
	return Decode(data)
}
