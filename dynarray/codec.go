// SPDX-License-Identifier: MIT

// Package dynarray - JSON & YAML codecs.
//
// Wire shape: a plain list of the live elements, e.g. [1,2,3] / "- 1\n- 2\n- 3\n".
// Spare capacity is not encoded; a decoded array has Cap() == Size().
// Decoding replaces the receiver's contents and keeps its options.

package dynarray

import (
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Compile-time assertions for codec conformance.
var (
	_ json.Marshaler   = Array[int]{}
	_ json.Unmarshaler = (*Array[int])(nil)
	_ yaml.Marshaler   = Array[int]{}
	_ yaml.Unmarshaler = (*Array[int])(nil)
)

// MarshalJSON encodes the live elements as a JSON array. Empty encodes as [].
// Keep the value receiver: non-addressable Array fields encode through it.
func (a Array[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Values())
}

// UnmarshalJSON decodes a JSON array into the receiver. A JSON null is a no-op.
// On error the receiver is left unchanged.
func (a *Array[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var vals []T
	if err := json.Unmarshal(data, &vals); err != nil {
		return fmt.Errorf("Array.UnmarshalJSON: %w", err)
	}
	a.replace(vals)

	return nil
}

// MarshalYAML encodes the live elements as a YAML sequence.
func (a Array[T]) MarshalYAML() (interface{}, error) {
	return a.Values(), nil
}

// UnmarshalYAML decodes a YAML sequence node into the receiver.
// On error the receiver is left unchanged.
func (a *Array[T]) UnmarshalYAML(value *yaml.Node) error {
	var vals []T
	if err := value.Decode(&vals); err != nil {
		return fmt.Errorf("Array.UnmarshalYAML: %w", err)
	}
	a.replace(vals)

	return nil
}

// replace adopts vals as the new backing store (capacity == len(vals)).
func (a *Array[T]) replace(vals []T) {
	if vals == nil {
		vals = []T{}
	}
	a.store = vals
	a.length = len(vals)
}
