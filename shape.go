package botocore

import (
	"fmt"
)

// BaseKinds lists every shape kind the decoders dispatch on. Kinds outside
// this list are passed through by the default handler.
var BaseKinds = []string{
	"structure",
	"list",
	"map",
	"string",
	"character",
	"boolean",
	"integer",
	"long",
	"float",
	"double",
	"blob",
	"timestamp",
}

// Shape describes the expected structure and wire encoding of one output
// value. Shapes are built once, before any parsing, and are never mutated by
// the decoders. The serialization descriptor is folded into the struct: an
// explicit wire name, a non-body location, the flattened flag, and - on the
// top output shape only - the payload member and the query result wrapper.
type Shape struct {
	Kind          string       `json:"kind"`
	Fields        []*MemberDef `json:"fields,omitempty"`
	Items         *Shape       `json:"items,omitempty"`
	Keys          *Shape       `json:"keys,omitempty"`
	Values        *Shape       `json:"values,omitempty"`
	LocationName  string       `json:"locationName,omitempty"`
	Location      string       `json:"location,omitempty"`
	Flattened     bool         `json:"flattened,omitempty"`
	Payload       string       `json:"payload,omitempty"`
	ResultWrapper string       `json:"resultWrapper,omitempty"`
}

// MemberDef is one named member of a structure shape, in declaration order.
type MemberDef struct {
	Name string `json:"name"`
	Shape
}

// Member returns the structure member with the given name, or nil.
func (shape *Shape) Member(name string) *MemberDef {
	for _, field := range shape.Fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

func isBaseKind(kind string) bool {
	for _, k := range BaseKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Validate checks that the shape is structurally well formed: every kind is
// known, lists declare their item shape, maps declare key and value shapes,
// and a declared payload names an actual member. Parsing an ill-formed shape
// is undefined, so callers that load shapes from files should validate first.
func (shape *Shape) Validate() error {
	return shape.validate("")
}

func (shape *Shape) validate(context string) error {
	if context == "" {
		context = shape.Kind
	}
	if !isBaseKind(shape.Kind) {
		return fmt.Errorf("%s: unknown shape kind %q", context, shape.Kind)
	}
	switch shape.Kind {
	case "structure":
		seen := make(map[string]bool, len(shape.Fields))
		for _, field := range shape.Fields {
			if field.Name == "" {
				return fmt.Errorf("%s: structure member with no name", context)
			}
			if seen[field.Name] {
				return fmt.Errorf("%s: duplicate structure member %q", context, field.Name)
			}
			seen[field.Name] = true
			if err := field.Shape.validate(context + "." + field.Name); err != nil {
				return err
			}
		}
		if shape.Payload != "" && shape.Member(shape.Payload) == nil {
			return fmt.Errorf("%s: payload %q is not a declared member", context, shape.Payload)
		}
	case "list":
		if shape.Items == nil {
			return fmt.Errorf("%s: list shape with no item shape", context)
		}
		return shape.Items.validate(context + "[]")
	case "map":
		if shape.Keys == nil || shape.Values == nil {
			return fmt.Errorf("%s: map shape missing key or value shape", context)
		}
		if err := shape.Keys.validate(context + ".key"); err != nil {
			return err
		}
		return shape.Values.validate(context + ".value")
	}
	return nil
}
