package konnect

import (
	"bytes"
	"fmt"
	"maps"
	"reflect"
	"strings"
)

// Schema is an immutable descriptor of a primitive value, optionally tagged
// with a logical-type name and version. Construct it with a SchemaBuilder or
// FromDescriptor; the zero value is not useful.
type Schema struct {
	typ        Type
	name       string
	version    int
	optional   bool
	def        any
	hasDefault bool
	doc        string
	params     map[string]string
}

func (s *Schema) Type() Type { return s.typ }

// Name returns the logical-type name, or "" for a plain primitive schema.
func (s *Schema) Name() string { return s.name }

// Version returns the schema version; 0 means unset.
func (s *Schema) Version() int { return s.version }

func (s *Schema) Optional() bool { return s.optional }

func (s *Schema) Doc() string { return s.doc }

// DefaultValue returns the default or nil when none was set. Byte defaults
// are copied so callers cannot alter the schema.
func (s *Schema) DefaultValue() any {
	if b, ok := s.def.([]byte); ok {
		return bytes.Clone(b)
	}
	return s.def
}

// HasDefault distinguishes an explicit nil default from an unset one.
func (s *Schema) HasDefault() bool { return s.hasDefault }

// Parameters returns a copy of the schema parameters (nil when empty).
func (s *Schema) Parameters() map[string]string {
	if len(s.params) == 0 {
		return nil
	}
	return maps.Clone(s.params)
}

// Equal reports value equality over every attribute.
func (s *Schema) Equal(o *Schema) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.typ != o.typ || s.name != o.name || s.version != o.version ||
		s.optional != o.optional || s.doc != o.doc || s.hasDefault != o.hasDefault {
		return false
	}
	if !reflect.DeepEqual(s.def, o.def) {
		return false
	}
	if len(s.params) != len(o.params) {
		return false
	}
	return maps.Equal(s.params, o.params)
}

func (s *Schema) String() string {
	b := &strings.Builder{}
	b.WriteString("Schema{")
	if s.name != "" {
		b.WriteString(s.name)
		b.WriteByte(':')
	}
	b.WriteString(strings.ToUpper(string(s.typ)))
	if s.version != 0 {
		fmt.Fprintf(b, " v%d", s.version)
	}
	if s.optional {
		b.WriteString(" optional")
	}
	b.WriteByte('}')
	return b.String()
}
