package konnect

import (
	"bytes"
	"encoding/base64"
	"math"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Descriptor is the serializable form of a Schema, laid out the way the
// Connect JSON converter writes schemas next to payloads.
type Descriptor struct {
	Type       Type              `json:"type" yaml:"type"`
	Optional   bool              `json:"optional" yaml:"optional"`
	Name       string            `json:"name,omitempty" yaml:"name,omitempty"`
	Version    int               `json:"version,omitempty" yaml:"version,omitempty"`
	Doc        string            `json:"doc,omitempty" yaml:"doc,omitempty"`
	Default    any               `json:"default,omitempty" yaml:"default,omitempty"`
	Parameters map[string]string `json:"parameters,omitempty" yaml:"parameters,omitempty"`

	// NullDefault records an explicit null default, which Default alone
	// cannot distinguish from an absent one.
	NullDefault bool `json:"-" yaml:"-"`
}

// nullDefaultDescriptor mirrors Descriptor but always writes "default".
type nullDefaultDescriptor struct {
	Type        Type              `json:"type"`
	Optional    bool              `json:"optional"`
	Name        string            `json:"name,omitempty"`
	Version     int               `json:"version,omitempty"`
	Doc         string            `json:"doc,omitempty"`
	Default     any               `json:"default"`
	Parameters  map[string]string `json:"parameters,omitempty"`
	NullDefault bool              `json:"-"`
}

// Descriptor returns the serializable form of s.
func (s *Schema) Descriptor() Descriptor {
	return Descriptor{
		Type:        s.typ,
		Optional:    s.optional,
		Name:        s.name,
		Version:     s.version,
		Doc:         s.doc,
		Default:     s.DefaultValue(),
		Parameters:  s.Parameters(),
		NullDefault: s.hasDefault && s.def == nil,
	}
}

// FromDescriptor builds a Schema from its serialized form. Defaults decoded
// from JSON or YAML are coerced to the declared type first.
func FromDescriptor(d Descriptor) (*Schema, error) {
	b := Builder(d.Type)
	if d.Name != "" {
		b.Name(d.Name)
	}
	if d.Version != 0 {
		b.Version(d.Version)
	}
	if d.Optional {
		b.Optional()
	}
	if d.Doc != "" {
		b.Doc(d.Doc)
	}
	b.Parameters(d.Parameters)
	if d.Default != nil && d.Type.Valid() {
		v, err := coerceDefault(d.Type, d.Default)
		if err != nil {
			return nil, err
		}
		b.DefaultValue(v)
	} else if d.NullDefault {
		b.DefaultValue(nil)
	}
	return b.Build()
}

// MarshalJSON writes the Descriptor form. An explicit null default is
// written as "default":null.
func (s *Schema) MarshalJSON() ([]byte, error) {
	d := s.Descriptor()
	if d.NullDefault {
		return gojson.Marshal(nullDefaultDescriptor(d))
	}
	return gojson.Marshal(d)
}

// UnmarshalJSON reads the Descriptor form. It is meant for zero-valued
// targets only; built schemas are never modified afterwards.
func (s *Schema) UnmarshalJSON(data []byte) error {
	d, err := DecodeDescriptorJSON(data)
	if err != nil {
		return err
	}
	built, err := FromDescriptor(d)
	if err != nil {
		return err
	}
	*s = *built
	return nil
}

// DecodeDescriptorJSON decodes the Connect JSON form, keeping numbers as
// json.Number and noting an explicit "default":null.
func DecodeDescriptorJSON(data []byte) (Descriptor, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var d Descriptor
	if err := dec.Decode(&d); err != nil {
		return Descriptor{}, parseIssue(err)
	}
	if d.Default == nil {
		var keys map[string]any
		if err := gojson.Unmarshal(data, &keys); err != nil {
			return Descriptor{}, parseIssue(err)
		}
		_, d.NullDefault = keys["default"]
	}
	return d, nil
}

// UnmarshalYAML decodes a descriptor mapping. For string and bytes schemas
// the default keeps its scalar source text, so an unquoted 2024-01-15 stays
// a string instead of resolving to a timestamp.
func (d *Descriptor) UnmarshalYAML(n *yaml.Node) error {
	type plain Descriptor
	var p plain
	if err := n.Decode(&p); err != nil {
		return err
	}
	*d = Descriptor(p)
	if n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value != "default" {
			continue
		}
		v := n.Content[i+1]
		if v.Kind == yaml.AliasNode && v.Alias != nil {
			v = v.Alias
		}
		switch {
		case v.ShortTag() == "!!null":
			d.Default = nil
			d.NullDefault = true
		case v.Kind == yaml.ScalarNode && (d.Type == TypeString || d.Type == TypeBytes):
			d.Default = v.Value
		}
	}
	return nil
}

func parseIssue(cause error) Issues {
	it := IssueAt("/", CodeParseError, nil)
	it.Cause = cause
	return Issues{it}
}

// numberLike matches json.Number from either encoding/json or go-json.
type numberLike interface {
	Int64() (int64, error)
	Float64() (float64, error)
	String() string
}

func coerceDefault(t Type, v any) (any, error) {
	switch t {
	case TypeInt8:
		return coerceInt(t, v, math.MinInt8, math.MaxInt8, func(n int64) any { return int8(n) })
	case TypeInt16:
		return coerceInt(t, v, math.MinInt16, math.MaxInt16, func(n int64) any { return int16(n) })
	case TypeInt32:
		return coerceInt(t, v, math.MinInt32, math.MaxInt32, func(n int64) any { return int32(n) })
	case TypeInt64:
		return coerceInt(t, v, math.MinInt64, math.MaxInt64, func(n int64) any { return n })
	case TypeFloat32:
		f, ok := toFloat(v)
		if !ok {
			return nil, badDefault(t, v)
		}
		if math.Abs(f) > math.MaxFloat32 && !math.IsInf(f, 0) {
			return nil, Issues{IssueAt("/default", CodeOverflow, map[string]any{"type": string(t)})}
		}
		return float32(f), nil
	case TypeFloat64:
		f, ok := toFloat(v)
		if !ok {
			return nil, badDefault(t, v)
		}
		return f, nil
	case TypeBoolean:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case TypeString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case TypeBytes:
		switch x := v.(type) {
		case []byte:
			return x, nil
		case string:
			raw, err := base64.StdEncoding.DecodeString(x)
			if err != nil {
				iss := badDefault(t, v)
				iss[0].Cause = err
				return nil, iss
			}
			return raw, nil
		}
	}
	return nil, badDefault(t, v)
}

func coerceInt(t Type, v any, lo, hi int64, conv func(int64) any) (any, error) {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int8:
		n = int64(x)
	case int16:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case uint64:
		if x > math.MaxInt64 {
			return nil, Issues{IssueAt("/default", CodeOverflow, map[string]any{"type": string(t)})}
		}
		n = int64(x)
	case float64:
		if x != math.Trunc(x) || x < math.MinInt64 || x >= math.MaxInt64 {
			return nil, badDefault(t, v)
		}
		n = int64(x)
	case numberLike:
		i, err := x.Int64()
		if err != nil {
			iss := badDefault(t, v)
			iss[0].Cause = err
			return nil, iss
		}
		n = i
	default:
		return nil, badDefault(t, v)
	}
	if n < lo || n > hi {
		return nil, Issues{IssueAt("/default", CodeOverflow, map[string]any{"type": string(t), "got": n})}
	}
	return conv(n), nil
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case numberLike:
		f, err := x.Float64()
		return f, err == nil
	}
	return 0, false
}

func badDefault(t Type, v any) Issues {
	return Issues{mismatchAt("/default", CodeInvalidDefault, t, v)}
}
