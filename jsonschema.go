package konnect

import (
	js "github.com/reoring/konnect/jsonschema"
)

// JSONSchema projects the schema into the JSON Schema dialect used by the
// Confluent JSON Schema converter. Optional schemas become oneOf [null, T].
func (s *Schema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{
		Title:             s.name,
		Description:       s.doc,
		ConnectVersion:    s.version,
		ConnectParameters: s.Parameters(),
	}
	switch s.typ {
	case TypeInt8, TypeInt16, TypeInt32, TypeInt64:
		out.Type = js.TypeInteger
		out.ConnectType = string(s.typ)
	case TypeFloat32, TypeFloat64:
		out.Type = js.TypeNumber
		out.ConnectType = string(s.typ)
	case TypeBoolean:
		out.Type = js.TypeBoolean
	case TypeString:
		out.Type = js.TypeString
	case TypeBytes:
		out.Type = js.TypeString
		out.ConnectType = string(TypeBytes)
	default:
		return nil, Issues{IssueAt("/type", CodeInvalidType, map[string]any{"type": string(s.typ)})}
	}
	if s.hasDefault {
		out.Default = s.DefaultValue()
	}
	if s.optional {
		return &js.Schema{OneOf: []*js.Schema{{Type: js.TypeNull}, out}}, nil
	}
	return out, nil
}

// FromJSONSchema is the inverse of JSONSchema. Logical-type names arrive here
// as plain titles; callers that need a specific logical type must check the
// name of the result.
func FromJSONSchema(j *js.Schema) (*Schema, error) {
	if j == nil {
		return nil, Issues{IssueAt("/", CodeParseError, nil)}
	}
	optional := false
	if len(j.OneOf) > 0 {
		inner, ok := nullableBranch(j.OneOf)
		if !ok {
			return nil, Issues{IssueAt("/oneOf", CodeInvalidType, map[string]any{"expected": "oneOf [null, T]"})}
		}
		optional = true
		j = inner
	}
	t, err := typeFromJSONSchema(j)
	if err != nil {
		return nil, err
	}
	return FromDescriptor(Descriptor{
		Type:       t,
		Optional:   optional,
		Name:       j.Title,
		Version:    j.ConnectVersion,
		Doc:        j.Description,
		Default:    j.Default,
		Parameters: j.ConnectParameters,
	})
}

func nullableBranch(branches []*js.Schema) (*js.Schema, bool) {
	if len(branches) != 2 {
		return nil, false
	}
	a, b := branches[0], branches[1]
	if a == nil || b == nil {
		return nil, false
	}
	switch {
	case a.Type == js.TypeNull && b.Type != js.TypeNull:
		return b, true
	case b.Type == js.TypeNull && a.Type != js.TypeNull:
		return a, true
	}
	return nil, false
}

func typeFromJSONSchema(j *js.Schema) (Type, error) {
	bad := func() error {
		return Issues{IssueAt("/type", CodeInvalidType, map[string]any{"type": j.Type, "connect.type": j.ConnectType})}
	}
	ct := Type(j.ConnectType)
	switch j.Type {
	case js.TypeInteger:
		if ct == "" {
			return TypeInt64, nil
		}
		if ct.IsInteger() {
			return ct, nil
		}
	case js.TypeNumber:
		if ct == "" {
			return TypeFloat64, nil
		}
		if ct == TypeFloat32 || ct == TypeFloat64 {
			return ct, nil
		}
	case js.TypeBoolean:
		if ct == "" {
			return TypeBoolean, nil
		}
	case js.TypeString:
		switch ct {
		case "":
			return TypeString, nil
		case TypeBytes:
			return TypeBytes, nil
		}
	}
	return "", bad()
}
