package konnect

import "fmt"

// ValidateValue checks that v is acceptable for s. nil is accepted only for
// optional schemas; otherwise the Go type must match the primitive type
// exactly. Logical names do not change the check.
func ValidateValue(s *Schema, v any) error {
	if s == nil {
		return Issues{IssueAt("/", CodeInvalidType, map[string]any{"expected": "schema"})}
	}
	if v == nil {
		if s.optional {
			return nil
		}
		return Issues{mismatchAt("/", CodeInvalidType, s.typ, v)}
	}
	ok := false
	switch s.typ {
	case TypeInt8:
		_, ok = v.(int8)
	case TypeInt16:
		_, ok = v.(int16)
	case TypeInt32:
		_, ok = v.(int32)
	case TypeInt64:
		_, ok = v.(int64)
	case TypeFloat32:
		_, ok = v.(float32)
	case TypeFloat64:
		_, ok = v.(float64)
	case TypeBoolean:
		_, ok = v.(bool)
	case TypeString:
		_, ok = v.(string)
	case TypeBytes:
		_, ok = v.([]byte)
	}
	if !ok {
		return Issues{mismatchAt("/", CodeInvalidType, s.typ, v)}
	}
	return nil
}

func mismatchAt(path, code string, t Type, v any) Issue {
	it := IssueAt(path, code, map[string]any{"expected": string(t), "got": fmt.Sprintf("%T", v)})
	it.Hint = "expected " + string(t)
	return it
}
