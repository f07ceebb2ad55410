package konnect

// Type is the primitive wire type underneath a schema.
type Type string

const (
	TypeInt8    Type = "int8"
	TypeInt16   Type = "int16"
	TypeInt32   Type = "int32"
	TypeInt64   Type = "int64"
	TypeFloat32 Type = "float32"
	TypeFloat64 Type = "float64"
	TypeBoolean Type = "boolean"
	TypeString  Type = "string"
	TypeBytes   Type = "bytes"
)

// Valid reports whether t is one of the supported primitive types.
func (t Type) Valid() bool {
	switch t {
	case TypeInt8, TypeInt16, TypeInt32, TypeInt64,
		TypeFloat32, TypeFloat64, TypeBoolean, TypeString, TypeBytes:
		return true
	}
	return false
}

// IsInteger reports whether t is one of the signed integer types.
func (t Type) IsInteger() bool {
	switch t {
	case TypeInt8, TypeInt16, TypeInt32, TypeInt64:
		return true
	}
	return false
}
