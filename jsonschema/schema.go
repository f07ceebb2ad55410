package jsonschema

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// JSON Schema primitive type names used by the projection.
const (
	TypeNull    = "null"
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
)

// Schema is the subset of JSON Schema emitted for Connect primitive schemas,
// including the "connect.*" extension keywords.
type Schema struct {
	// Core
	Type        string `json:"type,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Default     any    `json:"default,omitempty"`

	// Union (optional schemas are oneOf [null, T])
	OneOf []*Schema `json:"oneOf,omitempty"`

	// Connect extensions
	ConnectType       string            `json:"connect.type,omitempty"`
	ConnectVersion    int               `json:"connect.version,omitempty"`
	ConnectParameters map[string]string `json:"connect.parameters,omitempty"`
}

// Marshal encodes s as compact JSON.
func Marshal(s *Schema) ([]byte, error) { return json.Marshal(s) }

// MarshalIndent encodes s as indented JSON.
func MarshalIndent(s *Schema) ([]byte, error) { return json.MarshalIndent(s, "", "  ") }

// Unmarshal decodes data into a Schema. Numbers in defaults are kept as
// json.Number so integer defaults survive intact.
func Unmarshal(data []byte) (*Schema, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var s Schema
	if err := dec.Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}
