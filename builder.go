package konnect

import (
	"bytes"
	"maps"
)

// SchemaBuilder accumulates schema attributes. Name, version, optionality,
// default and doc may each be set once; repeated calls are reported by Build.
type SchemaBuilder struct {
	typ        Type
	name       string
	version    int
	optional   bool
	def        any
	hasDefault bool
	doc        string
	params     map[string]string

	set    map[string]struct{}
	issues Issues
}

// Builder starts a schema of the given primitive type.
func Builder(t Type) *SchemaBuilder {
	b := &SchemaBuilder{typ: t, set: map[string]struct{}{}}
	if !t.Valid() {
		b.issues = AppendIssues(b.issues, IssueAt("/type", CodeInvalidType, map[string]any{"type": string(t)}))
	}
	return b
}

func Int8Builder() *SchemaBuilder    { return Builder(TypeInt8) }
func Int16Builder() *SchemaBuilder   { return Builder(TypeInt16) }
func Int32Builder() *SchemaBuilder   { return Builder(TypeInt32) }
func Int64Builder() *SchemaBuilder   { return Builder(TypeInt64) }
func Float32Builder() *SchemaBuilder { return Builder(TypeFloat32) }
func Float64Builder() *SchemaBuilder { return Builder(TypeFloat64) }
func BooleanBuilder() *SchemaBuilder { return Builder(TypeBoolean) }
func StringBuilder() *SchemaBuilder  { return Builder(TypeString) }
func BytesBuilder() *SchemaBuilder   { return Builder(TypeBytes) }

// once records key as set and reports whether this is the first time.
func (b *SchemaBuilder) once(key string) bool {
	if _, dup := b.set[key]; dup {
		b.issues = AppendIssues(b.issues, IssueAt("/"+key, CodeAlreadySet, map[string]any{"key": key}))
		return false
	}
	b.set[key] = struct{}{}
	return true
}

// Name sets the logical-type name.
func (b *SchemaBuilder) Name(name string) *SchemaBuilder {
	if b.once("name") {
		b.name = name
	}
	return b
}

// Version sets the schema version.
func (b *SchemaBuilder) Version(v int) *SchemaBuilder {
	if b.once("version") {
		b.version = v
	}
	return b
}

// Optional marks the schema as accepting nil values.
func (b *SchemaBuilder) Optional() *SchemaBuilder {
	if b.once("optional") {
		b.optional = true
	}
	return b
}

// Required marks the schema as rejecting nil values (the default).
func (b *SchemaBuilder) Required() *SchemaBuilder {
	if b.once("optional") {
		b.optional = false
	}
	return b
}

// DefaultValue sets the default; it is checked against the type at Build.
func (b *SchemaBuilder) DefaultValue(v any) *SchemaBuilder {
	if b.once("default") {
		if bs, ok := v.([]byte); ok {
			v = bytes.Clone(bs)
		}
		b.def = v
		b.hasDefault = true
	}
	return b
}

// Doc sets the documentation string.
func (b *SchemaBuilder) Doc(doc string) *SchemaBuilder {
	if b.once("doc") {
		b.doc = doc
	}
	return b
}

// Parameter adds a single key/value parameter, replacing any previous value.
func (b *SchemaBuilder) Parameter(k, v string) *SchemaBuilder {
	if b.params == nil {
		b.params = map[string]string{}
	}
	b.params[k] = v
	return b
}

// Parameters merges all entries of p into the builder parameters.
func (b *SchemaBuilder) Parameters(p map[string]string) *SchemaBuilder {
	for k, v := range p {
		b.Parameter(k, v)
	}
	return b
}

// Build validates the builder and returns an immutable Schema.
func (b *SchemaBuilder) Build() (*Schema, error) {
	iss := append(Issues(nil), b.issues...)
	s := &Schema{
		typ:        b.typ,
		name:       b.name,
		version:    b.version,
		optional:   b.optional,
		def:        b.def,
		hasDefault: b.hasDefault,
		doc:        b.doc,
		params:     maps.Clone(b.params),
	}
	if bs, ok := s.def.([]byte); ok {
		s.def = bytes.Clone(bs)
	}
	if len(iss) == 0 && s.hasDefault {
		if err := ValidateValue(s, s.def); err != nil {
			it := IssueAt("/default", CodeInvalidDefault, map[string]any{"type": string(s.typ)})
			it.Cause = err
			iss = AppendIssues(iss, it)
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return s, nil
}

// MustBuild is like Build but panics on error.
func (b *SchemaBuilder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
