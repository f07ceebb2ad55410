// Package source reads schema descriptors from JSON and YAML documents.
package source

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/reoring/konnect"
)

// ParseJSON decodes a single descriptor in the Connect JSON form.
func ParseJSON(data []byte) (*konnect.Schema, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, parseIssue(io.ErrUnexpectedEOF)
	}
	d, err := konnect.DecodeDescriptorJSON(data)
	if err != nil {
		return nil, err
	}
	return konnect.FromDescriptor(d)
}

// ParseYAML decodes the first descriptor document in data.
func ParseYAML(data []byte) (*konnect.Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var d konnect.Descriptor
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, parseIssue(err)
	}
	return konnect.FromDescriptor(d)
}

// ParseYAMLAll decodes every descriptor in a multi-document YAML bundle.
// Empty documents are skipped.
func ParseYAMLAll(data []byte) ([]*konnect.Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []*konnect.Schema
	for i := 0; ; i++ {
		var node yaml.Node
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, parseIssue(errors.Wrapf(err, "document %d", i))
		}
		if node.Kind == 0 || (node.Kind == yaml.DocumentNode && len(node.Content) == 0) {
			continue
		}
		var d konnect.Descriptor
		if err := node.Decode(&d); err != nil {
			return nil, parseIssue(errors.Wrapf(err, "document %d", i))
		}
		s, err := konnect.FromDescriptor(d)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, parseIssue(io.ErrUnexpectedEOF)
	}
	return out, nil
}

// LoadFile reads a descriptor from path, choosing the decoder by extension.
func LoadFile(path string) (*konnect.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "source: reading %s", path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	}
	return nil, errors.Errorf("source: unsupported descriptor extension %q", filepath.Ext(path))
}

func parseIssue(cause error) konnect.Issues {
	it := konnect.IssueAt("/", konnect.CodeParseError, nil)
	it.Cause = cause
	return konnect.Issues{it}
}
