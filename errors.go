package konnect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/konnect/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType    = "invalid_type"
	CodeInvalidDefault = "invalid_default"
	CodeAlreadySet     = "already_set"
	CodeSchemaMismatch = "schema_mismatch"
	CodeParseError     = "parse_error"
	CodeOverflow       = "overflow"
)

// ErrSchemaMismatch is reported when a logical-type conversion is handed a
// schema whose name is not the reserved name of that logical type.
var ErrSchemaMismatch = errors.New("konnect: schema does not match logical type")

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer into the descriptor (for example: /default).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected names, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"expected":"...", "got":"..."})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /default
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is can match sentinels such as
// ErrSchemaMismatch.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IsSchemaMismatch reports whether err carries ErrSchemaMismatch.
func IsSchemaMismatch(err error) bool { return errors.Is(err, ErrSchemaMismatch) }

// IssueAt creates an Issue at path with a message resolved through i18n.
func IssueAt(path, code string, params map[string]any) Issue {
	return Issue{Path: path, Code: code, Message: i18n.T(code, stringParams(params)), Params: params}
}

// SchemaMismatch builds the issue returned by logical-type helpers when the
// schema name does not equal the expected logical name.
func SchemaMismatch(expected, got string) Issues {
	it := IssueAt("/name", CodeSchemaMismatch, map[string]any{"expected": expected, "got": got})
	it.Cause = ErrSchemaMismatch
	it.Hint = "expected schema name " + expected
	return Issues{it}
}

func stringParams(params map[string]any) map[string]string {
	if len(params) == 0 {
		return nil
	}
	out := make(map[string]string, len(params))
	for k, v := range params {
		out[k] = fmt.Sprint(v)
	}
	return out
}
