package logical

import (
	"time"

	"github.com/reoring/konnect"
)

// DateLogicalName identifies a calendar day with no time of day or timezone.
// Interoperating systems recognize the logical type by this exact string.
const DateLogicalName = "org.apache.kafka.connect.data.Date"

// DateBuilder returns a builder for a string-encoded Date schema. Callers may
// further set optionality, a default or documentation before building.
func DateBuilder() *konnect.SchemaBuilder {
	return konnect.StringBuilder().
		Name(DateLogicalName).
		Version(1)
}

// DateSchema is the default Date descriptor.
var DateSchema = DateBuilder().MustBuild()

// IsDate reports whether s is tagged with the Date logical name.
func IsDate(s *konnect.Schema) bool { return s != nil && s.Name() == DateLogicalName }

// DateFromLogical converts a date (midnight, whole days since the Unix epoch)
// to its encoded form. The encoding is the value's default string rendering
// with any monotonic clock reading stripped; no calendar format is applied.
func DateFromLogical(s *konnect.Schema, v time.Time) (string, error) {
	if err := checkDate(s); err != nil {
		return "", err
	}
	return v.Round(0).String(), nil
}

// DateToLogical returns the encoded value unchanged after checking the schema.
// It does not parse v back into a time.Time.
func DateToLogical(s *konnect.Schema, v string) (string, error) {
	if err := checkDate(s); err != nil {
		return "", err
	}
	return v, nil
}

func checkDate(s *konnect.Schema) error {
	if IsDate(s) {
		return nil
	}
	got := ""
	if s != nil {
		got = s.Name()
	}
	return konnect.SchemaMismatch(DateLogicalName, got)
}
