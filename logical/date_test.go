package logical_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/reoring/konnect"
	"github.com/reoring/konnect/logical"
)

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func TestDate_LogicalNameIsExact(t *testing.T) {
	if logical.DateLogicalName != "org.apache.kafka.connect.data.Date" {
		t.Fatalf("unexpected logical name: %q", logical.DateLogicalName)
	}
	s := logical.DateSchema
	if s.Name() != logical.DateLogicalName || s.Version() != 1 || s.Type() != konnect.TypeString {
		t.Fatalf("unexpected default schema: %v", s)
	}
	if s.Optional() || s.HasDefault() || s.Doc() != "" {
		t.Fatalf("default schema should carry no customization: %v", s)
	}
}

func TestDate_FromLogical_DefaultRendering(t *testing.T) {
	v := day(2024, time.January, 15)
	got, err := logical.DateFromLogical(logical.DateSchema, v)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if got != "2024-01-15 00:00:00 +0000 UTC" {
		t.Fatalf("unexpected encoding: %q", got)
	}
	if got != v.String() {
		t.Fatalf("encoding should be the default string rendering: %q vs %q", got, v.String())
	}
}

func TestDate_FromLogical_DropsMonotonicReading(t *testing.T) {
	v := time.Now().UTC()
	got, err := logical.DateFromLogical(logical.DateSchema, v)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if strings.Contains(got, "m=") {
		t.Fatalf("encoding carries monotonic clock reading: %q", got)
	}
	wall := time.Date(v.Year(), v.Month(), v.Day(), v.Hour(), v.Minute(), v.Second(), v.Nanosecond(), time.UTC)
	if want, _ := logical.DateFromLogical(logical.DateSchema, wall); got != want {
		t.Fatalf("equal instants encode differently: %q vs %q", got, want)
	}
	c, _ := logical.NewDateCodec(logical.DateSchema)
	if enc := c.FromLogical(v); enc != got {
		t.Fatalf("codec encoding %q != %q", enc, got)
	}
}

func TestDate_ToLogical_PassThrough(t *testing.T) {
	in := "2024-01-15 00:00:00 +0000 UTC"
	got, err := logical.DateToLogical(logical.DateSchema, in)
	if err != nil || got != in {
		t.Fatalf("decode err=%v v=%q", err, got)
	}
	// Not a date at all: still returned as is.
	got, err = logical.DateToLogical(logical.DateSchema, "not-a-date")
	if err != nil || got != "not-a-date" {
		t.Fatalf("decode err=%v v=%q", err, got)
	}
}

// Decoding an encoded value yields the rendered string, never the original
// time.Time.
func TestDate_EncodeDecode_IsAsymmetric(t *testing.T) {
	v := day(2024, time.January, 15)
	enc, err := logical.DateFromLogical(logical.DateSchema, v)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	dec, err := logical.DateToLogical(logical.DateSchema, enc)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if dec != enc {
		t.Fatalf("decode should return its input: %q != %q", dec, enc)
	}
	if dec == v.Format(time.DateOnly) {
		t.Fatalf("decode unexpectedly produced a calendar-format day: %q", dec)
	}
	var asAny any = dec
	if _, ok := asAny.(time.Time); ok {
		t.Fatalf("decode must not produce time.Time")
	}
}

func TestDate_SchemaMismatch(t *testing.T) {
	other := konnect.StringBuilder().Name("some.other.type").Version(1).MustBuild()
	plain := konnect.StringBuilder().MustBuild()
	values := []time.Time{day(2024, time.January, 15), {}, day(1970, time.January, 1)}

	for _, s := range []*konnect.Schema{other, plain, nil} {
		for _, v := range values {
			if _, err := logical.DateFromLogical(s, v); !errors.Is(err, konnect.ErrSchemaMismatch) {
				t.Fatalf("encode with %v: expected schema mismatch, got %v", s, err)
			}
		}
		for _, v := range []string{"", "2024-01-15", "x"} {
			if _, err := logical.DateToLogical(s, v); !konnect.IsSchemaMismatch(err) {
				t.Fatalf("decode with %v: expected schema mismatch, got %v", s, err)
			}
		}
	}

	_, err := logical.DateFromLogical(other, day(2024, time.January, 15))
	iss, ok := konnect.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != konnect.CodeSchemaMismatch {
		t.Fatalf("expected one schema_mismatch issue, got %v", err)
	}
	if iss[0].Params["got"] != "some.other.type" || iss[0].Params["expected"] != logical.DateLogicalName {
		t.Fatalf("unexpected params: %v", iss[0].Params)
	}
}

// The name is the only thing checked: any schema carrying it converts.
func TestDate_CustomizedSchemaStillConverts(t *testing.T) {
	s := logical.DateBuilder().
		Optional().
		Doc("order day").
		DefaultValue("1970-01-01").
		MustBuild()
	if !s.Optional() || s.Doc() != "order day" || s.DefaultValue() != "1970-01-01" {
		t.Fatalf("customization lost: %v", s)
	}
	if _, err := logical.DateFromLogical(s, day(2000, time.February, 29)); err != nil {
		t.Fatalf("encode err: %v", err)
	}
	bytesDate := konnect.BytesBuilder().Name(logical.DateLogicalName).MustBuild()
	if _, err := logical.DateToLogical(bytesDate, "x"); err != nil {
		t.Fatalf("decode err: %v", err)
	}
}

func TestDate_BuilderIsDeterministic(t *testing.T) {
	a := logical.DateBuilder().MustBuild()
	b := logical.DateBuilder().MustBuild()
	if a == b {
		t.Fatalf("expected distinct descriptors")
	}
	if !a.Equal(b) || !a.Equal(logical.DateSchema) {
		t.Fatalf("expected value-equal descriptors: %v %v", a, b)
	}
	if a.Name() != b.Name() || a.Version() != b.Version() {
		t.Fatalf("name/version differ: %v %v", a, b)
	}
}

func TestDate_ConcurrentUse(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 32; i++ {
		v := day(2024, time.January, 1).AddDate(0, 0, i)
		g.Go(func() error {
			enc, err := logical.DateFromLogical(logical.DateSchema, v)
			if err != nil {
				return err
			}
			if enc != v.String() {
				return errors.New("unexpected encoding " + enc)
			}
			_, err = logical.DateToLogical(logical.DateSchema, enc)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent conversion err: %v", err)
	}
}

func TestIsDate(t *testing.T) {
	if !logical.IsDate(logical.DateSchema) {
		t.Fatalf("expected DateSchema to be a date")
	}
	if logical.IsDate(nil) || logical.IsDate(konnect.StringBuilder().MustBuild()) {
		t.Fatalf("unexpected date detection")
	}
}
