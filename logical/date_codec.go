package logical

import (
	"time"

	"github.com/reoring/konnect"
)

// DateCodec is a Date converter bound to a schema that already passed the
// name check, so its conversions cannot fail. Use it when the schema arrives
// once (from a descriptor file or a JSON Schema) and many values follow.
type DateCodec struct {
	schema *konnect.Schema
}

// NewDateCodec checks the schema name once and returns a bound codec.
func NewDateCodec(s *konnect.Schema) (*DateCodec, error) {
	if err := checkDate(s); err != nil {
		return nil, err
	}
	return &DateCodec{schema: s}, nil
}

// Schema returns the descriptor the codec was bound to.
func (c *DateCodec) Schema() *konnect.Schema { return c.schema }

// FromLogical renders v the same way DateFromLogical does.
func (c *DateCodec) FromLogical(v time.Time) string { return v.Round(0).String() }

// ToLogical is a pass-through, matching DateToLogical.
func (c *DateCodec) ToLogical(v string) string { return v }
