// Package logical holds logical types layered on primitive Connect schemas.
//
// Date is a calendar day with no time of day or timezone, carried on the wire
// as a string. DateFromLogical renders a time.Time with its default String
// form and DateToLogical returns the string as is, so the two directions are
// not inverses: DateToLogical(DateFromLogical(d)) yields a string, not d.
// Both reject any schema whose name is not DateLogicalName with an error
// matching konnect.ErrSchemaMismatch.
package logical
