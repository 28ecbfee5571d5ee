// Package proptab builds an in-memory table of packed binary records keyed
// by IP address ranges, parsed from delimited text. Each row's layout is
// defined at setup time by an ordered list of column properties; each
// property knows its own byte width and how to turn a text token into its
// binary encoding. Rows are bump-allocated and never move, so a table is
// built once and then serves read-only point lookups: Find(addr) returns
// the row whose range contains the address.
//
// Parsing is best-effort: a malformed range skips its line, a field that
// fails its column's grammar keeps its zero value, and both are recorded
// as structured diagnostics rather than aborting the parse. A bulk import
// should not lose an entire dataset over one bad row.
package proptab

import "errors"

// Sentinel errors for programmatic handling. Data-level conditions
// (ErrBadRange, ErrUnknownFlag, ErrUnknownTag, ErrEmptyToken,
// ErrMissingField, ErrDictFull) surface inside parse diagnostics; the rest
// are returned directly and indicate caller mistakes or unusable input.
var (
	ErrSchemaFrozen = errors.New("columns cannot be added after parsing has begun")
	ErrNoColumns    = errors.New("table has no columns")
	ErrBadRange     = errors.New("invalid range specification")
	ErrUnknownFlag  = errors.New("unrecognized flag token")
	ErrUnknownTag   = errors.New("unrecognized flag name")
	ErrEmptyToken   = errors.New("empty token")
	ErrMissingField = errors.New("missing field")
	ErrDictFull     = errors.New("tag dictionary is full")
	ErrBadSchema    = errors.New("invalid schema descriptor")
	ErrDecompress   = errors.New("decompression failed")
)
