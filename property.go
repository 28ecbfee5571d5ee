// Column property contract and registration bookkeeping.
//
// A property describes one fixed-width field of a row: its byte size, how
// to parse a text token into that field, and whether the token text must
// be copied into durable storage first. The variant set is closed — Flag,
// FlagGroup, Tag, Text — which the unexported register method enforces.
package proptab

// Token is one field extracted from a source line. Interned is the zero
// ref unless the owning column asked for a localized token, in which case
// it locates the durable copy of Text inside the table's arena.
type Token struct {
	Text     string
	Interned ref
}

// Property is one column of a table. Size is fixed at construction; Index
// and Offset are assigned exactly once, when the column is registered with
// AddColumn. Parse writes the binary encoding of a token into out, which
// is exactly Size bytes of the row; on failure the content of out is
// unspecified (the table hands every column a zeroed span, so a failed
// field reads as the zero value).
type Property interface {
	// Name is the column name, used in diagnostics only.
	Name() string

	// Size is the fixed byte width of this column's field.
	Size() int

	// Index is the column position in registration order, -1 before
	// registration.
	Index() int

	// Offset is the byte offset of this column's field within a row, -1
	// before registration.
	Offset() int

	// NeedsLocalizedToken reports whether the table must intern the token
	// text before Parse, because Parse stores a reference to the text
	// rather than consuming it.
	NeedsLocalizedToken() bool

	// Parse writes the binary encoding of tok into out.
	Parse(tok Token, out []byte) error

	register(index, offset int)
}

// column carries the registration state shared by every property variant.
type column struct {
	name   string
	index  int
	offset int
}

func newColumn(name string) column {
	return column{name: name, index: -1, offset: -1}
}

func (c *column) Name() string              { return c.name }
func (c *column) Index() int                { return c.index }
func (c *column) Offset() int               { return c.offset }
func (c *column) NeedsLocalizedToken() bool { return false }

func (c *column) register(index, offset int) { c.index, c.offset = index, offset }
