// Core table type and the parse loop.
//
// A Table is built in two phases: columns are registered with AddColumn,
// then one or more Parse calls turn delimited source text into packed rows
// keyed by address range. The first Parse freezes the schema. AddColumn
// and Parse must be serialized by the caller; once the last Parse returns,
// the table is immutable and Find is safe for concurrent readers.
package proptab

import (
	"net/netip"
	"strings"

	json "github.com/goccy/go-json"
)

// Config holds table construction options. The zero value selects the
// defaults.
type Config struct {
	HashAlgorithm  int // fingerprint algorithm: 1=xxHash3, 2=FNV1a, 3=Blake2b
	ArenaChunkSize int // allocation chunk for row and token storage (default 64KB)
}

// Table owns an ordered list of column properties and the packed rows
// parsed from delimited source text. All row bytes and interned token text
// live in the table's arena and remain valid until the table itself is
// unreachable.
type Table struct {
	config  Config
	columns []Property
	rowSize int
	arena   *arena
	space   Space
	diags   []Diag
	frozen  bool // set by the first Parse; the schema is fixed afterwards
}

// New returns an empty table.
func New(config Config) *Table {
	if config.HashAlgorithm == 0 {
		config.HashAlgorithm = AlgXXHash3
	}
	if config.ArenaChunkSize == 0 {
		config.ArenaChunkSize = 64 * 1024
	}
	return &Table{config: config, arena: newArena(config.ArenaChunkSize)}
}

// AddColumn appends p to the column list, assigning it the next column
// index and the current row size as its byte offset. Offsets therefore
// partition the row contiguously in registration order. Adding a column
// after parsing has begun returns ErrSchemaFrozen.
func (t *Table) AddColumn(p Property) error {
	if t.frozen {
		return ErrSchemaFrozen
	}
	p.register(len(t.columns), t.rowSize)
	if b, ok := p.(interface{ bindArena(*arena) }); ok {
		b.bindArena(t.arena)
	}
	t.rowSize += p.Size()
	t.columns = append(t.columns, p)
	return nil
}

// Parse splits src into newline-terminated lines and builds one row per
// line: the leading field is the address range, the remaining fields feed
// the registered columns in order. Data problems never abort the parse —
// a bad range skips its line, a bad field keeps its zero bytes, a line
// with too few fields fails its remaining columns — and each is recorded
// as a diagnostic. The error return is reserved for structural misuse.
func (t *Table) Parse(src string) error {
	if len(t.columns) == 0 {
		return ErrNoColumns
	}
	t.frozen = true

	for lineNo := 1; src != ""; lineNo++ {
		var line string
		line, src, _ = strings.Cut(src, "\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		rangeTok, rest, found := strings.Cut(line, ",")
		r, err := ParseRange(rangeTok)
		if err != nil {
			t.diags = append(t.diags, Diag{
				Line: lineNo, Column: -1, Token: strings.TrimSpace(rangeTok), Err: err,
			})
			continue
		}

		data, _ := t.arena.alloc(t.rowSize)
		row := Row{data: data}
		cur := cursor{rest: rest, more: found}
		for _, col := range t.columns {
			text, ok := cur.next()
			if !ok {
				t.diags = append(t.diags, Diag{
					Line: lineNo, Column: col.Index(), Field: col.Name(), Err: ErrMissingField,
				})
				continue
			}
			tok := Token{Text: text}
			if col.NeedsLocalizedToken() {
				tok.Interned = t.arena.intern(text)
			}
			if err := col.Parse(tok, row.SpanFor(col)); err != nil {
				t.diags = append(t.diags, Diag{
					Line: lineNo, Column: col.Index(), Field: col.Name(), Token: text, Err: err,
				})
			}
		}
		t.space.Mark(r, row)
	}
	return nil
}

// Find returns the row whose marked range contains addr.
func (t *Table) Find(addr netip.Addr) (Row, bool) {
	return t.space.Find(addr)
}

// Len returns the number of disjoint ranges in the table.
func (t *Table) Len() int { return t.space.Len() }

// Column returns the i'th registered property, for callers needing
// variant-specific accessors such as FlagGroup.IsSet.
func (t *Table) Column(i int) Property { return t.columns[i] }

// Columns returns the number of registered columns.
func (t *Table) Columns() int { return len(t.columns) }

// RowSize returns the packed byte width of one row: the sum of all column
// sizes.
func (t *Table) RowSize() int { return t.rowSize }

// Diags returns the diagnostics accumulated across all Parse calls, in
// encounter order. Line numbers restart at 1 for each call.
func (t *Table) Diags() []Diag { return t.diags }

// DiagJSON renders the accumulated diagnostics as a JSON array.
func (t *Table) DiagJSON() ([]byte, error) {
	if t.diags == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.diags)
}
