// Interned-index column variant.
//
// A Tag column stores a one-byte index into a dictionary of distinct
// tokens built incrementally during parse: the first occurrence of a token
// claims the next free index, later occurrences (any casing) reuse it. The
// dictionary is per-column, closed once parsing ends, and not known in
// advance.
package proptab

import (
	"fmt"
	"strings"
)

// TagCap is the number of distinct values a Tag column can hold, bounded
// by its one-byte index. A token that would grow the dictionary past this
// is a field parse failure.
const TagCap = 256

type Tag struct {
	column
	names []string         // dictionary in index order, first-seen casing
	ids   map[string]uint8 // case-folded token → index
}

func NewTag(name string) *Tag {
	return &Tag{column: newColumn(name), ids: make(map[string]uint8)}
}

func (p *Tag) Size() int { return 1 }

func (p *Tag) Parse(tok Token, out []byte) error {
	if tok.Text == "" {
		return fmt.Errorf("%w for tag column %q", ErrEmptyToken, p.name)
	}
	key := strings.ToLower(tok.Text)
	id, ok := p.ids[key]
	if !ok {
		if len(p.names) >= TagCap {
			return fmt.Errorf("%w: column %q at %d entries", ErrDictFull, p.name, TagCap)
		}
		id = uint8(len(p.names))
		p.names = append(p.names, tok.Text)
		p.ids[key] = id
	}
	out[0] = id
	return nil
}

// ID returns the dictionary index stored in row.
func (p *Tag) ID(row Row) uint8 { return row.SpanFor(p)[0] }

// Value returns the dictionary token stored in row, in the casing of its
// first occurrence.
func (p *Tag) Value(row Row) string { return p.names[p.ID(row)] }

// Distinct returns the number of dictionary entries built so far.
func (p *Tag) Distinct() int { return len(p.names) }
