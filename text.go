// Reference-to-interned-text column variant.
package proptab

import "encoding/binary"

// Text stores an (offset, length) reference to token text. Raw input does
// not outlive Parse, so the table interns the token into its arena first
// (NeedsLocalizedToken) and the field holds a reference to that durable
// copy — the text itself is never duplicated into the row.
type Text struct {
	column
	arena *arena
}

func NewText(name string) *Text {
	return &Text{column: newColumn(name)}
}

// Size is the packed width of a ref: 4 bytes of offset, 4 of length.
func (p *Text) Size() int { return 8 }

func (p *Text) NeedsLocalizedToken() bool { return true }

func (p *Text) Parse(tok Token, out []byte) error {
	binary.LittleEndian.PutUint32(out[0:4], tok.Interned.off)
	binary.LittleEndian.PutUint32(out[4:8], tok.Interned.n)
	return nil
}

// Value dereferences the text stored in row.
func (p *Text) Value(row Row) string {
	span := row.SpanFor(p)
	r := ref{
		off: binary.LittleEndian.Uint32(span[0:4]),
		n:   binary.LittleEndian.Uint32(span[4:8]),
	}
	return string(p.arena.resolve(r))
}

// bindArena is called by AddColumn so Value can resolve references.
func (p *Text) bindArena(a *arena) { p.arena = a }
