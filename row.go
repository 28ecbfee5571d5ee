// Row view over packed record storage.
package proptab

// Row is a non-owning view of one packed record. The backing bytes live in
// the table's arena and are immutable once the line that produced them has
// finished parsing. A Row has no behavior of its own beyond exposing the
// sub-span a property's field occupies; interpreting those bytes is the
// property's job.
type Row struct {
	data []byte
}

// SpanFor returns the bytes of p's field within the row.
func (r Row) SpanFor(p Property) []byte {
	return r.data[p.Offset() : p.Offset()+p.Size()]
}

// Valid reports whether the row refers to storage. The zero Row is not
// valid; Find returns one alongside ok == false.
func (r Row) Valid() bool { return r.data != nil }
