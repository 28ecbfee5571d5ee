// Field tokenizer for delimited source lines.
//
// One source line is a range specification followed by one field per
// registered column. Fields are comma-separated and may be wrapped in
// double quotes, in which case separators inside the quotes are ordinary
// text. This is deliberately not a CSV grammar: quotes delimit a field,
// they do not escape embedded quotes, and fields never span lines.
package proptab

import "strings"

// Separators for source input.
const (
	Sep   = ',' // field separator
	Quote = '"' // field quote
)

// SubSep joins flag names inside a FlagGroup field.
const SubSep = ";"

// cursor walks the fields of a single source line. The zero value is an
// exhausted cursor.
type cursor struct {
	rest string
	more bool // at least one field remains, possibly empty
}

func newCursor(line string) cursor {
	return cursor{rest: line, more: line != ""}
}

// next extracts the next field, honoring quoted separators, and advances
// the cursor past the field and its separator. The field is trimmed of
// surrounding whitespace and then of one layer of quotes. A field that is
// empty after trimming is returned as "" with ok still true; ok is false
// only when the line has no further fields, which is how the table tells
// an empty trailing field apart from a missing one.
func (c *cursor) next() (field string, ok bool) {
	if !c.more {
		return "", false
	}
	cut, found := len(c.rest), false
	inQuote := false
scan:
	for i := 0; i < len(c.rest); i++ {
		switch c.rest[i] {
		case Quote:
			inQuote = !inQuote
		case Sep:
			if !inQuote {
				cut, found = i, true
				break scan
			}
		}
	}
	field = c.rest[:cut]
	if found {
		c.rest = c.rest[cut+1:]
	} else {
		c.rest = ""
		c.more = false
	}
	return trimField(field), true
}

// trimField removes surrounding whitespace, then one leading and one
// trailing quote if present. Quotes are a field delimiter, not an escape
// mechanism, so exactly one layer comes off.
func trimField(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 0 && s[0] == Quote {
		s = s[1:]
	}
	if len(s) > 0 && s[len(s)-1] == Quote {
		s = s[:len(s)-1]
	}
	return s
}
