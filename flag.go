// Boolean and bitset column variants.
package proptab

import (
	"fmt"
	"slices"
	"strings"
)

// Flag is a one-byte boolean column. Its field is parsed from a fixed pair
// of literal tokens: accept stores 1, reject stores 0, anything else is a
// field parse failure.
type Flag struct {
	column
	accept string
	reject string
}

func NewFlag(name, accept, reject string) *Flag {
	return &Flag{column: newColumn(name), accept: accept, reject: reject}
}

func (f *Flag) Size() int { return 1 }

func (f *Flag) Parse(tok Token, out []byte) error {
	switch tok.Text {
	case f.accept:
		out[0] = 1
	case f.reject:
		out[0] = 0
	default:
		return fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownFlag, tok.Text, f.accept, f.reject)
	}
	return nil
}

// Value reports the flag stored in row.
func (f *Flag) Value(row Row) bool { return row.SpanFor(f)[0] != 0 }

// NoFlags is the sentinel token meaning "no flags set" in a FlagGroup
// field.
const NoFlags = "-"

// FlagGroup packs a fixed, ordered list of named flags into a bitset, one
// bit per name in list order. A field is either NoFlags or flag names
// joined by SubSep; names match case-insensitively. An unknown name is a
// field parse failure.
type FlagGroup struct {
	column
	names []string
}

func NewFlagGroup(name string, names []string) *FlagGroup {
	return &FlagGroup{column: newColumn(name), names: slices.Clone(names)}
}

// Size grows with the flag count: one byte per eight names.
func (g *FlagGroup) Size() int { return (len(g.names) + 7) / 8 }

func (g *FlagGroup) Parse(tok Token, out []byte) error {
	if tok.Text == NoFlags {
		return nil // all-zero bitset
	}
	for rest := tok.Text; rest != ""; {
		var sub string
		sub, rest, _ = strings.Cut(rest, SubSep)
		i := slices.IndexFunc(g.names, func(name string) bool {
			return strings.EqualFold(name, sub)
		})
		if i < 0 {
			return fmt.Errorf("%w: %q", ErrUnknownTag, sub)
		}
		out[i/8] |= 1 << (i % 8)
	}
	return nil
}

// IsSet reports whether flag bit i is set in row.
func (g *FlagGroup) IsSet(i int, row Row) bool {
	return row.SpanFor(g)[i/8]&(1<<(i%8)) != 0
}

// Names returns the flag names in bit order.
func (g *FlagGroup) Names() []string { return slices.Clone(g.names) }
