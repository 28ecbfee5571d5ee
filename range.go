// Address range grammar.
package proptab

import (
	"fmt"
	"net/netip"
	"strings"
)

// Range is an inclusive [Lo, Hi] span of addresses in one family.
type Range struct {
	Lo, Hi netip.Addr
}

// ParseRange parses a textual range: CIDR ("10.1.1.0/24", host bits are
// masked off), an explicit "lo-hi" pair, or a single address. Both IPv4
// and IPv6 are accepted; a lo-hi pair must stay in one family with
// lo <= hi.
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.ContainsRune(s, '/'):
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q", ErrBadRange, s)
		}
		p = p.Masked()
		return Range{Lo: p.Addr(), Hi: lastAddr(p)}, nil
	case strings.ContainsRune(s, '-'):
		loTok, hiTok, _ := strings.Cut(s, "-")
		lo, loErr := netip.ParseAddr(strings.TrimSpace(loTok))
		hi, hiErr := netip.ParseAddr(strings.TrimSpace(hiTok))
		if loErr != nil || hiErr != nil || lo.Is4() != hi.Is4() || hi.Less(lo) {
			return Range{}, fmt.Errorf("%w: %q", ErrBadRange, s)
		}
		return Range{Lo: lo, Hi: hi}, nil
	default:
		a, err := netip.ParseAddr(s)
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q", ErrBadRange, s)
		}
		return Range{Lo: a, Hi: a}, nil
	}
}

// Contains reports whether addr falls inside the range.
func (r Range) Contains(addr netip.Addr) bool {
	return r.Lo.Compare(addr) <= 0 && addr.Compare(r.Hi) <= 0
}

func (r Range) String() string {
	if r.Lo == r.Hi {
		return r.Lo.String()
	}
	return r.Lo.String() + "-" + r.Hi.String()
}

// lastAddr returns the highest address in p. p must be masked.
func lastAddr(p netip.Prefix) netip.Addr {
	if p.Addr().Is4() {
		a := p.Addr().As4()
		setHostBits(a[:], p.Bits())
		return netip.AddrFrom4(a)
	}
	a := p.Addr().As16()
	setHostBits(a[:], p.Bits())
	return netip.AddrFrom16(a)
}

// setHostBits sets every bit past the prefix length.
func setHostBits(b []byte, prefix int) {
	for i := range b {
		switch lo := 8 * i; {
		case prefix <= lo:
			b[i] = 0xff
		case prefix < lo+8:
			b[i] |= 0xff >> (prefix - lo)
		}
	}
}
