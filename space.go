// Range-keyed row container.
//
// Space is the associative container the table delegates range bookkeeping
// to: disjoint inclusive ranges kept in sorted order, each carrying one
// row. Marks may arrive in any order and later marks win — an overlapping
// mark trims the ranges already present, splitting one that surrounds the
// new range. Adjacent ranges are never merged even when they carry the
// same row; every mark keeps its own entry.
//
// IPv4 and IPv6 ranges coexist: netip.Addr ordering puts all v4 addresses
// before all v6, so the families occupy disjoint regions of one sorted
// slice and can never partially overlap each other.
package proptab

import (
	"net/netip"
	"sort"
)

type Space struct {
	spans []span
}

type span struct {
	r   Range
	row Row
}

// Mark associates row with every address in r, overwriting any existing
// association inside r.
func (s *Space) Mark(r Range, row Row) {
	// First existing span that could overlap: the leftmost with Hi >= r.Lo.
	i := sort.Search(len(s.spans), func(i int) bool {
		return s.spans[i].r.Hi.Compare(r.Lo) >= 0
	})

	var ins []span
	// A span straddling r.Lo survives to the left of the new range.
	if i < len(s.spans) && s.spans[i].r.Lo.Compare(r.Lo) < 0 {
		left := s.spans[i]
		left.r.Hi = r.Lo.Prev()
		ins = append(ins, left)
	}
	ins = append(ins, span{r: r, row: row})

	// Consume every span overlapped by r; the last one may stick out past
	// r.Hi and survive as a trimmed tail.
	j := i
	for j < len(s.spans) && s.spans[j].r.Lo.Compare(r.Hi) <= 0 {
		j++
	}
	if j > i {
		if last := s.spans[j-1]; last.r.Hi.Compare(r.Hi) > 0 {
			right := last
			right.r.Lo = r.Hi.Next()
			ins = append(ins, right)
		}
	}

	tail := append(ins, s.spans[j:]...)
	s.spans = append(s.spans[:i], tail...)
}

// Find returns the row whose range contains addr.
func (s *Space) Find(addr netip.Addr) (Row, bool) {
	i := sort.Search(len(s.spans), func(i int) bool {
		return s.spans[i].r.Hi.Compare(addr) >= 0
	})
	if i < len(s.spans) && s.spans[i].r.Contains(addr) {
		return s.spans[i].row, true
	}
	return Row{}, false
}

// Len returns the number of disjoint ranges currently stored.
func (s *Space) Len() int { return len(s.spans) }

// Ranges returns the stored ranges in address order.
func (s *Space) Ranges() []Range {
	out := make([]Range, len(s.spans))
	for i, sp := range s.spans {
		out[i] = sp.r
	}
	return out
}
