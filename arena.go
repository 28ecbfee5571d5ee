// Bump allocation for row storage and interned tokens.
//
// Rows and the token text they reference must outlive the Parse call that
// produced them, while the source text does not. Both live in the table's
// arena: a chunk list that only grows. Spans handed out never move and are
// never individually freed; everything is released together when the table
// becomes unreachable.
package proptab

// ref locates interned text inside an arena as an (offset, length) pair.
// Offsets are stable for the life of the arena, so a ref can be stored in
// a row's fixed-size binary field and resolved later.
type ref struct {
	off uint32
	n   uint32
}

type arena struct {
	chunks    [][]byte
	base      []int // global offset of each chunk's first byte
	chunkSize int
}

func newArena(chunkSize int) *arena {
	return &arena{chunkSize: chunkSize}
}

// alloc returns a zeroed span of n bytes and its global offset. The span
// never crosses a chunk boundary, so it stays contiguous and immobile.
func (a *arena) alloc(n int) ([]byte, uint32) {
	i := len(a.chunks) - 1
	if i < 0 || len(a.chunks[i])+n > cap(a.chunks[i]) {
		size := a.chunkSize
		if n > size {
			size = n
		}
		base := 0
		if i >= 0 {
			base = a.base[i] + cap(a.chunks[i])
		}
		a.chunks = append(a.chunks, make([]byte, 0, size))
		a.base = append(a.base, base)
		i++
	}
	c := a.chunks[i]
	a.chunks[i] = c[:len(c)+n]
	return a.chunks[i][len(c) : len(c)+n], uint32(a.base[i] + len(c))
}

// intern copies s into the arena and returns a stable reference to it.
func (a *arena) intern(s string) ref {
	if s == "" {
		return ref{}
	}
	span, off := a.alloc(len(s))
	copy(span, s)
	return ref{off: off, n: uint32(len(s))}
}

// resolve returns the bytes an interned reference points at.
func (a *arena) resolve(r ref) []byte {
	if r.n == 0 {
		return nil
	}
	// Binary search for the chunk containing the offset.
	lo, hi := 0, len(a.chunks)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if a.base[mid] <= int(r.off) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	start := int(r.off) - a.base[lo]
	return a.chunks[lo][start : start+int(r.n)]
}
