// Schema fingerprint algorithms.
//
// A table's fingerprint is a 16 hex character hash over its canonical
// column layout: index, variant, name, size, and offset per column, plus
// the variant detail that changes parsing (a Flag's literal pair, a
// FlagGroup's flag names). Callers store it next to exported data to
// detect drift between the table that wrote the data and a schema
// descriptor loaded later.
package proptab

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Fingerprint algorithm constants.
const (
	AlgXXHash3 = 1 // Default, fastest
	AlgFNV1a   = 2 // No external dependencies
	AlgBlake2b = 3 // Best distribution
)

// Fingerprint returns the schema fingerprint for the table's current
// column layout, using the algorithm from its Config. An empty table has a
// fingerprint too; it simply hashes an empty layout.
func (t *Table) Fingerprint() string {
	var b strings.Builder
	for _, c := range t.columns {
		fmt.Fprintf(&b, "%d:%s:%s:%d:%d\n", c.Index(), describe(c), c.Name(), c.Size(), c.Offset())
	}
	return fingerprint(b.String(), t.config.HashAlgorithm)
}

// describe names a property variant together with the construction detail
// that affects parsing.
func describe(p Property) string {
	switch v := p.(type) {
	case *Flag:
		return "flag(" + v.accept + "|" + v.reject + ")"
	case *FlagGroup:
		return "flaggroup(" + strings.Join(v.names, SubSep) + ")"
	case *Tag:
		return "tag"
	case *Text:
		return "text"
	}
	return "unknown"
}

// fingerprint hashes the canonical layout text to 16 hex characters using
// the given algorithm.
func fingerprint(layout string, alg int) string {
	switch alg {
	case AlgXXHash3:
		return fmt.Sprintf("%016x", xxh3.HashString(layout))
	case AlgFNV1a:
		h := fnv.New64a()
		h.Write([]byte(layout))
		return fmt.Sprintf("%016x", h.Sum64())
	case AlgBlake2b:
		h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
		h.Write([]byte(layout))
		return fmt.Sprintf("%016x", h.Sum(nil))
	default:
		return ""
	}
}
