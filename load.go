// Source loading with transparent decompression.
//
// Property tables are often built from exported network inventories that
// arrive compressed. ParseFile sniffs the magic bytes and inflates zstd or
// gzip data before handing it to Parse; anything else is treated as plain
// text. ParseFiles reads several files concurrently but parses them
// serially in argument order, since Parse itself is single-threaded.
package proptab

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Shared zstd decoder — documented as safe for concurrent use, and
// construction is expensive enough (internal state tables) that one per
// ParseFile call would dominate small loads.
var zstdDecoder, _ = zstd.NewReader(nil)

// expand transparently decompresses gzip or zstd source data. Data with
// neither magic is returned as is.
func expand(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		out, err := zstdDecoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %v", ErrDecompress, err)
		}
		return out, nil
	case bytes.HasPrefix(data, gzipMagic):
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: gzip: %v", ErrDecompress, err)
		}
		defer r.Close()
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w: gzip: %v", ErrDecompress, err)
		}
		return out, nil
	}
	return data, nil
}

// ParseFile loads one source file, decompressing if needed, and parses it
// into the table.
func (t *Table) ParseFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if data, err = expand(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return t.Parse(string(data))
}

// ParseFiles reads every path concurrently, then parses the sources in
// argument order. If any read fails nothing is parsed.
func (t *Table) ParseFiles(paths ...string) error {
	srcs := make([][]byte, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if data, err = expand(data); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			srcs[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, src := range srcs {
		if err := t.Parse(string(src)); err != nil {
			return err
		}
	}
	return nil
}
