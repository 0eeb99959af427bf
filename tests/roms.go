// Package tests provides helpers to build ROM fixtures for tests.
package tests

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"mapper474/ines"
)

// Pattern returns n bytes of a deterministic, non-repeating pattern. Fixtures
// built with different seeds differ.
func Pattern(n int, seed byte) []byte {
	p := make([]byte, n)
	x := uint32(seed)*2654435761 + 1
	for i := range p {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		p[i] = byte(x)
	}
	return p
}

// PRG returns a 64k PRG image whose first 16k are zero, so that it survives
// a combine/split round trip.
func PRG(seed byte) []byte {
	prg := Pattern(0x10000, seed)
	clear(prg[:0x4000])
	return prg
}

// CHR returns an 8k CHR image.
func CHR(seed byte) []byte {
	return Pattern(0x2000, seed)
}

// Container returns a serialized container for the given mapper and
// submapper, with a 48k PRG and an 8k CHR.
func Container(tb testing.TB, mapper uint16, submapper uint8) []byte {
	tb.Helper()

	rom := &ines.Rom{
		Header: ines.Header{
			Version:   ines.VersionNES20,
			Mapper:    mapper,
			Submapper: submapper,
			Region:    ines.Pal,
			Mirroring: ines.Vertical,
		},
		PRG: Pattern(0xC000, 1),
		CHR: CHR(2),
	}
	buf, err := rom.Bytes()
	if err != nil {
		tb.Fatalf("failed to build container: %s", err)
	}
	return buf
}

// WriteFiles writes all files into fs, creating parent directories.
func WriteFiles(tb testing.TB, fs afero.Fs, files map[string][]byte) {
	tb.Helper()

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for path, data := range files {
		g.Go(func() error {
			if err := fs.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
				return err
			}
			return afero.WriteFile(fs, path, data, 0644)
		})
	}

	if err := g.Wait(); err != nil {
		tb.Fatalf("failed to write fixtures: %s", err)
	}
}

// Exists reports whether path exists in fs.
func Exists(tb testing.TB, fs afero.Fs, path string) bool {
	tb.Helper()

	ok, err := afero.Exists(fs, path)
	if err != nil {
		tb.Fatal(err)
	}
	return ok
}
