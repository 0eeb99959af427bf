// Package layout converts PRG and CHR payloads between their external
// (raw file) layout and the layout stored in a mapper 474 container.
//
// The mapper does not decode the first 16k of the 64k PRG address space, so
// a container only stores the last 48k. That region is dropped when packing
// and zero-filled when unpacking.
package layout

import (
	"github.com/go-faster/errors"
)

const (
	PRGSize       = 0x10000 // external PRG size (64k)
	PRGSkip       = 0x4000  // leading PRG bytes not stored (16k)
	StoredPRGSize = PRGSize - PRGSkip
	CHRSize       = 0x2000 // CHR size (8k), identical on both ends
)

var ErrSizeMismatch = errors.New("size mismatch")

// PackPRG returns the stored form of a 64k PRG image: its last 48k.
func PackPRG(full []byte) ([]byte, error) {
	if len(full) != PRGSize {
		return nil, errors.Wrapf(ErrSizeMismatch, "PRG is %d bytes, want %d", len(full), PRGSize)
	}
	stored := make([]byte, StoredPRGSize)
	copy(stored, full[PRGSkip:])
	return stored, nil
}

// UnpackPRG rebuilds the external PRG image from its stored form, by
// prepending PRGSkip zero bytes. A stored PRG of any length is accepted, the
// result is always PRGSkip bytes longer.
func UnpackPRG(stored []byte) []byte {
	full := make([]byte, PRGSkip+len(stored))
	copy(full[PRGSkip:], stored)
	return full
}

// FitPRG truncates or zero-extends prg to PRGSize bytes. prg is returned
// unchanged if it already has the right size.
func FitPRG(prg []byte) []byte {
	if len(prg) == PRGSize {
		return prg
	}
	fit := make([]byte, PRGSize)
	copy(fit, prg)
	return fit
}

// PackCHR returns chr unchanged once its size is checked.
func PackCHR(chr []byte) ([]byte, error) {
	if len(chr) != CHRSize {
		return nil, errors.Wrapf(ErrSizeMismatch, "CHR is %d bytes, want %d", len(chr), CHRSize)
	}
	return chr, nil
}

// UnpackCHR is the inverse of PackCHR, which is the identity.
func UnpackCHR(chr []byte) ([]byte, error) {
	return PackCHR(chr)
}
