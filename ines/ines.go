// Package ines reads and writes roms in the iNES / NES 2.0 file format, used
// for the distribution of NES binary programs.
package ines

import (
	"bytes"
	"io"

	"github.com/go-faster/errors"
	"github.com/spf13/afero"
)

// padding value for partial PRG/CHR units.
const fillByte = 0xFF

type Rom struct {
	Header
	Trainer []byte // Trainer, 512 bytes if present, or empty.
	PRG     []byte // PRG is PRG ROM data
	CHR     []byte // CHR is CHR ROM data
}

// Open loads a rom from a file of fs.
func Open(fs afero.Fs, path string) (*Rom, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rom := new(Rom)
	if _, err := rom.ReadFrom(f); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return rom, nil
}

// ReadFrom implements io.ReaderFrom interface
func (rom *Rom) ReadFrom(r io.Reader) (int64, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	n := int64(len(buf))

	// header
	var off int
	rom.Header, err = DecodeHeader(buf)
	if err != nil {
		return n, errors.Wrap(err, "decode header")
	}
	off += HeaderSize

	// trainer
	rom.Trainer = nil
	if rom.HasTrainer {
		if len(buf) < off+TrainerSize {
			return n, errors.Wrap(ErrMalformedHeader, "incomplete TRAINER section")
		}
		rom.Trainer = buf[off : off+TrainerSize]
		off += TrainerSize
	}

	// PRG rom data
	if len(buf) < off+rom.PRGSize {
		return n, errors.Wrap(ErrMalformedHeader, "incomplete PRG section")
	}
	rom.PRG = buf[off : off+rom.PRGSize]
	off += rom.PRGSize

	// CHR rom data
	if len(buf) < off+rom.CHRSize {
		return n, errors.Wrap(ErrMalformedHeader, "incomplete CHR section")
	}
	rom.CHR = buf[off : off+rom.CHRSize]

	return n, nil
}

// EncodeHeader encodes the rom header, with sizes and trainer flag derived
// from the rom payloads.
func (rom *Rom) EncodeHeader() ([HeaderSize]byte, error) {
	switch len(rom.Trainer) {
	case 0, TrainerSize:
	default:
		return [HeaderSize]byte{}, errors.Wrapf(ErrInvalidField, "trainer is %d bytes, want %d", len(rom.Trainer), TrainerSize)
	}

	hdr := rom.Header
	hdr.PRGSize = len(rom.PRG)
	hdr.CHRSize = len(rom.CHR)
	hdr.HasTrainer = len(rom.Trainer) != 0
	return hdr.Encode()
}

// WriteTo implements io.WriterTo interface. PRG and CHR are padded up to
// their size unit.
func (rom *Rom) WriteTo(w io.Writer) (int64, error) {
	raw, err := rom.EncodeHeader()
	if err != nil {
		return 0, err
	}

	var n int64
	write := func(p []byte, padded int) error {
		nw, err := w.Write(p)
		n += int64(nw)
		if err != nil {
			return err
		}
		if pad := padded - len(p); pad > 0 {
			nw, err = w.Write(bytes.Repeat([]byte{fillByte}, pad))
			n += int64(nw)
		}
		return err
	}

	if err := write(raw[:], HeaderSize); err != nil {
		return n, err
	}
	if err := write(rom.Trainer, len(rom.Trainer)); err != nil {
		return n, err
	}
	if err := write(rom.PRG, PaddedSize(len(rom.PRG), PRGUnit)); err != nil {
		return n, err
	}
	if err := write(rom.CHR, PaddedSize(len(rom.CHR), CHRUnit)); err != nil {
		return n, err
	}
	return n, nil
}

// Bytes returns the serialized rom.
func (rom *Rom) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := rom.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
