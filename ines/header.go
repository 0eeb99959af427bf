package ines

import (
	"math"

	"github.com/go-faster/errors"
)

const (
	Magic       = "NES\x1a"
	HeaderSize  = 16
	TrainerSize = 512
	PRGUnit     = 16384 // PRG ROM size unit (16k)
	CHRUnit     = 8192  // CHR ROM size unit (8k)

	MaxMapper    = 4095
	MaxSubmapper = 15

	// largest unit count representable in the 12-bit unit notation, 0xF
	// in the MSB nibble selects the exponent-multiplier notation.
	maxUnits = 0xEFF
)

var (
	ErrMalformedHeader = errors.New("malformed header")
	ErrInvalidField    = errors.New("invalid header field")
)

// Header holds the decoded fields of an iNES / NES 2.0 header.
// See https://www.nesdev.org/wiki/NES_2.0
type Header struct {
	Version         Version
	Mapper          uint16
	Submapper       uint8
	Console         ConsoleType
	ExtendedConsole ExtendedConsoleType // only when Console is ConsoleExtended
	VsPPU           uint8               // only when Console is ConsoleVsSystem
	VsHardware      uint8               // only when Console is ConsoleVsSystem
	Region          Region
	Mirroring       Mirroring
	FourScreen      bool
	Battery         bool
	HasTrainer      bool

	// RAM sizes, as shift counts (size is 64<<shift, 0 means none).
	PRGRAMShift   uint8
	PRGNVRAMShift uint8
	CHRRAMShift   uint8
	CHRNVRAMShift uint8

	MiscROMs        uint8
	ExpansionDevice uint8

	PRGSize int // PRG ROM size, in bytes
	CHRSize int // CHR ROM size, in bytes
}

// IsNES20 reports whether the header uses the extended NES 2.0 format.
func (hdr *Header) IsNES20() bool {
	return hdr.Version == VersionNES20
}

// Encode encodes the header into its 16 bytes representation.
func (hdr *Header) Encode() ([HeaderSize]byte, error) {
	var raw [HeaderSize]byte
	if err := hdr.validate(); err != nil {
		return raw, err
	}

	prgUnits, err := sizeUnits(hdr.PRGSize, PRGUnit)
	if err != nil {
		return raw, errors.Wrap(err, "PRG size")
	}
	chrUnits, err := sizeUnits(hdr.CHRSize, CHRUnit)
	if err != nil {
		return raw, errors.Wrap(err, "CHR size")
	}

	copy(raw[:4], Magic)
	raw[4] = uint8(prgUnits)
	raw[5] = uint8(chrUnits)

	raw[6] = uint8(hdr.Mapper&0x0F) << 4
	raw[6] |= uint8(hdr.Mirroring) & 0x01
	setBit(&raw[6], 1, hdr.Battery)
	setBit(&raw[6], 2, hdr.HasTrainer)
	setBit(&raw[6], 3, hdr.FourScreen)

	raw[7] = uint8(hdr.Mapper&0xF0) | uint8(hdr.Console)

	if hdr.Version == VersionINES {
		if prgUnits > 0xFF || chrUnits > 0xFF {
			return raw, errors.Wrap(ErrInvalidField, "ROM too large for iNES")
		}
		if hdr.Region == Pal {
			raw[9] = 0x01
		}
		return raw, nil
	}

	raw[7] |= 0x08
	raw[8] = nibbles(uint8(hdr.Mapper>>8), hdr.Submapper)
	raw[9] = nibbles(uint8(prgUnits>>8), uint8(chrUnits>>8))
	raw[10] = nibbles(hdr.PRGRAMShift, hdr.PRGNVRAMShift)
	raw[11] = nibbles(hdr.CHRRAMShift, hdr.CHRNVRAMShift)
	raw[12] = uint8(hdr.Region)

	switch hdr.Console {
	case ConsoleVsSystem:
		raw[13] = nibbles(hdr.VsPPU, hdr.VsHardware)
	case ConsoleExtended:
		raw[13] = uint8(hdr.ExtendedConsole)
	}

	raw[14] = hdr.MiscROMs
	raw[15] = hdr.ExpansionDevice
	return raw, nil
}

func (hdr *Header) validate() error {
	switch {
	case hdr.Version > VersionNES20:
		return errors.Wrapf(ErrInvalidField, "version %d", hdr.Version)
	case hdr.Mapper > MaxMapper:
		return errors.Wrapf(ErrInvalidField, "mapper %d not in [0,%d]", hdr.Mapper, MaxMapper)
	case hdr.Version == VersionINES && hdr.Mapper > 0xFF:
		return errors.Wrapf(ErrInvalidField, "mapper %d not representable in iNES", hdr.Mapper)
	case hdr.Submapper > MaxSubmapper:
		return errors.Wrapf(ErrInvalidField, "submapper %d not in [0,%d]", hdr.Submapper, MaxSubmapper)
	case hdr.Region >= numRegions:
		return errors.Wrapf(ErrInvalidField, "region %d", hdr.Region)
	case hdr.Mirroring >= numMirrorings:
		return errors.Wrapf(ErrInvalidField, "mirroring %d", hdr.Mirroring)
	case hdr.Console >= numConsoleTypes:
		return errors.Wrapf(ErrInvalidField, "console type %d", hdr.Console)
	case hdr.ExtendedConsole >= numExtConsoles:
		return errors.Wrapf(ErrInvalidField, "extended console type %d", hdr.ExtendedConsole)
	case hdr.VsPPU > 0x0F || hdr.VsHardware > 0x0F:
		return errors.Wrap(ErrInvalidField, "vs. system type")
	case hdr.PRGRAMShift > 0x0F || hdr.PRGNVRAMShift > 0x0F:
		return errors.Wrap(ErrInvalidField, "PRG RAM shift")
	case hdr.CHRRAMShift > 0x0F || hdr.CHRNVRAMShift > 0x0F:
		return errors.Wrap(ErrInvalidField, "CHR RAM shift")
	case hdr.MiscROMs > 0x03:
		return errors.Wrapf(ErrInvalidField, "misc ROMs count %d", hdr.MiscROMs)
	case hdr.ExpansionDevice > 0x3F:
		return errors.Wrapf(ErrInvalidField, "expansion device %d", hdr.ExpansionDevice)
	}
	return nil
}

// DecodeHeader decodes the 16 first bytes of p.
func DecodeHeader(p []byte) (Header, error) {
	var hdr Header
	if len(p) < HeaderSize {
		return hdr, errors.Wrapf(ErrMalformedHeader, "too small, needs %d bytes", HeaderSize)
	}
	if string(p[:4]) != Magic {
		return hdr, errors.Wrap(ErrMalformedHeader, "invalid magic number")
	}

	hdr.Mirroring = Mirroring(p[6] & 0x01)
	hdr.Battery = getBit(p[6], 1)
	hdr.HasTrainer = getBit(p[6], 2)
	hdr.FourScreen = getBit(p[6], 3)
	hdr.Mapper = uint16(p[6]>>4) | uint16(p[7]&0xF0)
	hdr.Console = ConsoleType(p[7] & 0x03)

	switch p[7] & 0x0C {
	case 0x00:
		hdr.Version = VersionINES
		hdr.PRGSize = int(p[4]) * PRGUnit
		hdr.CHRSize = int(p[5]) * CHRUnit
		if getBit(p[9], 0) {
			hdr.Region = Pal
		}
		return hdr, nil
	case 0x08:
		hdr.Version = VersionNES20
	default:
		return hdr, errors.Wrapf(ErrMalformedHeader, "unknown format identifier %#02x", p[7]&0x0C)
	}

	hdr.Mapper |= uint16(lo(p[8])) << 8
	hdr.Submapper = hi(p[8])

	var err error
	if hdr.PRGSize, err = decodeSize(p[4], lo(p[9]), PRGUnit); err != nil {
		return hdr, errors.Wrap(err, "PRG size")
	}
	if hdr.CHRSize, err = decodeSize(p[5], hi(p[9]), CHRUnit); err != nil {
		return hdr, errors.Wrap(err, "CHR size")
	}

	hdr.PRGRAMShift, hdr.PRGNVRAMShift = lo(p[10]), hi(p[10])
	hdr.CHRRAMShift, hdr.CHRNVRAMShift = lo(p[11]), hi(p[11])
	hdr.Region = Region(p[12] & 0x03)

	switch hdr.Console {
	case ConsoleVsSystem:
		hdr.VsPPU, hdr.VsHardware = lo(p[13]), hi(p[13])
	case ConsoleExtended:
		hdr.ExtendedConsole = ExtendedConsoleType(lo(p[13]))
		if hdr.ExtendedConsole >= numExtConsoles {
			return hdr, errors.Wrapf(ErrMalformedHeader, "extended console type %d", hdr.ExtendedConsole)
		}
	}

	hdr.MiscROMs = p[14] & 0x03
	hdr.ExpansionDevice = p[15] & 0x3F
	return hdr, nil
}

// sizeUnits returns the number of units needed to hold size bytes.
func sizeUnits(size, unit int) (int, error) {
	if size < 0 {
		return 0, errors.Wrapf(ErrInvalidField, "negative size %d", size)
	}
	units := (size + unit - 1) / unit
	if units > maxUnits {
		return 0, errors.Wrapf(ErrInvalidField, "%d bytes exceeds %d units", size, maxUnits)
	}
	return units, nil
}

// decodeSize decodes a NES 2.0 ROM size from its LSB byte and MSB nibble.
func decodeSize(lsb, msb uint8, unit int) (int, error) {
	if msb != 0x0F {
		return (int(msb)<<8 | int(lsb)) * unit, nil
	}

	// exponent-multiplier notation: 2^E * (MM*2+1)
	exp := lsb >> 2
	mul := uint64(lsb&0x03)*2 + 1
	if exp > 40 {
		return 0, errors.Wrapf(ErrMalformedHeader, "size exponent %d too large", exp)
	}
	size := (uint64(1) << exp) * mul
	if size > math.MaxInt32 {
		return 0, errors.Wrapf(ErrMalformedHeader, "size %d too large", size)
	}
	return int(size), nil
}

// PaddedSize returns the number of bytes occupied by a payload of size bytes
// once rounded up to unit.
func PaddedSize(size, unit int) int {
	return (size + unit - 1) / unit * unit
}
