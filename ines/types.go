package ines

import (
	"strconv"

	"github.com/go-faster/errors"
)

//go:generate go tool stringer -type=Region,Mirroring -output=types_string.go
//go:generate go tool stringer -type=ConsoleType -trimprefix=Console
//go:generate go tool stringer -type=ExtendedConsoleType -trimprefix=Ext
//go:generate go tool stringer -type=Version -trimprefix=Version

// Version is the header format revision.
type Version uint8

const (
	VersionINES  Version = iota // legacy iNES
	VersionNES20                // NES 2.0, extended header
)

// Region is the CPU/PPU timing, values are the ones stored in byte 12.
type Region uint8

const (
	Ntsc Region = iota
	Pal
	Multiple
	Dendy
)

// Mirroring is the hard-wired nametable arrangement.
type Mirroring uint8

const (
	Horizontal Mirroring = iota
	Vertical
)

type ConsoleType uint8

const (
	ConsoleNormal ConsoleType = iota
	ConsoleVsSystem
	ConsolePlaychoice10
	ConsoleExtended // see ExtendedConsoleType
)

// ExtendedConsoleType is only meaningful when the console type is
// ConsoleExtended.
type ExtendedConsoleType uint8

const (
	ExtRegularNES ExtendedConsoleType = iota
	ExtVsSystem
	ExtPlaychoice10
	ExtFamicloneDecimal
	ExtEPSM
	ExtVT01
	ExtVT02
	ExtVT03
	ExtVT09
	ExtVT32
	ExtVT369
	ExtUM6578
	ExtFamicomNetwork
)

const (
	numRegions      = 4
	numMirrorings   = 2
	numConsoleTypes = 4
	numExtConsoles  = 13
)

var ErrInvalidEnumValue = errors.New("invalid enum value")

// ParseRegion parses a region name (Ntsc, Pal, Dendy or Multiple). The
// decimal value of a region is also accepted.
func ParseRegion(s string) (Region, error) {
	for r := range Region(numRegions) {
		if r.String() == s {
			return r, nil
		}
	}
	if n, err := strconv.ParseUint(s, 10, 8); err == nil && n < numRegions {
		return Region(n), nil
	}
	return 0, errors.Wrapf(ErrInvalidEnumValue, "region %q", s)
}

// ParseMirroring parses a mirroring name (Horizontal or Vertical). The
// decimal value of a mirroring is also accepted.
func ParseMirroring(s string) (Mirroring, error) {
	for m := range Mirroring(numMirrorings) {
		if m.String() == s {
			return m, nil
		}
	}
	if n, err := strconv.ParseUint(s, 10, 8); err == nil && n < numMirrorings {
		return Mirroring(n), nil
	}
	return 0, errors.Wrapf(ErrInvalidEnumValue, "mirroring %q", s)
}

// RegionNames returns the names of all regions, in wire order.
func RegionNames() []string {
	names := make([]string, 0, numRegions)
	for r := range Region(numRegions) {
		names = append(names, r.String())
	}
	return names
}

// MirroringNames returns the names of all mirroring modes, in wire order.
func MirroringNames() []string {
	names := make([]string, 0, numMirrorings)
	for m := range Mirroring(numMirrorings) {
		names = append(names, m.String())
	}
	return names
}
