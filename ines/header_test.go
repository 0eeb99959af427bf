package ines

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mapper474Header(submapper uint8, region Region, mirroring Mirroring) Header {
	return Header{
		Version:         VersionNES20,
		Mapper:          474,
		Submapper:       submapper,
		Console:         ConsoleNormal,
		ExtendedConsole: ExtRegularNES,
		Region:          region,
		Mirroring:       mirroring,
		PRGSize:         49152,
		CHRSize:         8192,
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	for region := range Region(numRegions) {
		for mirroring := range Mirroring(numMirrorings) {
			for _, submapper := range []uint8{0, 1} {
				want := mapper474Header(submapper, region, mirroring)
				t.Run(fmt.Sprintf("%s/%s/%d", region, mirroring, submapper), func(t *testing.T) {
					raw, err := want.Encode()
					if err != nil {
						t.Fatal(err)
					}
					got, err := DecodeHeader(raw[:])
					if err != nil {
						t.Fatal(err)
					}
					if diff := cmp.Diff(want, got); diff != "" {
						t.Fatalf("header differs (-want +got):\n%s", diff)
					}
				})
			}
		}
	}
}

func TestHeaderEncode(t *testing.T) {
	t.Run("mapper474", func(t *testing.T) {
		hdr := mapper474Header(1, Pal, Vertical)
		raw, err := hdr.Encode()
		if err != nil {
			t.Fatal(err)
		}
		want := [HeaderSize]byte{
			'N', 'E', 'S', 0x1A,
			0x03, 0x01, 0xA1, 0xD8,
			0x11, 0x00, 0x00, 0x00,
			0x01, 0x00, 0x00, 0x00,
		}
		if diff := cmp.Diff(want, raw); diff != "" {
			t.Fatalf("encoded header differs (-want +got):\n%s", diff)
		}
	})

	t.Run("regions", func(t *testing.T) {
		for region, want := range map[Region]byte{Ntsc: 0, Pal: 1, Multiple: 2, Dendy: 3} {
			hdr := mapper474Header(0, region, Horizontal)
			raw, err := hdr.Encode()
			if err != nil {
				t.Fatal(err)
			}
			if raw[12] != want {
				t.Errorf("%s: byte 12 = %#02x, want %#02x", region, raw[12], want)
			}
		}
	})

	t.Run("extended console", func(t *testing.T) {
		hdr := mapper474Header(0, Ntsc, Horizontal)
		hdr.Console = ConsoleExtended
		hdr.ExtendedConsole = ExtVT369
		raw, err := hdr.Encode()
		if err != nil {
			t.Fatal(err)
		}
		if raw[7]&0x03 != 3 || raw[13] != 0x0A {
			t.Errorf("got bytes 7=%#02x 13=%#02x", raw[7], raw[13])
		}
	})

	t.Run("partial units", func(t *testing.T) {
		hdr := mapper474Header(0, Ntsc, Horizontal)
		hdr.CHRSize = 100
		raw, err := hdr.Encode()
		if err != nil {
			t.Fatal(err)
		}
		if raw[5] != 1 {
			t.Errorf("CHR units = %d, want 1", raw[5])
		}
	})

	t.Run("ines", func(t *testing.T) {
		hdr := Header{Version: VersionINES, Mapper: 0x42, Region: Pal, Mirroring: Vertical, PRGSize: 2 * PRGUnit, CHRSize: CHRUnit}
		raw, err := hdr.Encode()
		if err != nil {
			t.Fatal(err)
		}
		got, err := DecodeHeader(raw[:])
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(hdr, got); diff != "" {
			t.Fatalf("header differs (-want +got):\n%s", diff)
		}
	})
}

func TestHeaderEncodeInvalidField(t *testing.T) {
	tests := map[string]func(*Header){
		"mapper":          func(h *Header) { h.Mapper = 4096 },
		"submapper":       func(h *Header) { h.Submapper = 16 },
		"region":          func(h *Header) { h.Region = 4 },
		"mirroring":       func(h *Header) { h.Mirroring = 2 },
		"console":         func(h *Header) { h.Console = 4 },
		"extendedConsole": func(h *Header) { h.ExtendedConsole = 13 },
		"version":         func(h *Header) { h.Version = 2 },
		"ines mapper":     func(h *Header) { h.Version = VersionINES },
		"negative size":   func(h *Header) { h.PRGSize = -1 },
		"huge size":       func(h *Header) { h.PRGSize = (maxUnits + 1) * PRGUnit },
		"misc roms":       func(h *Header) { h.MiscROMs = 4 },
		"ram shift":       func(h *Header) { h.CHRNVRAMShift = 16 },
	}

	for name, modify := range tests {
		t.Run(name, func(t *testing.T) {
			hdr := mapper474Header(0, Ntsc, Horizontal)
			modify(&hdr)
			if _, err := hdr.Encode(); !errors.Is(err, ErrInvalidField) {
				t.Fatalf("got error %v, want %v", err, ErrInvalidField)
			}
		})
	}
}

func TestDecodeHeader(t *testing.T) {
	valid := func() []byte {
		hdr := mapper474Header(0, Dendy, Vertical)
		raw, err := hdr.Encode()
		if err != nil {
			t.Fatal(err)
		}
		return raw[:]
	}

	t.Run("malformed", func(t *testing.T) {
		tests := map[string][]byte{
			"empty":     {},
			"too short": valid()[:15],
			"magic":     append([]byte("NES\x00"), valid()[4:]...),
			"format 01": func() []byte { p := valid(); p[7] = p[7]&^0x0C | 0x04; return p }(),
			"format 11": func() []byte { p := valid(); p[7] |= 0x0C; return p }(),
		}
		for name, p := range tests {
			t.Run(name, func(t *testing.T) {
				if _, err := DecodeHeader(p); !errors.Is(err, ErrMalformedHeader) {
					t.Fatalf("got error %v, want %v", err, ErrMalformedHeader)
				}
			})
		}
	})

	t.Run("ines", func(t *testing.T) {
		p := []byte{'N', 'E', 'S', 0x1A, 2, 1, 0x11, 0x20, 0, 0, 0, 0, 0, 0, 0, 0}
		hdr, err := DecodeHeader(p)
		if err != nil {
			t.Fatal(err)
		}
		want := Header{
			Version:   VersionINES,
			Mapper:    0x21,
			Mirroring: Vertical,
			PRGSize:   2 * PRGUnit,
			CHRSize:   CHRUnit,
		}
		if diff := cmp.Diff(want, hdr); diff != "" {
			t.Fatalf("header differs (-want +got):\n%s", diff)
		}
	})

	t.Run("exponent size", func(t *testing.T) {
		p := valid()
		// PRG: 2^10 * (1*2+1) = 3072 bytes
		p[4] = 10<<2 | 1
		p[9] = 0x0F
		hdr, err := DecodeHeader(p)
		if err != nil {
			t.Fatal(err)
		}
		if hdr.PRGSize != 3072 {
			t.Errorf("PRG size = %d, want 3072", hdr.PRGSize)
		}
	})

	t.Run("flags", func(t *testing.T) {
		p := valid()
		p[6] |= 0x0E
		p[10] = 0x70
		hdr, err := DecodeHeader(p)
		if err != nil {
			t.Fatal(err)
		}
		if !hdr.Battery || !hdr.HasTrainer || !hdr.FourScreen {
			t.Errorf("flags not decoded: %+v", hdr)
		}
		if hdr.PRGRAMShift != 0 || hdr.PRGNVRAMShift != 7 {
			t.Errorf("PRG RAM shifts = %d/%d, want 0/7", hdr.PRGRAMShift, hdr.PRGNVRAMShift)
		}
	})
}

func TestParseRegion(t *testing.T) {
	tests := []struct {
		in   string
		want Region
	}{
		{"Ntsc", Ntsc},
		{"Pal", Pal},
		{"Dendy", Dendy},
		{"Multiple", Multiple},
		{"2", Multiple},
	}
	for _, tt := range tests {
		got, err := ParseRegion(tt.in)
		if err != nil {
			t.Errorf("ParseRegion(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRegion(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"", "ntsc", "PAL", "4", "-1", "Secam"} {
		if _, err := ParseRegion(in); !errors.Is(err, ErrInvalidEnumValue) {
			t.Errorf("ParseRegion(%q): got error %v, want %v", in, err, ErrInvalidEnumValue)
		}
	}
}

func TestParseMirroring(t *testing.T) {
	for _, name := range MirroringNames() {
		m, err := ParseMirroring(name)
		if err != nil {
			t.Fatal(err)
		}
		if m.String() != name {
			t.Errorf("ParseMirroring(%q) = %s", name, m)
		}
	}
	if m, err := ParseMirroring("1"); err != nil || m != Vertical {
		t.Errorf("ParseMirroring(\"1\") = %s, %v", m, err)
	}
	for _, in := range []string{"", "vertical", "FourScreen", "2"} {
		if _, err := ParseMirroring(in); !errors.Is(err, ErrInvalidEnumValue) {
			t.Errorf("ParseMirroring(%q): got error %v, want %v", in, err, ErrInvalidEnumValue)
		}
	}
}

func TestEnumNames(t *testing.T) {
	if diff := cmp.Diff([]string{"Ntsc", "Pal", "Multiple", "Dendy"}, RegionNames()); diff != "" {
		t.Errorf("region names differ (-want +got):\n%s", diff)
	}
	if got := ConsoleNormal.String(); got != "Normal" {
		t.Errorf("ConsoleNormal = %q", got)
	}
	if got := ExtRegularNES.String(); got != "RegularNES" {
		t.Errorf("ExtRegularNES = %q", got)
	}
	if got := Region(9).String(); got != "Region(9)" {
		t.Errorf("Region(9) = %q", got)
	}
}
