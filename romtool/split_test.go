package romtool

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"mapper474/ines"
	"mapper474/layout"
	"mapper474/tests"
)

func TestSplit(t *testing.T) {
	container := tests.Container(t, Mapper, 1)
	res, err := Split(container)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}

	if !bytes.Equal(res.Header[:], container[:ines.HeaderSize]) {
		t.Errorf("header differs:\n% x\n% x", res.Header, container[:ines.HeaderSize])
	}
	if len(res.PRG) != layout.PRGSize {
		t.Fatalf("PRG is %d bytes, want %d", len(res.PRG), layout.PRGSize)
	}
	if !bytes.Equal(res.PRG[:layout.PRGSkip], make([]byte, layout.PRGSkip)) {
		t.Errorf("first 16k of PRG should be zero")
	}
	stored := container[ines.HeaderSize : ines.HeaderSize+layout.StoredPRGSize]
	if !bytes.Equal(res.PRG[layout.PRGSkip:], stored) {
		t.Errorf("PRG differs")
	}
	if !bytes.Equal(res.CHR, container[ines.HeaderSize+layout.StoredPRGSize:]) {
		t.Errorf("CHR differs")
	}
}

func TestSplitRejects(t *testing.T) {
	cases := []struct {
		name      string
		container []byte
		wantErr   error
	}{
		{"mapper", tests.Container(t, 4, 0), ErrUnsupportedMapper},
		{"submapper", tests.Container(t, Mapper, 2), ErrInvalidSubmapper},
		{"magic", append([]byte("NES\x00"), tests.Container(t, Mapper, 0)[4:]...), ines.ErrMalformedHeader},
		{"truncated", tests.Container(t, Mapper, 0)[:1000], ines.ErrMalformedHeader},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Split(tt.container); !errors.Is(err, tt.wantErr) {
				t.Fatalf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSplitWarnings(t *testing.T) {
	rom := &ines.Rom{
		Header: ines.Header{Version: ines.VersionNES20, Mapper: Mapper},
		PRG:    tests.Pattern(ines.PRGUnit, 1),
		CHR:    tests.Pattern(2*ines.CHRUnit, 2),
	}
	container, err := rom.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	res, err := Split(container)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Warnings) != 2 {
		t.Fatalf("got warnings %v, want 2", res.Warnings)
	}
	for _, w := range res.Warnings {
		if !errors.Is(w, ErrInvalidSize) {
			t.Errorf("warning %v should be an %v", w, ErrInvalidSize)
		}
	}
	if w := res.Warnings[0]; !errors.Is(w, ErrInvalidCHRSize) || !errors.Is(w, layout.ErrSizeMismatch) {
		t.Errorf("first warning %v should be a CHR size mismatch from layout.UnpackCHR", w)
	}
	if !bytes.Equal(res.CHR, rom.CHR) {
		t.Errorf("CHR of the wrong size should be kept as is")
	}
	if len(res.PRG) != layout.PRGSkip+ines.PRGUnit {
		t.Errorf("PRG is %d bytes", len(res.PRG))
	}
}

func TestSplitFiles(t *testing.T) {
	outputs := SplitOptions{
		OutputHeader: "out/header.bin",
		OutputCHR:    "out/chr.bin",
		OutputPRG:    "out/prg.bin",
	}

	t.Run("ok", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		container := tests.Container(t, Mapper, 0)
		tests.WriteFiles(t, fs, map[string][]byte{"game.nes": container})

		opts := outputs
		opts.Input = "game.nes"
		res, err := SplitFiles(fs, opts)
		if err != nil {
			t.Fatal(err)
		}

		want := map[string][]byte{
			opts.OutputHeader: res.Header[:],
			opts.OutputCHR:    res.CHR,
			opts.OutputPRG:    res.PRG,
		}
		for path, data := range want {
			got, err := afero.ReadFile(fs, path)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, data) {
				t.Errorf("%s differs", path)
			}
		}
	})

	for name, tt := range map[string]struct {
		mapper    uint16
		submapper uint8
		wantErr   error
	}{
		"unsupported mapper": {1, 0, ErrUnsupportedMapper},
		"invalid submapper":  {Mapper, 5, ErrInvalidSubmapper},
	} {
		t.Run(name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			tests.WriteFiles(t, fs, map[string][]byte{"game.nes": tests.Container(t, tt.mapper, tt.submapper)})

			opts := outputs
			opts.Input = "game.nes"
			_, err := SplitFiles(fs, opts)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got error %v, want %v", err, tt.wantErr)
			}
			var usageErr *UsageError
			if errors.As(err, &usageErr) {
				t.Fatalf("error should not be a usage error")
			}
			for _, path := range []string{opts.OutputHeader, opts.OutputCHR, opts.OutputPRG} {
				if tests.Exists(t, fs, path) {
					t.Errorf("%s should not be created", path)
				}
			}
		})
	}

	t.Run("missing parameter", func(t *testing.T) {
		opts := outputs
		_, err := SplitFiles(afero.NewMemMapFs(), opts)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("got error %v, want %v", err, ErrInvalidArgument)
		}
	})
}

func TestRoundTrip(t *testing.T) {
	for _, region := range []ines.Region{ines.Ntsc, ines.Pal, ines.Dendy, ines.Multiple} {
		for _, mirroring := range []ines.Mirroring{ines.Horizontal, ines.Vertical} {
			for _, submapper := range []uint8{0, 1} {
				chr, prg := tests.CHR(byte(region)), tests.PRG(byte(mirroring))
				combined, err := Combine(CombineInput{
					CHR:       chr,
					PRG:       prg,
					Submapper: submapper,
					Region:    region,
					Mirroring: mirroring,
				})
				if err != nil {
					t.Fatal(err)
				}

				split, err := Split(combined.Data)
				if err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(split.CHR, chr) {
					t.Errorf("%s/%s/%d: CHR differs", region, mirroring, submapper)
				}
				if !bytes.Equal(split.PRG, prg) {
					t.Errorf("%s/%s/%d: PRG differs", region, mirroring, submapper)
				}

				want := combined.Rom.Header
				if diff := cmp.Diff(want, split.Rom.Header); diff != "" {
					t.Errorf("%s/%s/%d: header differs (-want +got):\n%s", region, mirroring, submapper, diff)
				}
			}
		}
	}
}
