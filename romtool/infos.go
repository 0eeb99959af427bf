package romtool

import (
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"

	"github.com/cespare/xxhash/v2"
	"github.com/go-faster/jx"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"mapper474/ines"
	"mapper474/log"
)

// Info describes a container file.
type Info struct {
	Path    string
	Header  ines.Header
	PRGHash uint64 // xxhash64 of the stored PRG
	CHRHash uint64 // xxhash64 of the CHR
}

// Supported reports whether the container can be split.
func (info *Info) Supported() bool {
	return ValidateMapper(info.Header.Mapper) == nil && ValidateSubmapper(info.Header.Submapper) == nil
}

func newInfo(path string, rom *ines.Rom) Info {
	return Info{
		Path:    path,
		Header:  rom.Header,
		PRGHash: xxhash.Sum64(rom.PRG),
		CHRHash: xxhash.Sum64(rom.CHR),
	}
}

// Inspect decodes the containers at paths, concurrently. Infos are returned
// in the same order as paths.
func Inspect(fs afero.Fs, paths []string) ([]Info, error) {
	infos := make([]Info, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			rom, err := ines.Open(fs, path)
			if err != nil {
				return err
			}
			infos[i] = newInfo(path, rom)
			log.ModInfos.WithField("path", path).Debug("decoded")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return infos, nil
}

// WriteText writes a human readable description of infos to w.
func WriteText(w io.Writer, infos []Info) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	for i, info := range infos {
		if i != 0 {
			fmt.Fprintln(tw)
		}
		hdr := &info.Header
		fmt.Fprintf(tw, "File:\t%s\n", info.Path)
		fmt.Fprintf(tw, "Format:\t%s\n", hdr.Version)
		fmt.Fprintf(tw, "Mapper:\t%d\n", hdr.Mapper)
		fmt.Fprintf(tw, "Submapper:\t%d\n", hdr.Submapper)
		fmt.Fprintf(tw, "Console:\t%s\n", consoleName(hdr))
		fmt.Fprintf(tw, "Region:\t%s\n", hdr.Region)
		fmt.Fprintf(tw, "Mirroring:\t%s\n", mirroringName(hdr))
		fmt.Fprintf(tw, "Battery:\t%t\n", hdr.Battery)
		fmt.Fprintf(tw, "Trainer:\t%t\n", hdr.HasTrainer)
		fmt.Fprintf(tw, "PRG ROM:\t%d bytes\t(xxhash %016x)\n", hdr.PRGSize, info.PRGHash)
		fmt.Fprintf(tw, "CHR ROM:\t%d bytes\t(xxhash %016x)\n", hdr.CHRSize, info.CHRHash)
		fmt.Fprintf(tw, "Supported:\t%t\n", info.Supported())
	}
	return tw.Flush()
}

// WriteJSON writes infos to w as a JSON array.
func WriteJSON(w io.Writer, infos []Info) error {
	var e jx.Encoder
	e.ArrStart()
	for _, info := range infos {
		hdr := &info.Header
		e.ObjStart()
		e.FieldStart("path")
		e.Str(info.Path)
		e.FieldStart("format")
		e.Str(hdr.Version.String())
		e.FieldStart("mapper")
		e.Int(int(hdr.Mapper))
		e.FieldStart("submapper")
		e.Int(int(hdr.Submapper))
		e.FieldStart("console")
		e.Str(consoleName(hdr))
		e.FieldStart("region")
		e.Str(hdr.Region.String())
		e.FieldStart("mirroring")
		e.Str(mirroringName(hdr))
		e.FieldStart("battery")
		e.Bool(hdr.Battery)
		e.FieldStart("trainer")
		e.Bool(hdr.HasTrainer)
		e.FieldStart("prg_size")
		e.Int(hdr.PRGSize)
		e.FieldStart("prg_xxhash")
		e.Str(fmt.Sprintf("%016x", info.PRGHash))
		e.FieldStart("chr_size")
		e.Int(hdr.CHRSize)
		e.FieldStart("chr_xxhash")
		e.Str(fmt.Sprintf("%016x", info.CHRHash))
		e.FieldStart("supported")
		e.Bool(info.Supported())
		e.ObjEnd()
	}
	e.ArrEnd()

	_, err := w.Write(append(e.Bytes(), '\n'))
	return err
}

func consoleName(hdr *ines.Header) string {
	if hdr.Console == ines.ConsoleExtended {
		return hdr.ExtendedConsole.String()
	}
	return hdr.Console.String()
}

func mirroringName(hdr *ines.Header) string {
	if hdr.FourScreen {
		return "FourScreen"
	}
	return hdr.Mirroring.String()
}
