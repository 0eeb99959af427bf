// Package romtool combines raw CHR and PRG images into mapper 474 containers,
// splits such containers back, and inspects them.
package romtool

import (
	"github.com/go-faster/errors"
	"github.com/spf13/afero"

	"mapper474/ines"
	"mapper474/layout"
	"mapper474/log"
)

// Console and extended console types of every container built here.
const (
	ConsoleType         = ines.ConsoleNormal
	ExtendedConsoleType = ines.ExtRegularNES
)

// CombineInput holds the payloads and metadata of a container to build.
type CombineInput struct {
	CHR       []byte
	PRG       []byte // external PRG (64k)
	Submapper uint8
	Region    ines.Region
	Mirroring ines.Mirroring
}

type CombineResult struct {
	Rom      *ines.Rom
	Data     []byte  // serialized container
	Warnings []error // non-fatal errors, wrapping ErrInvalidSize
}

// Combine builds a container from in. Wrong CHR and PRG sizes are reported as
// warnings, the PRG is then truncated or zero-extended to 64k.
func Combine(in CombineInput) (*CombineResult, error) {
	if err := ValidateSubmapper(in.Submapper); err != nil {
		return nil, err
	}

	res := &CombineResult{}
	warn := func(err error) {
		log.ModCombine.Warn(err)
		res.Warnings = append(res.Warnings, err)
	}

	chr, err := layout.PackCHR(in.CHR)
	if err != nil {
		warn(chrSizeWarning(err))
		chr = in.CHR
	}

	prg := in.PRG
	if err := ValidatePRG(prg); err != nil {
		warn(err)
		prg = layout.FitPRG(prg)
	}

	stored, err := layout.PackPRG(prg)
	if err != nil {
		return nil, err
	}

	res.Rom = &ines.Rom{
		Header: ines.Header{
			Version:         ines.VersionNES20,
			Mapper:          Mapper,
			Submapper:       in.Submapper,
			Console:         ConsoleType,
			ExtendedConsole: ExtendedConsoleType,
			Region:          in.Region,
			Mirroring:       in.Mirroring,
			PRGSize:         len(stored),
			CHRSize:         len(chr),
		},
		PRG: stored,
		CHR: chr,
	}

	log.ModCombine.WithFields(log.Fields{
		"submapper": in.Submapper,
		"region":    in.Region,
		"mirroring": in.Mirroring,
		"prg":       len(stored),
		"chr":       len(chr),
	}).Debug("encoding container")

	if res.Data, err = res.Rom.Bytes(); err != nil {
		return nil, errors.Wrap(err, "encode container")
	}
	return res, nil
}

// CombineOptions are the command line options of the combine mode.
type CombineOptions struct {
	InputCHR  string
	InputPRG  string
	Output    string
	Submapper string
	Region    string
	Mirroring string
}

// Parse validates the options, before any file is touched. Errors are
// returned as *UsageError.
func (o *CombineOptions) Parse() (CombineInput, error) {
	var (
		in  CombineInput
		err error
	)
	if in.Submapper, err = ParseSubmapper(o.Submapper); err != nil {
		return in, usageError(err)
	}
	if in.Region, err = ines.ParseRegion(o.Region); err != nil {
		return in, usageError(errors.Wrap(err, "--region is invalid"))
	}
	if in.Mirroring, err = ines.ParseMirroring(o.Mirroring); err != nil {
		return in, usageError(errors.Wrap(err, "--mirroring is invalid"))
	}
	if o.InputCHR == "" || o.InputPRG == "" || o.Output == "" {
		return in, usageError(errors.Wrap(ErrInvalidArgument, "missing parameter(s)"))
	}
	return in, nil
}

// CombineFiles reads the CHR and PRG files, combines them and writes the
// container file.
func CombineFiles(fs afero.Fs, opts CombineOptions) (*CombineResult, error) {
	in, err := opts.Parse()
	if err != nil {
		return nil, err
	}

	if in.CHR, err = afero.ReadFile(fs, opts.InputCHR); err != nil {
		return nil, errors.Wrap(err, "read CHR")
	}
	if in.PRG, err = afero.ReadFile(fs, opts.InputPRG); err != nil {
		return nil, errors.Wrap(err, "read PRG")
	}

	res, err := Combine(in)
	if err != nil {
		return nil, err
	}

	if err := afero.WriteFile(fs, opts.Output, res.Data, 0644); err != nil {
		return nil, errors.Wrap(err, "write container")
	}
	log.ModCombine.WithField("path", opts.Output).Infof("wrote %d bytes", len(res.Data))
	return res, nil
}
