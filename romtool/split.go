package romtool

import (
	"bytes"

	"github.com/go-faster/errors"
	"github.com/spf13/afero"

	"mapper474/ines"
	"mapper474/layout"
	"mapper474/log"
)

type SplitResult struct {
	Header   [ines.HeaderSize]byte
	Rom      *ines.Rom // decoded container
	CHR      []byte
	PRG      []byte  // external PRG, zero-filled first 16k
	Warnings []error // non-fatal errors, wrapping ErrInvalidSize
}

// Split decodes a container and rebuilds the raw header, CHR and PRG images.
func Split(container []byte) (*SplitResult, error) {
	rom := new(ines.Rom)
	if _, err := rom.ReadFrom(bytes.NewReader(container)); err != nil {
		return nil, err
	}
	if err := ValidateMapper(rom.Mapper); err != nil {
		return nil, err
	}
	if err := ValidateSubmapper(rom.Submapper); err != nil {
		return nil, err
	}

	res := &SplitResult{Rom: rom}
	warn := func(err error) {
		log.ModSplit.Warn(err)
		res.Warnings = append(res.Warnings, err)
	}

	var err error
	if res.Header, err = rom.EncodeHeader(); err != nil {
		return nil, errors.Wrap(err, "encode header")
	}

	if res.CHR, err = layout.UnpackCHR(rom.CHR); err != nil {
		warn(chrSizeWarning(err))
		res.CHR = rom.CHR
	}
	if err := ValidateStoredPRG(rom.PRG); err != nil {
		warn(err)
	}
	res.PRG = layout.UnpackPRG(rom.PRG)

	log.ModSplit.WithFields(log.Fields{
		"submapper": rom.Submapper,
		"region":    rom.Region,
		"mirroring": rom.Mirroring,
	}).Debug("decoded container")
	return res, nil
}

// SplitOptions are the command line options of the split mode.
type SplitOptions struct {
	Input        string
	OutputHeader string
	OutputCHR    string
	OutputPRG    string
}

// Validate checks that all paths are given. Errors are returned as
// *UsageError.
func (o *SplitOptions) Validate() error {
	if o.Input == "" || o.OutputHeader == "" || o.OutputCHR == "" || o.OutputPRG == "" {
		return usageError(errors.Wrap(ErrInvalidArgument, "missing parameter(s)"))
	}
	return nil
}

// SplitFiles reads a container file and writes its header, CHR and PRG in
// three files. Nothing is written if the container is rejected. Files already
// written are left in place if a later write fails.
func SplitFiles(fs afero.Fs, opts SplitOptions) (*SplitResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	container, err := afero.ReadFile(fs, opts.Input)
	if err != nil {
		return nil, errors.Wrap(err, "read container")
	}

	res, err := Split(container)
	if err != nil {
		return nil, err
	}

	outputs := []struct {
		path string
		data []byte
	}{
		{opts.OutputHeader, res.Header[:]},
		{opts.OutputCHR, res.CHR},
		{opts.OutputPRG, res.PRG},
	}
	for _, out := range outputs {
		if err := afero.WriteFile(fs, out.path, out.data, 0644); err != nil {
			return nil, errors.Wrapf(err, "write %s", out.path)
		}
		log.ModSplit.WithField("path", out.path).Infof("wrote %d bytes", len(out.data))
	}
	return res, nil
}
