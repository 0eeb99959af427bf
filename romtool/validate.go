package romtool

import (
	"fmt"
	"strconv"

	"github.com/go-faster/errors"

	"mapper474/layout"
)

const Mapper = 474

// chrSizeWarning turns a size mismatch reported by layout.PackCHR or
// layout.UnpackCHR into an ErrInvalidCHRSize warning. The CHR is then kept
// as is.
func chrSizeWarning(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidCHRSize, err)
}

// ValidatePRG checks the external PRG size. The returned error is a warning,
// a container can still be built.
func ValidatePRG(prg []byte) error {
	if len(prg) != layout.PRGSize {
		return errors.Wrapf(ErrInvalidPRGSize, "got %d bytes", len(prg))
	}
	return nil
}

// ValidateStoredPRG checks the size of the PRG stored in a container. The
// returned error is a warning.
func ValidateStoredPRG(prg []byte) error {
	if len(prg) != layout.StoredPRGSize {
		return errors.Wrapf(ErrInvalidSize, "stored PRG is %d bytes, want %d", len(prg), layout.StoredPRGSize)
	}
	return nil
}

func ValidateSubmapper(submapper uint8) error {
	if submapper > 1 {
		return errors.Wrapf(ErrInvalidSubmapper, "got %d", submapper)
	}
	return nil
}

func ValidateMapper(mapper uint16) error {
	if mapper != Mapper {
		return errors.Wrapf(ErrUnsupportedMapper, "got %d", mapper)
	}
	return nil
}

// ParseSubmapper parses and validates a decimal submapper number.
func ParseSubmapper(s string) (uint8, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 1 {
		return 0, errors.Wrapf(ErrInvalidSubmapper, "got %q", s)
	}
	return uint8(n), nil
}
