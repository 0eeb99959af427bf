package romtool

import (
	"github.com/go-faster/errors"
)

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInvalidSize       = errors.New("invalid size")
	ErrInvalidSubmapper  = errors.New("submapper should be 0 or 1")
	ErrUnsupportedMapper = errors.New("mapper is not supported")

	ErrInvalidCHRSize = errors.Wrap(ErrInvalidSize, "wrong length of CHR ROM, should be 8KB")
	ErrInvalidPRGSize = errors.Wrap(ErrInvalidSize, "wrong length of PRG ROM, should be 64KB, the first 16KB is skipped while storing but must be present")
)

// UsageError wraps errors caused by the command line arguments, for which the
// usage should be shown.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

func usageError(err error) error {
	return &UsageError{Err: err}
}
