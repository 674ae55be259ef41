package advanced

import "github.com/pkg/errors"

// Threading errors through the flip cascade would add a lot of noise for a
// failure that should never happen on sane input. Instead, we panic with a
// wrapped error, and the public API recovers to convert it back.

var ErrFlipLimit = errors.New("flip limit exceeded")

// Wrapper so that we only recover our own panics. Anything else (index out of
// range, nil map, etc.) is a real bug and keeps unwinding.
type triangulateError struct {
	err error
}

// Panic with a recoverable error.
func fatalf(format string, args ...interface{}) {
	panic(triangulateError{errors.Errorf(format, args...)})
}

// Panic with a recoverable error that wraps a sentinel.
func fatalWrapf(err error, format string, args ...interface{}) {
	panic(triangulateError{errors.Wrapf(err, format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(triangulateError); ok {
			return triangulateError.err
		}
		panic(r)
	}
	return nil
}
