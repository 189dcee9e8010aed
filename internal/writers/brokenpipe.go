package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err means the reader of our output went away:
// EPIPE from a pipe or socket (`motifscan scan ... | head`), or
// io.ErrClosedPipe from an in-process io.Pipe.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// quiet maps a broken pipe to nil. Output nobody reads is not a failure, but
// it still ends the stream.
func quiet(err error) error {
	if IsBrokenPipe(err) {
		return nil
	}
	return err
}
